package prompt

// NewPromptRepositoryForTest exposes a prompt repository with a fake terminal check.
func NewPromptRepositoryForTest(isTerminal func() bool) *HuhPromptRepository {
	return &HuhPromptRepository{isTerminal: isTerminal}
}
