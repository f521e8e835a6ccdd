//go:build unit

package entities_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

//nolint:tparallel // one subtest uses t.Setenv which is incompatible with t.Parallel on parent
func TestSettings(t *testing.T) {
	t.Run("should require a data root", func(t *testing.T) {
		t.Parallel()

		// given
		settings := &entities.Settings{}

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
	})

	t.Run("should derive the rules file and outputs from the data root", func(t *testing.T) {
		t.Parallel()

		// given
		dataRoot := t.TempDir()
		settings := &entities.Settings{DataRoot: dataRoot}

		// when
		rulesPath := settings.RulesPath()
		outputDir, err := settings.RepoOutputDir(filepath.Join(dataRoot, "shop"))

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dataRoot, "nugetsyncrules.json"), rulesPath)
		assert.Equal(t, filepath.Join(dataRoot, "outputs"), filepath.Dir(outputDir))
		assert.True(t, settings.IncludesTransitive())
	})

	t.Run("should honor the rules file and transitive overrides", func(t *testing.T) {
		t.Parallel()

		// given
		include := false
		settings := &entities.Settings{DataRoot: "/data", RulesFile: "/etc/rules.yaml", IncludeTransitive: &include}

		// when
		rulesPath := settings.RulesPath()

		// then
		assert.Equal(t, "/etc/rules.yaml", rulesPath)
		assert.False(t, settings.IncludesTransitive())
	})

	t.Run("should expand environment references", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("NUGETSYNC_TEST_ROOT", "/srv/nugetsync")
		settings := &entities.Settings{DataRoot: "${NUGETSYNC_TEST_ROOT}/data"}

		// when
		settings.ExpandEnv()

		// then
		assert.Equal(t, "/srv/nugetsync/data", settings.DataRoot)
	})
}
