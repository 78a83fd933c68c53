package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/lintcore/pkg/config"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LINTCORE_FLAVOR", "gfm")
	t.Setenv("LINTCORE_QUIET", "1")
	t.Setenv("LINTCORE_JOBS", "4")
	t.Setenv("LINTCORE_DIRECTIVE_PREFIX", "docs")
	t.Setenv("LINTCORE_REPORT_NEEDLESS_DISABLES", "true")

	cfg := config.NewConfig()
	require.NoError(t, LoadFromEnv(cfg))

	assert.Equal(t, config.FlavorGFM, cfg.Flavor)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, "docs", cfg.DirectivePrefix)
	assert.True(t, cfg.ReportNeedlessDisables)
}

func TestLoadFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("LINTCORE_FIX", "sometimes")

	err := LoadFromEnv(config.NewConfig())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LINTCORE_FIX")
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b"}, parseSliceValue(" a , ,b,"))
	assert.Empty(t, parseSliceValue(""))
}

func TestListEnvVars(t *testing.T) {
	t.Parallel()

	vars := ListEnvVars()
	require.Len(t, vars, len(envVars))
	for i := 1; i < len(vars); i++ {
		assert.Less(t, vars[i-1].Name, vars[i].Name)
	}
	assert.Equal(t, "LINTCORE_DIRECTIVE_PREFIX", vars[0].Name)
}
