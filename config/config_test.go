package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/config"
	"github.com/katalvlaran/crucible/crucible"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	basic, err := cfg.Variant("basic")
	require.NoError(t, err)
	assert.Equal(t, crucible.BasicRule(), basic.Rule())

	ultra, err := cfg.Variant("ultra")
	require.NoError(t, err)
	assert.Equal(t, crucible.UltraRule(), ultra.Rule())
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestDecode_Overrides(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader(`
heuristic: none
compression: false
log_level: debug
variants:
  - name: free
    min_run: 1
  - name: strict
    min_run: 2
    max_run: 2
`))
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Heuristic)
	assert.False(t, cfg.Compression)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.Len(t, cfg.Variants, 2)

	free, err := cfg.Variant("free")
	require.NoError(t, err)
	assert.Equal(t, crucible.Rule{MinRun: 1, MaxRun: crucible.Unbounded}, free.Rule())

	_, err = cfg.Variant("basic")
	require.ErrorIs(t, err, config.ErrUnknownVariant)
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Decode(strings.NewReader("log_level: warn\n"))
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Equal(t, config.Default().Variants, cfg.Variants)
	assert.True(t, cfg.Compression)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"UnknownKey", "heuristics: none\n"},
		{"BadHeuristic", "heuristic: euclid\n"},
		{"BadLogLevel", "log_level: loud\n"},
		{"NoVariants", "variants: []\n"},
		{"ZeroMinRun", "variants: [{name: a, min_run: 0, max_run: 3}]\n"},
		{"MaxBelowMin", "variants: [{name: a, min_run: 4, max_run: 3}]\n"},
		{"MissingName", "variants: [{min_run: 1, max_run: 3}]\n"},
		{"DuplicateName", "variants: [{name: a, min_run: 1}, {name: a, min_run: 2}]\n"},
		{"NotYAML", "variants: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(tc.doc))
			require.Error(t, err)
		})
	}
}

func TestDecode_ValidationErrorsAreInspectable(t *testing.T) {
	_, err := config.Decode(strings.NewReader("variants: [{name: a, min_run: 0}]\n"))
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.NotEmpty(t, verrs)
	assert.Equal(t, "MinRun", verrs[0].Field())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crucible.yaml")
	require.NoError(t, os.WriteFile(path, []byte("heuristic: astar\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	opts, err := cfg.SearchOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlogLevel_Fallback(t *testing.T) {
	cfg := config.Config{LogLevel: "???"}
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
