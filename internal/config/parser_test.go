package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, Validate(&cfg))
	assert.Equal(t, Thresholds{Lines: 80, Functions: 80, Branches: 80, Statements: 80}, cfg.Coverage.Thresholds)

	path, ok := cfg.Resolve("@design-system/primitives")
	require.True(t, ok)
	assert.Equal(t, "./pkg/primitives", path)

	aliases := cfg.Aliases()
	require.Len(t, aliases, 3)
	assert.Equal(t, "@design-system/components", aliases[0].Name)
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "full configuration",
			contents: `version: "1.2.0"
packages:
  "@design-system/tokens": ./pkg/tokens
  "@design-system/icons": ../icons/src
storybook:
  out_dir: docs/storybook
  tokens_file: tokens.yaml
  debounce: 500ms
coverage:
  include: ["pkg/**/*.go"]
  exclude: ["**/*_test.go"]
  thresholds:
    lines: 90
    functions: 85
    branches: 0
    statements: 90
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, "1.2.0", cfg.Version)
				assert.Len(t, cfg.Packages, 2)
				assert.Equal(t, "docs/storybook", cfg.Storybook.OutDir)
				assert.Equal(t, 500*time.Millisecond, cfg.Storybook.Debounce)
				assert.Equal(t, 85.0, cfg.Coverage.Thresholds.Functions)
				assert.Equal(t, []string{"**/*_test.go"}, cfg.Coverage.Exclude)
			},
		},
		{
			name:     "empty file falls back to defaults",
			contents: "\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default(), *cfg)
			},
		},
		{
			name: "partial file keeps default packages",
			contents: `coverage:
  thresholds:
    lines: 50
    functions: 50
    branches: 50
    statements: 50
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				assert.Equal(t, Default().Packages, cfg.Packages)
				assert.Equal(t, 50.0, cfg.Coverage.Thresholds.Lines)
			},
		},
		{
			name:     "invalid yaml returns parse error",
			contents: "version: [1, 0]\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var parseErr *dserrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Message, "cannot unmarshal")
				assert.Equal(t, 1, parseErr.Line)
			},
		},
		{
			name:     "bad version",
			contents: "version: beta\n",
			assert: func(t *testing.T, _ *Config, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "version", validationErr.Field)
			},
		},
		{
			name: "threshold above 100",
			contents: `coverage:
  thresholds:
    lines: 120
    functions: 80
    branches: 80
    statements: 80
`,
			assert: func(t *testing.T, _ *Config, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "coverage.thresholds.lines", validationErr.Field)
			},
		},
		{
			name: "alias without scope",
			contents: `packages:
  tokens: ./pkg/tokens
`,
			assert: func(t *testing.T, _ *Config, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "package_alias")
			},
		},
		{
			name: "bare package path",
			contents: `packages:
  "@design-system/tokens": pkg/tokens
`,
			assert: func(t *testing.T, _ *Config, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "rel_path")
			},
		},
		{
			name: "invalid glob",
			contents: `coverage:
  include: ["pkg/[.go"]
  thresholds: {lines: 80, functions: 80, branches: 80, statements: 80}
`,
			assert: func(t *testing.T, _ *Config, err error) {
				var validationErr *dserrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Contains(t, validationErr.Message, "glob")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse("designsystem.yaml", []byte(tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := LoadOrDefault(filepath.Join(dir, DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: beta\n"), 0o644))
	_, err = LoadOrDefault(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	var parseErr *dserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestNilConfigFailsValidation(t *testing.T) {
	t.Parallel()

	var validationErr *dserrors.ValidationError
	require.ErrorAs(t, Validate(nil), &validationErr)
}
