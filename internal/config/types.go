package config

import (
	"sort"
	"time"
)

// DefaultFileName is the workspace configuration file looked up by dsys.
const DefaultFileName = "designsystem.yaml"

// Config is the workspace configuration: package aliases, storybook build
// settings and coverage thresholds.
type Config struct {
	Version   string            `yaml:"version" validate:"required,semver"`
	Packages  map[string]string `yaml:"packages" validate:"required,min=1,dive,keys,package_alias,endkeys,required,rel_path"`
	Storybook Storybook         `yaml:"storybook"`
	Coverage  Coverage          `yaml:"coverage"`
}

// Storybook configures the static documentation build.
type Storybook struct {
	OutDir     string        `yaml:"out_dir" validate:"required"`
	TokensFile string        `yaml:"tokens_file,omitempty"`
	Title      string        `yaml:"title,omitempty" validate:"max=100"`
	Debounce   time.Duration `yaml:"debounce,omitempty" validate:"gte=0"`
}

// Coverage selects source files and the minimum percentages required.
type Coverage struct {
	Include    []string   `yaml:"include,omitempty" validate:"dive,glob"`
	Exclude    []string   `yaml:"exclude,omitempty" validate:"dive,glob"`
	Thresholds Thresholds `yaml:"thresholds"`
}

// Thresholds are percentages in the range 0-100.
type Thresholds struct {
	Lines      float64 `yaml:"lines" validate:"gte=0,lte=100"`
	Functions  float64 `yaml:"functions" validate:"gte=0,lte=100"`
	Branches   float64 `yaml:"branches" validate:"gte=0,lte=100"`
	Statements float64 `yaml:"statements" validate:"gte=0,lte=100"`
}

// Alias maps an import alias to a package directory.
type Alias struct {
	Name string
	Path string
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Version: "0.0.1",
		Packages: map[string]string{
			"@design-system/tokens":     "./pkg/tokens",
			"@design-system/primitives": "./pkg/primitives",
			"@design-system/components": "./pkg/components",
		},
		Storybook: Storybook{
			OutDir:   "storybook-static",
			Title:    "Design System",
			Debounce: 200 * time.Millisecond,
		},
		Coverage: Coverage{
			Include: []string{"pkg/**/*.go"},
			Exclude: []string{"**/*_test.go", "**/doc.go"},
			Thresholds: Thresholds{
				Lines:      80,
				Functions:  80,
				Branches:   80,
				Statements: 80,
			},
		},
	}
}

// Aliases returns the package aliases sorted by name.
func (c Config) Aliases() []Alias {
	out := make([]Alias, 0, len(c.Packages))
	for name, path := range c.Packages {
		out = append(out, Alias{Name: name, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Resolve returns the directory for an alias.
func (c Config) Resolve(alias string) (string, bool) {
	path, ok := c.Packages[alias]
	return path, ok
}
