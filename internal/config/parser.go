package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	dserrors "github.com/alexisbeaulieu97/designsystem/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a configuration file, overlays it on Default and validates the
// result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dserrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// LoadOrDefault behaves like Load but returns Default when the file does not
// exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		def := Default()
		return &def, nil
	}
	return nil, err
}

// Parse decodes YAML configuration data. path is used for error reporting.
func Parse(path string, data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		// Packages is replaced wholesale rather than merged key by key.
		cfg.Packages = nil
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, dserrors.NewParseError(path, extractLine(err), err)
		}
		if cfg.Packages == nil {
			cfg.Packages = Default().Packages
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
