package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateRenderOptions(opts renderOptions) error {
	switch opts.format {
	case formatHTML, formatTerminal:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: expected %s or %s", opts.format, formatHTML, formatTerminal)
	}
}

func validateProfilePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("coverage profile is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve profile path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("coverage profile does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("profile path %s is a directory", abs)
	}

	return nil
}
