// Package tags loads the tag catalog from a YAML file:
//
//	tags:
//	  - food
//	  - travel
//
// A missing file is created with the default catalog on first run.
package tags

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	applog "ledger/internal/log"
)

// Defaults is the catalog written on first run.
var Defaults = []string{"food", "travel", "shopping", "bills", "salary", "other"}

type File struct {
	Tags []string `yaml:"tags"`
}

// Load reads the tag names from path. When the file does not exist it is
// written with Defaults, creating parent directories. A file with no usable
// tags also yields Defaults but is left untouched.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := writeDefaults(path); err != nil {
			return nil, err
		}
		slog.Info("Created default tag file",
			applog.FieldComponent, applog.ComponentTags,
			applog.FieldPath, path,
			applog.FieldCount, len(Defaults))
		return append([]string(nil), Defaults...), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read tag file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse tag file %s: %w", path, err)
	}

	names := clean(file.Tags)
	if len(names) == 0 {
		slog.Warn("Tag file has no tags, using defaults",
			applog.FieldComponent, applog.ComponentTags,
			applog.FieldPath, path)
		return append([]string(nil), Defaults...), nil
	}
	return names, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create tag directory: %w", err)
	}
	data, err := yaml.Marshal(File{Tags: Defaults})
	if err != nil {
		return fmt.Errorf("encode default tags: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tag file: %w", err)
	}
	return nil
}

// clean trims names and drops blanks and repeats, keeping file order.
func clean(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, name := range in {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
