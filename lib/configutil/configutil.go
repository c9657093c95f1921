// Package configutil reads optional json5 configuration files with
// local overrides, used by the CLI for flag defaults.
package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// ReadConfig reads `name` (with extension) and, when present, its
// `<stem>.local.<ext>` sibling merged on top. Returns os.ErrNotExist
// when neither file exists; callers treat that as "use defaults".
func ReadConfig[T any](name string) (T, error) {
	var out T
	found := false

	base, err := readInto(name, &out)
	if err != nil {
		return out, err
	}
	found = found || base

	stem := strings.TrimSuffix(name, filepath.Ext(name))
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	localPath := fmt.Sprintf("%s.local.%s", stem, ext)

	var override T
	local, err := readInto(localPath, &override)
	if err != nil {
		return out, err
	}
	if local {
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merging config with local overrides", "local", localPath)
		found = true
	}

	if !found {
		return out, os.ErrNotExist
	}
	return out, nil
}

func readInto[T any](path string, out *T) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json5.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("parse %s: %w", path, err)
	}
	return true, nil
}
