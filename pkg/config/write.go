package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/handlers/pkg/core"
)

// ErrExists is returned by Write when the file is already present.
var ErrExists = errors.New("config: " + FileName + " already exists")

// File returns the gestures.yaml form of r. Element kinds are sorted by
// name; activation keys keep their order.
func (r *Resolved) File() *Config {
	cfg := &Config{
		Version: r.Version,
		Logging: LoggingConfig{Verbose: r.Verbose},
	}
	cfg.Bubbling.Suppress = kindNames(r.SuppressBubbling)
	cfg.Manipulation.UnsupportedSurfaces = kindNames(r.UnsupportedSurfaces)
	for _, code := range r.ActivationKeys {
		cfg.Keyboard.ActivationKeys = append(cfg.Keyboard.ActivationKeys, KeyName(code))
	}
	return cfg
}

// Write saves cfg as dir/gestures.yaml. It refuses to replace an existing
// file unless overwrite is set.
func Write(dir string, cfg *Config, overwrite bool) (string, error) {
	path := filepath.Join(dir, FileName)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return path, ErrExists
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return path, fmt.Errorf("failed to encode %s: %w", FileName, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return path, fmt.Errorf("failed to write %s: %w", FileName, err)
	}
	return path, nil
}

func kindNames(set map[core.ElementKind]bool) []string {
	var names []string
	for kind, on := range set {
		if on {
			names = append(names, kind.String())
		}
	}
	sort.Strings(names)
	return names
}
