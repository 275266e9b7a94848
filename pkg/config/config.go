// Package config loads gesture dispatch settings from gestures.yaml.
//
// The file is optional. Missing sections fall back to the built-in
// behavior: tap bubbling is suppressed for the standard interactive
// controls, scroll views do not support manipulation gestures, and Enter
// and Space activate keyboard tap targets.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/handlers/pkg/core"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "gestures.yaml"

// SchemaMajor is the configuration schema major version this package reads.
const SchemaMajor = "v1"

// Config represents the optional gestures.yaml configuration.
type Config struct {
	Version      string             `yaml:"version,omitempty"`
	Logging      LoggingConfig      `yaml:"logging"`
	Bubbling     BubblingConfig     `yaml:"bubbling"`
	Manipulation ManipulationConfig `yaml:"manipulation"`
	Keyboard     KeyboardConfig     `yaml:"keyboard"`
}

// LoggingConfig controls the default error handler.
type LoggingConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// BubblingConfig lists element kinds whose native control swallows taps.
type BubblingConfig struct {
	Suppress []string `yaml:"suppress,omitempty"`
}

// ManipulationConfig lists element kinds that cannot host pan, pinch or
// swipe recognizers.
type ManipulationConfig struct {
	UnsupportedSurfaces []string `yaml:"unsupported_surfaces,omitempty"`
}

// KeyboardConfig lists the keys that activate keyboard tap targets.
type KeyboardConfig struct {
	ActivationKeys []string `yaml:"activation_keys,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root                string
	ModulePath          string
	Version             string
	Verbose             bool
	SuppressBubbling    map[core.ElementKind]bool
	UnsupportedSurfaces map[core.ElementKind]bool
	ActivationKeys      []key.Code
}

var (
	defaultSuppressBubbling = []core.ElementKind{
		core.KindButton,
		core.KindCheckBox,
		core.KindDatePicker,
		core.KindStepper,
		core.KindSlider,
		core.KindSwitch,
		core.KindTimePicker,
		core.KindImageButton,
		core.KindRadioButton,
	}
	defaultUnsupportedSurfaces = []core.ElementKind{core.KindScrollView}
	defaultActivationKeys      = []key.Code{key.CodeReturnEnter, key.CodeSpacebar}
)

// Default returns the built-in settings.
func Default() *Resolved {
	return &Resolved{
		SuppressBubbling:    kindSet(defaultSuppressBubbling),
		UnsupportedSurfaces: kindSet(defaultUnsupportedSurfaces),
		ActivationKeys:      append([]key.Code(nil), defaultActivationKeys...),
	}
}

// LoadOptional reads gestures.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads gestures.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	resolved.Root = dir

	modulePath, err := ModulePath(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	resolved.ModulePath = modulePath

	return resolved, nil
}

// Resolve validates cfg and fills in defaults for empty sections.
func (cfg *Config) Resolve() (*Resolved, error) {
	if err := validateVersion(cfg.Version); err != nil {
		return nil, err
	}

	r := Default()
	r.Version = strings.TrimSpace(cfg.Version)
	r.Verbose = cfg.Logging.Verbose

	if len(cfg.Bubbling.Suppress) > 0 {
		kinds, err := parseKinds("bubbling.suppress", cfg.Bubbling.Suppress)
		if err != nil {
			return nil, err
		}
		r.SuppressBubbling = kinds
	}

	if len(cfg.Manipulation.UnsupportedSurfaces) > 0 {
		kinds, err := parseKinds("manipulation.unsupported_surfaces", cfg.Manipulation.UnsupportedSurfaces)
		if err != nil {
			return nil, err
		}
		r.UnsupportedSurfaces = kinds
	}

	if len(cfg.Keyboard.ActivationKeys) > 0 {
		codes := make([]key.Code, 0, len(cfg.Keyboard.ActivationKeys))
		for _, name := range cfg.Keyboard.ActivationKeys {
			code, ok := ParseKey(name)
			if !ok {
				return nil, fmt.Errorf("keyboard.activation_keys: unknown key %q", name)
			}
			codes = append(codes, code)
		}
		r.ActivationKeys = codes
	}

	return r, nil
}

// IsActivationKey reports whether code activates keyboard tap targets.
func (r *Resolved) IsActivationKey(code key.Code) bool {
	for _, c := range r.ActivationKeys {
		if c == code {
			return true
		}
	}
	return false
}

func validateVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return nil
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("version %q is not a valid semantic version", version)
	}
	if major := semver.Major(version); major != SchemaMajor {
		return fmt.Errorf("version %s is not supported (want %s.x)", version, SchemaMajor)
	}
	return nil
}

func parseKinds(field string, names []string) (map[core.ElementKind]bool, error) {
	kinds := make(map[core.ElementKind]bool, len(names))
	for _, name := range names {
		kind, ok := core.ParseElementKind(name)
		if !ok {
			return nil, fmt.Errorf("%s: unknown element kind %q", field, name)
		}
		kinds[kind] = true
	}
	return kinds, nil
}

func kindSet(kinds []core.ElementKind) map[core.ElementKind]bool {
	set := make(map[core.ElementKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}
