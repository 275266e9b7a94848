package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/handlers/pkg/config"
	"github.com/go-drift/handlers/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Show the resolved gesture settings",
		Long: `Load gestures.yaml from the module root and print the settings the
dispatcher will use.

Element kinds listed under "bubbling" have their native taps marked handled
when no tap recognizer claims them. Kinds listed under "manipulation" never
receive pan, pinch or swipe input. The file is optional; missing sections
use the built-in defaults.`,
		Usage: "gestures check",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	root, err := config.FindProjectRoot(projectDir)
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}
	errors.SetHandler(cfg.ErrorHandler())

	source := "built-in defaults"
	path := filepath.Join(root, config.FileName)
	if _, err := os.Stat(path); err == nil {
		source = path
	}

	file := cfg.File()
	version := cfg.Version
	if version == "" {
		version = "(unset)"
	}
	var keys []string
	for _, code := range cfg.ActivationKeys {
		keys = append(keys, config.KeyName(code))
	}

	fmt.Fprintf(stdout, "Module:   %s\n", cfg.ModulePath)
	fmt.Fprintf(stdout, "Settings: %s\n", source)
	fmt.Fprintf(stdout, "Version:  %s\n", version)
	fmt.Fprintf(stdout, "Verbose:  %t\n", cfg.Verbose)
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  %-14s %s\n", "bubbling:", list(file.Bubbling.Suppress))
	fmt.Fprintf(stdout, "  %-14s %s\n", "manipulation:", list(file.Manipulation.UnsupportedSurfaces))
	fmt.Fprintf(stdout, "  %-14s %s\n", "keyboard:", list(keys))

	return nil
}

func list(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
