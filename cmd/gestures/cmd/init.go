package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/go-drift/handlers/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write gestures.yaml with the defaults",
		Long: `Create gestures.yaml in the module root, filled in with the built-in
defaults so they can be edited.

Flags:
  --force    Replace an existing gestures.yaml`,
		Usage: "gestures init [--force]",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	force := false
	for _, arg := range args {
		switch arg {
		case "--force", "-f":
			force = true
		default:
			return fmt.Errorf("unknown flag %q", arg)
		}
	}

	root, err := config.FindProjectRoot(projectDir)
	if err != nil {
		return err
	}

	defaults := config.Default()
	defaults.Version = config.SchemaMajor + ".0.0"
	path, err := config.Write(root, defaults.File(), force)
	if stderrors.Is(err, config.ErrExists) {
		return fmt.Errorf("%s already exists (use --force to replace it)", path)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Created %s\n", path)
	return nil
}
