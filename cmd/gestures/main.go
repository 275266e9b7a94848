// Command gestures inspects and scaffolds the gesture dispatch settings of
// a Go module.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/handlers/cmd/gestures/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
