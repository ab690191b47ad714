// Command tint is a small CLI for inspecting and compositing colors.
package main

import (
	"os"

	"github.com/go-drift/tint/cmd/tint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
