package cmd

import (
	"fmt"

	"github.com/go-drift/tint/internal/options"
	"github.com/go-drift/tint/pkg/errors"
	"github.com/go-drift/tint/pkg/palette"
)

func init() {
	RegisterCommand(&Command{
		Name:  "palette",
		Short: "List or resolve colors from a YAML palette file",
		Long: `Load a YAML palette file and list its colors.

With --name, resolve and print a single entry instead.

Flags:
  --name NAME          Resolve one palette entry
  --format hex|float   Output format (default: hex)`,
		Usage: "tint palette FILE [--name NAME] [--format hex|float]",
		Run:   runPalette,
	})
}

func runPalette(args []string) error {
	opts, positional := options.ParseFlags(args)
	if len(positional) != 1 {
		return fmt.Errorf("palette requires exactly one file, got %d arguments", len(positional))
	}

	p, err := palette.Load(positional[0])
	if err != nil {
		if terr, ok := err.(*errors.TintError); ok {
			errors.Report(terr)
		}
		return err
	}

	format := options.Lookup(opts, "format", "hex")

	if name := options.Lookup(opts, "name", ""); name != "" {
		c, ok := p.Resolve(name)
		if !ok {
			return fmt.Errorf("palette has no color named %q", name)
		}
		printColor(c, format)
		return nil
	}

	for _, name := range p.Names() {
		c, _ := p.Resolve(name)
		if format == "float" {
			fmt.Printf("%-20s red=%g green=%g blue=%g alpha=%g\n", name, c.Red(), c.Green(), c.Blue(), c.Alpha())
		} else {
			fmt.Printf("%-20s %s\n", name, c.Hex())
		}
	}
	return nil
}
