package cmd

import (
	"fmt"

	"github.com/go-drift/tint/internal/options"
	"github.com/go-drift/tint/pkg/color"
	"github.com/go-drift/tint/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "blend",
		Short: "Composite a source color over a destination color",
		Long: `Composite SRC over DST with the Porter-Duff "over" operator.

Colors are given as hex values (#RGB, #RRGGBB, #RRGGBBAA) or SVG
color names. When both colors are fully transparent the result is
transparent black.

Flags:
  --format hex|float   Output format (default: hex)`,
		Usage: "tint blend SRC DST [--format hex|float]",
		Run:   runBlend,
	})
}

func runBlend(args []string) error {
	opts, positional := options.ParseFlags(args)
	if len(positional) != 2 {
		return fmt.Errorf("blend requires exactly two colors, got %d", len(positional))
	}

	src, err := parseColorArg(positional[0])
	if err != nil {
		return err
	}
	dst, err := parseColorArg(positional[1])
	if err != nil {
		return err
	}

	out := color.Blend(src, dst)
	printColor(out, options.Lookup(opts, "format", "hex"))
	return nil
}

// parseColorArg parses a CLI color argument, reporting failures through
// the error handler.
func parseColorArg(s string) (color.Color, error) {
	c, err := color.Parse(s)
	if err != nil {
		return color.Color{}, errors.Wrap("cmd.parseColorArg", errors.KindParse, err)
	}
	return c, nil
}

func printColor(c color.Color, format string) {
	switch format {
	case "float":
		fmt.Printf("red=%g green=%g blue=%g alpha=%g\n", c.Red(), c.Green(), c.Blue(), c.Alpha())
	default:
		fmt.Println(c.Hex())
	}
}
