package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Show the channels of a color",
		Long: `Print a color in every supported representation:
float channels, hex, and 8-bit non-premultiplied RGBA.`,
		Usage: "tint inspect COLOR",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("inspect requires exactly one color, got %d", len(args))
	}

	c, err := parseColorArg(args[0])
	if err != nil {
		return err
	}

	n := c.NRGBA()
	fmt.Printf("hex:      %s\n", c.Hex())
	fmt.Printf("channels: red=%g green=%g blue=%g alpha=%g\n", c.Red(), c.Green(), c.Blue(), c.Alpha())
	fmt.Printf("8-bit:    r=%d g=%d b=%d a=%d\n", n.R, n.G, n.B, n.A)
	switch {
	case c.Alpha() >= 1:
		fmt.Println("opacity:  opaque")
	case c.Alpha() <= 0:
		fmt.Println("opacity:  transparent")
	default:
		fmt.Printf("opacity:  %.0f%%\n", c.Alpha()*100)
	}
	return nil
}
