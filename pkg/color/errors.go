package color

import "fmt"

// ChannelError reports a channel value outside [0, 1] (or NaN)
// passed to New.
type ChannelError struct {
	// Channel is the channel name: "red", "green", "blue" or "alpha".
	Channel string
	// Value is the offending input.
	Value float64
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("color: channel %s out of range [0,1]: %v", e.Channel, e.Value)
}

// ParseError reports input that could not be parsed as a color.
type ParseError struct {
	// Input is the string that failed to parse.
	Input string
	// Reason describes what was wrong with it.
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("color: cannot parse %q: %s", e.Input, e.Reason)
}
