package errors

import (
	"fmt"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including timestamps.
	Verbose bool
}

// HandleError logs a TintError to stderr.
func (h *LogHandler) HandleError(err *TintError) {
	if err == nil {
		return
	}
	if h.Verbose {
		fmt.Fprintf(os.Stderr, "[tint error] %s [%s]", err.Op, err.Kind)
		if err.Path != "" {
			fmt.Fprintf(os.Stderr, " path=%s", err.Path)
		}
		fmt.Fprintf(os.Stderr, ": %v (at %s)\n", err.Err, err.Timestamp.Format("15:04:05.000"))
	} else {
		fmt.Fprintf(os.Stderr, "[tint error] %s: %v\n", err.Op, err.Err)
	}
}
