package renderer

import (
	"fmt"

	"github.com/df07/raytracer-challenge/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...any) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(string, ...any) {}

// progressInterval returns how many rows pass between progress messages (about every 10%)
func progressInterval(rows int) int {
	return max(1, rows/10)
}
