// Package color wraps text in ANSI color escapes.
package color

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Color is a terminal foreground color.
type Color int

// Supported colors.
const (
	Red Color = iota + 1
	Green
	Brown
)

const reset = "\033[0m"

// Code returns the SGR parameters for c, or false for an unknown color.
func (c Color) Code() (string, bool) {
	switch c {
	case Red:
		return "0;31", true
	case Green:
		return "0;32", true
	case Brown:
		return "0;33", true
	default:
		return "", false
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Brown:
		return "brown"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Wrap surrounds s with the escape codes for c.
// Unknown colors return s unchanged.
func Wrap(c Color, s string) string {
	code, ok := c.Code()
	if !ok {
		return s
	}
	return "\033[" + code + "m" + s + reset
}

// Mode selects when output is colored. It implements pflag.Value.
type Mode string

// Supported modes.
const (
	Always Mode = "always"
	Auto   Mode = "auto"
	Never  Mode = "never"
)

func (m *Mode) String() string { return string(*m) }

// Set parses a mode name.
func (m *Mode) Set(s string) error {
	switch Mode(s) {
	case Always, Auto, Never:
		*m = Mode(s)
		return nil
	default:
		return fmt.Errorf("unknown color mode %q (use always, auto or never)", s)
	}
}

// Type names the flag value type in help output.
func (m *Mode) Type() string { return "mode" }

// Painter colors text written to one stream.
type Painter struct {
	enabled bool
}

// NewPainter decides whether output to w is colored under mode.
// In Auto mode only terminals are colored.
func NewPainter(w io.Writer, mode Mode) Painter {
	switch mode {
	case Always:
		return Painter{enabled: true}
	case Auto:
		f, ok := w.(*os.File)
		return Painter{enabled: ok && term.IsTerminal(int(f.Fd()))}
	default:
		return Painter{}
	}
}

// Enabled reports whether the painter emits escape codes.
func (p Painter) Enabled() bool { return p.enabled }

// Paint colors s when enabled.
func (p Painter) Paint(c Color, s string) string {
	if !p.enabled {
		return s
	}
	return Wrap(c, s)
}
