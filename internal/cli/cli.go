// Package cli renders catalog views, fetch states and wizard steps for the
// terminal and reads the user's choices.
package cli

import (
	"errors"
	"io"

	"github.com/fatih/color"
)

// ErrAborted is returned when the user quits an interactive flow
var ErrAborted = errors.New("aborted by user")

var (
	headerColor  = color.New(color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warnColor    = color.New(color.FgYellow)
	successColor = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
)

// DisableColor turns off ANSI colors, e.g. when output is not a terminal
func DisableColor() {
	color.NoColor = true
}

// Renderer writes human-readable output to Out
type Renderer struct {
	Out     io.Writer
	APIRoot string
}

func NewRenderer(out io.Writer, apiRoot string) *Renderer {
	return &Renderer{Out: out, APIRoot: apiRoot}
}
