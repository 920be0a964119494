package pipeline

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
)

// ErrTerminalRender indicates the terminal preview could not be rendered.
var ErrTerminalRender = errors.New("terminal rendering failed")

// Terminal preview defaults.
const (
	DefaultTerminalStyle = "dracula"
	DefaultWrapWidth     = 80
)

// RenderTerminal renders Markdown for display in a terminal using glamour.
// A non-positive width falls back to DefaultWrapWidth.
func RenderTerminal(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(DefaultTerminalStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("%w: creating renderer: %v", ErrTerminalRender, err)
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTerminalRender, err)
	}
	return out, nil
}
