package report

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Write renders markdown to w. When w is a terminal the markdown goes
// through glamour; otherwise (pipes, files) the raw markdown is written so
// output stays grep-able.
func Write(w io.Writer, markdown string) error {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		render := NewRenderer()
		out, err := render(markdown)
		if err == nil {
			_, err = io.WriteString(w, out)
			return err
		}
		// Fall back to plain markdown on render failure.
	}
	_, err := fmt.Fprint(w, markdown)
	return err
}
