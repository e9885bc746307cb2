package main

import (
	"github.com/charmbracelet/glamour"
)

// renderPreview formats markdown for the terminal, wrapping at width columns.
func renderPreview(markdown string, width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(markdown)
}
