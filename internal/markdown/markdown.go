// Package markdown renders task descriptions for the terminal with glamour
package markdown

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Style selects how markdown is rendered
type Style int

const (
	// StyleAuto picks dark or light from the terminal background
	StyleAuto Style = iota
	// StylePlain renders without colors, for pipes and files
	StylePlain
	// StyleDark uses the dark theme without probing the terminal
	StyleDark
)

type cacheKey struct {
	width int
	style Style
}

// Cache renderers by width and style to avoid expensive re-creation
var rendererCache sync.Map // map[cacheKey]*glamour.TermRenderer

func getRenderer(width int, style Style) (*glamour.TermRenderer, error) {
	key := cacheKey{width: width, style: style}
	if cached, ok := rendererCache.Load(key); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	styleOpt := glamour.WithAutoStyle()
	switch style {
	case StylePlain:
		styleOpt = glamour.WithStandardStyle(styles.NoTTYStyle)
	case StyleDark:
		styleOpt = glamour.WithStandardStyle(styles.DarkStyle)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(width))
	if err != nil {
		return nil, err
	}

	rendererCache.Store(key, renderer)
	return renderer, nil
}

// Render renders md wrapped to width. Empty input renders as empty.
func Render(md string, width int, style Style) (string, error) {
	if strings.TrimSpace(md) == "" {
		return "", nil
	}
	if width <= 0 {
		width = 80
	}

	renderer, err := getRenderer(width, style)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}

// RenderOrRaw is Render falling back to the raw text on error
func RenderOrRaw(md string, width int, style Style) string {
	out, err := Render(md, width, style)
	if err != nil {
		return md
	}
	return out
}
