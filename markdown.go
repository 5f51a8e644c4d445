package main

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

type markdownTheme string

const (
	markdownThemeAuto  markdownTheme = "auto"
	markdownThemeDark  markdownTheme = "dark"
	markdownThemeLight markdownTheme = "light"
)

var (
	markdownMu       sync.Mutex
	markdownRenderer *glamour.TermRenderer
	markdownErr      error
	markdownStyle    = markdownThemeDark
	markdownWordWrap = 60
	markdownCache    = map[string]string{}
)

// renderMarkdown returns Glamour output for project copy, trimmed of the
// blank margins Glamour adds. Plain text is returned if rendering fails.
func renderMarkdown(content string) string {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	if out, ok := markdownCache[content]; ok {
		return out
	}
	renderer := ensureMarkdownRendererLocked()
	if renderer == nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	out = strings.Trim(out, "\n")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	out = strings.Join(lines, "\n")
	markdownCache[content] = out
	return out
}

func ensureMarkdownRendererLocked() *glamour.TermRenderer {
	if markdownRenderer != nil && markdownErr == nil {
		return markdownRenderer
	}
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(markdownWordWrap),
	}
	switch markdownStyle {
	case markdownThemeLight:
		options = append(options, glamour.WithStandardStyle("light"))
	case markdownThemeDark:
		options = append(options, glamour.WithStandardStyle("dark"))
	default:
		options = append(options, glamour.WithAutoStyle())
	}
	markdownRenderer, markdownErr = glamour.NewTermRenderer(options...)
	if markdownErr != nil {
		return nil
	}
	return markdownRenderer
}

func resetMarkdownLocked() {
	markdownRenderer = nil
	markdownErr = nil
	markdownCache = map[string]string{}
}

func setMarkdownWordWrap(width int) {
	markdownMu.Lock()
	if width < 10 {
		width = 10
	}
	if markdownWordWrap != width {
		markdownWordWrap = width
		resetMarkdownLocked()
	}
	markdownMu.Unlock()
}

func setMarkdownTheme(theme markdownTheme) {
	markdownMu.Lock()
	if theme == "" {
		theme = markdownThemeAuto
	}
	if markdownStyle != theme {
		markdownStyle = theme
		resetMarkdownLocked()
	}
	markdownMu.Unlock()
}

func currentMarkdownTheme() markdownTheme {
	markdownMu.Lock()
	defer markdownMu.Unlock()
	return markdownStyle
}

func markdownThemeFromString(value string) markdownTheme {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return markdownThemeDark
	case "light":
		return markdownThemeLight
	default:
		return markdownThemeAuto
	}
}

func nextMarkdownTheme(theme markdownTheme) markdownTheme {
	switch theme {
	case markdownThemeAuto:
		return markdownThemeDark
	case markdownThemeDark:
		return markdownThemeLight
	default:
		return markdownThemeAuto
	}
}
