package main

import "github.com/charmbracelet/lipgloss"

var palette = struct {
	background, surface, border lipgloss.Color
	text, textMuted, textFaint  lipgloss.Color
	accent, accentSoft, indigo  lipgloss.Color
	blue, white                 lipgloss.Color
}{
	background: lipgloss.Color("#030014"),
	surface:    lipgloss.Color("#0a0a0a"),
	border:     lipgloss.Color("#2a2540"),
	text:       lipgloss.Color("#e2e8f0"),
	textMuted:  lipgloss.Color("#94a3b8"),
	textFaint:  lipgloss.Color("#475569"),
	accent:     lipgloss.Color("#a855f7"),
	accentSoft: lipgloss.Color("#c084fc"),
	indigo:     lipgloss.Color("#6366f1"),
	blue:       lipgloss.Color("#3b82f6"),
	white:      lipgloss.Color("#ffffff"),
}

type styles struct {
	app, navBar, navBarScrolled, brand  lipgloss.Style
	navLink, navLinkActive, menu        lipgloss.Style
	sectionTitle, sectionBody, muted    lipgloss.Style
	badge, headline, headlineAccent     lipgloss.Style
	typed, caret                        lipgloss.Style
	button, buttonGhost, buttonHot      lipgloss.Style
	marquee, marqueeSep                 lipgloss.Style
	skillName, skillLevel, barTrack     lipgloss.Style
	card, cardHot, tag, link            lipgloss.Style
	year, timelineTitle, company, entry lipgloss.Style
	field, fieldFocused, label          lipgloss.Style
	submit, submitBusy                  lipgloss.Style
	footer, statusBar, statusHint       lipgloss.Style
	toast, cursor                       lipgloss.Style
	preloader, preloaderCount           lipgloss.Style
}

func newStyles() styles {
	base := lipgloss.NewStyle()
	pill := lipgloss.RoundedBorder()

	return styles{
		app:            base,
		navBar:         base.Padding(0, 1).Foreground(palette.text),
		navBarScrolled: base.Padding(0, 1).Foreground(palette.text).Background(lipgloss.Color("#120b26")),
		brand:          base.Copy().Bold(true).Foreground(palette.accentSoft),
		navLink:        base.Padding(0, 1).Foreground(palette.textMuted),
		navLinkActive:  base.Padding(0, 1).Foreground(palette.accentSoft).Underline(true),
		menu:           base.Border(pill).BorderForeground(palette.border).Padding(0, 2),
		sectionTitle:   base.Copy().Bold(true).Foreground(palette.white),
		sectionBody:    base.Foreground(palette.textMuted),
		muted:          base.Foreground(palette.textFaint),
		badge:          base.Border(pill).BorderForeground(palette.accent).Foreground(palette.accentSoft).Padding(0, 1),
		headline:       base.Copy().Bold(true).Foreground(palette.white),
		headlineAccent: base.Copy().Bold(true).Foreground(palette.accent),
		typed:          base.Foreground(palette.textMuted),
		caret:          base.Copy().Bold(true).Foreground(palette.accentSoft).Blink(true),
		button:         base.Copy().Bold(true).Foreground(palette.background).Background(palette.white).Padding(0, 2),
		buttonGhost:    base.Foreground(palette.text).Background(lipgloss.Color("#1a1530")).Padding(0, 2),
		buttonHot:      base.Copy().Bold(true).Foreground(palette.white).Background(palette.accent).Padding(0, 2),
		marquee:        base.Copy().Bold(true).Foreground(palette.textFaint),
		marqueeSep:     base.Foreground(palette.accent),
		skillName:      base.Copy().Bold(true).Foreground(palette.text),
		skillLevel:     base.Copy().Bold(true).Foreground(palette.accentSoft),
		barTrack:       base.Foreground(lipgloss.Color("#1e1b2e")),
		card:           base.Border(lipgloss.RoundedBorder()).BorderForeground(palette.border).Padding(0, 1),
		cardHot:        base.Border(lipgloss.RoundedBorder()).BorderForeground(palette.accent).Padding(0, 1),
		tag:            base.Foreground(palette.accentSoft).Background(lipgloss.Color("#1d1433")).Padding(0, 1).MarginRight(1),
		link:           base.Copy().Bold(true).Foreground(palette.accentSoft),
		year:           base.Copy().Bold(true).Foreground(palette.accentSoft),
		timelineTitle:  base.Copy().Bold(true).Foreground(palette.white),
		company:        base.Foreground(palette.text),
		entry:          base.Foreground(palette.textMuted).PaddingLeft(2),
		field:          base.Border(lipgloss.NormalBorder()).BorderForeground(palette.border),
		fieldFocused:   base.Border(lipgloss.NormalBorder()).BorderForeground(palette.accent),
		label:          base.Copy().Bold(true).Foreground(palette.textMuted),
		submit:         base.Copy().Bold(true).Foreground(palette.white).Background(palette.indigo).Padding(0, 2),
		submitBusy:     base.Copy().Bold(true).Foreground(palette.textMuted).Background(palette.border).Padding(0, 2),
		footer:         base.Foreground(palette.textFaint),
		statusBar:      base.Padding(0, 1).Foreground(palette.textMuted),
		statusHint:     base.Foreground(palette.textFaint),
		toast:          base.Copy().Bold(true).Foreground(palette.white).Background(palette.accent).Padding(0, 1),
		cursor:         base.Copy().Bold(true).Foreground(palette.accentSoft),
		preloader:      base.Foreground(palette.text).Background(palette.background),
		preloaderCount: base.Copy().Bold(true).Foreground(palette.white),
	}
}
