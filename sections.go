package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

const marqueeSeparator = " ✦ "

// blocks lists the page top to bottom. Each render reads live effect state
// but must not change its own height.
func (m *model) blocks() []block {
	return []block{
		{id: "about", render: m.renderHero},
		{render: m.renderMarquee},
		{id: "skills", render: m.renderSkills},
		{id: "projects", render: m.renderProjects},
		{id: "experience", render: m.renderTimeline},
		{id: "contact", render: m.renderContact},
		{render: m.renderFooter},
	}
}

func (m *model) contentWidth() int {
	return max(m.width-2*pageMargin, 20)
}

// heroFade maps opacity onto three levels: full, dimmed, hidden.
func heroFade(opacity float64) int {
	switch {
	case opacity > 0.66:
		return 0
	case opacity > 0.2:
		return 1
	default:
		return 2
	}
}

func (m *model) renderHero() rendered {
	cw := m.contentWidth()
	shift, fade := 0, 0
	if p := m.fx.parallax; p != nil {
		shift = roundInt(p.Y.Get())
		fade = heroFade(p.Opacity.Get())
	}
	style := func(s lipgloss.Style) lipgloss.Style {
		if fade == 1 {
			return m.styles.muted
		}
		return s
	}

	var body rendered
	body.addBlock(pageMargin, style(m.styles.badge).Render("✦ "+strings.ToUpper(m.content.Tagline)))
	body.add("")
	for i, line := range m.content.Headline {
		s := m.styles.headline
		if i == len(m.content.Headline)-1 && len(m.content.Headline) > 1 {
			s = m.styles.headlineAccent
		}
		body.add(strings.Repeat(" ", pageMargin) + style(s).Render(line))
	}
	body.add("")
	typed := ""
	if m.typewriter != nil {
		typed = m.typewriter.Visible()
	}
	body.add(strings.Repeat(" ", pageMargin) + style(m.styles.typed).Render(typed) + style(m.styles.caret).Render("|"))
	body.add("")
	for _, line := range splitLines(wordwrap.String(m.content.Intro, min(cw, 64))) {
		body.add(strings.Repeat(" ", pageMargin) + style(m.styles.sectionBody).Render(line))
	}
	body.add("")

	work := "Explore My Work ↓"
	touch := "Get in Touch"
	workStyle, touchStyle := m.styles.button, m.styles.buttonGhost
	var workDX, touchDX int
	if mg := m.fx.magnets[boxHeroWork]; mg != nil {
		workDX = roundInt(mg.Offset().X)
		if mg.Hovering() {
			workStyle = m.styles.buttonHot
		}
	}
	if mg := m.fx.magnets[boxHeroContact]; mg != nil {
		touchDX = roundInt(mg.Offset().X)
		if mg.Hovering() {
			touchStyle = m.styles.buttonHot
		}
	}
	workWidth := lipgloss.Width(m.styles.button.Render(work))
	touchWidth := lipgloss.Width(m.styles.buttonGhost.Render(touch))
	touchX := pageMargin + workWidth + 3
	body.mark(boxHeroWork, pageMargin, workWidth, 1)
	body.mark(boxHeroContact, touchX, touchWidth, 1)
	body.add(placeRow(
		placement{x: pageMargin + workDX, text: style(workStyle).Render(work)},
		placement{x: touchX + touchDX, text: style(touchStyle).Render(touch)},
	))

	height := max(m.layout.viewHeight, len(body.lines)+2)
	top := (height - len(body.lines)) / 2

	var out rendered
	for i := 0; i < top; i++ {
		out.add("")
	}
	out.boxes = map[string]input.Rect{}
	for name, r := range body.boxes {
		out.boxes[name] = r.Shift(0, float64(top))
	}
	if fade < 2 {
		for i := 0; i < shift; i++ {
			out.add("")
		}
		out.add(body.lines...)
	}
	out.lines = fitLines(out.lines, height)
	return out
}

// marqueeUnit repeats words until one unit is wide enough that a quarter
// of four units always covers width cells past the wrap interval.
func marqueeUnit(words []string, width int) string {
	if len(words) == 0 {
		return ""
	}
	var once strings.Builder
	for _, w := range words {
		once.WriteString(w)
		once.WriteString(marqueeSeparator)
	}
	unit := once.String()
	for len([]rune(unit))*22 < width*10 {
		unit += once.String()
	}
	return unit
}

// marqueeWindow returns width runes of the strip translated by x percent of
// its own width. The strip is four units long, so [-45, -20) is one unit.
func marqueeWindow(words []string, width int, x float64) string {
	unit := marqueeUnit(words, width)
	if unit == "" || width <= 0 {
		return strings.Repeat(" ", max(width, 0))
	}
	strip := []rune(strings.Repeat(unit, 4))
	n := len(strip)
	offset := roundInt(-x / 100 * float64(n))
	offset = ((offset % n) + n) % n
	out := make([]rune, width)
	for i := range out {
		out[i] = strip[(offset+i)%n]
	}
	return string(out)
}

func (m *model) renderMarquee() rendered {
	x := m.settings.Marquee.Wrap.To
	boost := 0.0
	if mq := m.fx.marquee; mq != nil {
		x = mq.X.Get()
		boost = math.Abs(mq.Boost())
	}
	window := marqueeWindow(m.content.Marquee, m.width, x)
	text := m.styles.marquee
	if boost > 0.5 {
		text = m.styles.skillName
	}
	var line strings.Builder
	for i, part := range strings.Split(window, "✦") {
		if i > 0 {
			line.WriteString(m.styles.marqueeSep.Render("✦"))
		}
		line.WriteString(text.Render(part))
	}
	rule := m.styles.barTrack.Render(strings.Repeat("─", max(m.width, 0)))
	var r rendered
	r.add("", rule, line.String(), rule, "")
	return r
}

func (m *model) revealAmount(name string) float64 {
	rv := m.fx.reveals[name]
	if rv == nil {
		return 1
	}
	return motion.Clamp01(rv.Amount())
}

func (m *model) renderSkills() rendered {
	cw := m.contentWidth()
	indent := strings.Repeat(" ", pageMargin)
	amount := m.revealAmount(boxSkills)

	var r rendered
	r.add("")
	r.mark(boxSkills, 0, m.width, 2+3*len(m.content.Skills))
	r.add(indent + m.styles.sectionTitle.Render("Technical Arsenal"))
	r.add("")
	barWidth := min(cw, 64)
	for _, s := range m.content.Skills {
		level := roundInt(float64(s.Level) * amount)
		head := m.styles.skillLevel.Render(s.Icon) + " " + m.styles.skillName.Render(s.Name)
		pct := m.styles.skillLevel.Render(fmt.Sprintf("%d%%", level))
		gap := max(barWidth-lipgloss.Width(head)-lipgloss.Width(pct), 1)
		r.add(indent + head + strings.Repeat(" ", gap) + pct)
		r.add(indent + renderGradientBar(accentGradient, barWidth, float64(s.Level)/100*amount, "━", m.styles.barTrack))
		r.add("")
	}
	return r
}

func (m *model) cardWidth() int {
	return min(m.contentWidth(), maxCardWidth)
}

func (m *model) renderCard(i int, p project, hot bool) string {
	width := m.cardWidth()
	var body strings.Builder
	body.WriteString(m.styles.timelineTitle.Render(p.Title))
	body.WriteString("\n")
	body.WriteString(renderMarkdown(p.Description))
	body.WriteString("\n\n")
	var tags []string
	for _, tag := range p.Tags {
		tags = append(tags, m.styles.tag.Render(strings.ToUpper(tag)))
	}
	body.WriteString(strings.Join(tags, ""))
	body.WriteString("\n")
	body.WriteString(m.styles.link.Render("↗ Source") + "   " + m.styles.link.Render("↗ Live Demo"))
	style := m.styles.card
	if hot {
		style = m.styles.cardHot
	}
	return style.Width(width - 2).Render(body.String())
}

// shear leans lines toward the pointer: rotY moves the whole card, rotX
// skews the top and bottom rows in opposite directions.
func shear(lines []string, left int, rotX, rotY float64) []string {
	out := make([]string, len(lines))
	half := float64(len(lines)-1) / 2
	for i, line := range lines {
		dx := rotY / 5
		if half > 0 {
			dx += rotX / 10 * (float64(i) - half) / half
		}
		out[i] = strings.Repeat(" ", max(left+roundInt(dx), 0)) + line
	}
	return out
}

func (m *model) renderProjects() rendered {
	indent := strings.Repeat(" ", pageMargin)
	slide := roundInt((1 - m.revealAmount(boxProjects)) * 8)

	var r rendered
	r.add("")
	start := len(r.lines)
	r.add(indent + m.styles.sectionTitle.Render("Featured Works"))
	r.add("")
	for i, p := range m.content.Projects {
		var rotX, rotY float64
		hot := false
		if i < len(m.fx.tilts) && m.fx.tilts[i] != nil {
			rotX, rotY = m.fx.tilts[i].Rotation()
			hot = m.fx.tilts[i].Hovering()
		}
		card := splitLines(m.renderCard(i, p, hot))
		r.mark(boxCard(i), pageMargin, m.cardWidth(), len(card))
		r.add(shear(card, pageMargin+slide, rotX, rotY)...)
		r.add("")
	}
	r.markSpan(boxProjects, start, m.width)
	return r
}

func (m *model) renderTimeline() rendered {
	cw := m.contentWidth()
	slide := strings.Repeat(" ", roundInt((1-m.revealAmount(boxTimeline))*6))
	indent := strings.Repeat(" ", pageMargin)
	const yearWidth = 16

	var r rendered
	r.add("")
	start := len(r.lines)
	r.add(indent + m.styles.sectionTitle.Render("My Journey"))
	r.add("")
	rail := m.styles.barTrack.Render("│")
	textWidth := max(cw-yearWidth-3, 12)
	for _, e := range m.content.Timeline {
		marker := m.styles.marqueeSep.Render("●")
		if e.Kind == "education" {
			marker = m.styles.marqueeSep.Render("◆")
		}
		year := m.styles.year.Render(e.Year)
		yearPad := strings.Repeat(" ", max(yearWidth-lipgloss.Width(year), 1))
		blank := strings.Repeat(" ", yearWidth)
		r.add(indent + slide + year + yearPad + marker + " " + m.styles.timelineTitle.Render(e.Title))
		r.add(indent + slide + blank + rail + " " + m.styles.company.Render(e.Company))
		for _, line := range splitLines(wordwrap.String(e.Description, textWidth)) {
			r.add(indent + slide + blank + rail + " " + m.styles.sectionBody.Render(line))
		}
		r.add(indent + slide + blank + rail)
	}
	r.markSpan(boxTimeline, start, m.width)
	return r
}

func (m *model) renderContact() rendered {
	cw := m.contentWidth()
	indent := strings.Repeat(" ", pageMargin)
	fieldWidth := min(cw, 60)
	c := m.content.Contact

	var r rendered
	r.add("")
	r.add(indent + m.styles.headline.Render(c.Heading))
	r.add("")
	for _, line := range splitLines(wordwrap.String(c.Blurb, min(cw, 64))) {
		r.add(indent + m.styles.sectionBody.Render(line))
	}
	r.add("")
	r.add(indent + m.styles.link.Render("✉  "+c.Email) + m.styles.muted.Render("  (y to copy)"))
	r.add(indent + m.styles.link.Render("in "+c.LinkedIn))
	r.add("")

	field := func(box, label string, focused bool, view string) {
		r.add(indent + m.styles.label.Render(label))
		style := m.styles.field
		if focused {
			style = m.styles.fieldFocused
		}
		rendered := style.Width(fieldWidth - 2).Render(view)
		r.mark(box, pageMargin, fieldWidth, lipgloss.Height(rendered))
		r.addBlock(pageMargin, rendered)
	}
	f := &m.form
	field(boxContactName, "Your Name", f.focus == fieldName, f.name.View())
	field(boxContactEmail, "Email Address", f.focus == fieldEmail, f.email.View())
	field(boxContactMessage, "Message", f.focus == fieldMessage, f.message.View())
	r.add("")

	label := "Send Message ➤"
	style := m.styles.submit
	if f.focus == fieldSend {
		style = m.styles.buttonHot
	}
	if f.sending {
		label = f.spinner.View() + " Sending..."
		style = m.styles.submitBusy
	}
	dx := 0
	if mg := m.fx.magnets[boxContactSend]; mg != nil {
		dx = roundInt(mg.Offset().X)
		if mg.Hovering() && !f.sending {
			style = m.styles.buttonHot
		}
	}
	button := style.Render(label)
	r.mark(boxContactSend, pageMargin, lipgloss.Width(m.styles.submit.Render("Send Message ➤")), 1)
	r.add(placeRow(placement{x: pageMargin + dx, text: button}))
	status := ""
	if f.status != "" {
		status = indent + m.styles.muted.Render(f.status)
	}
	r.add(status, "")
	return r
}

func (m *model) renderFooter() rendered {
	cw := m.contentWidth()
	text := m.styles.footer.Render(m.content.Footer)
	pad := max((m.width-lipgloss.Width(text))/2, 0)
	var r rendered
	r.add(strings.Repeat(" ", pageMargin)+m.styles.barTrack.Render(strings.Repeat("─", cw)), "")
	r.add(strings.Repeat(" ", pad)+text, "")
	return r
}
