package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"go.uber.org/zap"

	"github.com/bekirdag/folio/internal/effects"
	"github.com/bekirdag/folio/internal/frame"
	"github.com/bekirdag/folio/internal/input"
	"github.com/bekirdag/folio/internal/motion"
)

const toastDuration = 3 * time.Second

type frameMsg time.Time

type toastExpiredMsg struct{ id int }

type keyMap struct {
	quit      key.Binding
	down      key.Binding
	up        key.Binding
	pageDown  key.Binding
	pageUp    key.Binding
	top       key.Binding
	bottom    key.Binding
	sections  key.Binding
	form      key.Binding
	copyEmail key.Binding
	theme     key.Binding
	menu      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "scroll"),
		),
		up: key.NewBinding(
			key.WithKeys("k", "up"),
		),
		pageDown: key.NewBinding(
			key.WithKeys("pgdown", " ", "f"),
			key.WithHelp("pgdn", "page"),
		),
		pageUp: key.NewBinding(
			key.WithKeys("pgup", "b"),
		),
		top: key.NewBinding(
			key.WithKeys("home", "g"),
		),
		bottom: key.NewBinding(
			key.WithKeys("end", "G"),
		),
		sections: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-5", "sections"),
		),
		form: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "contact form"),
		),
		copyEmail: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy email"),
		),
		theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.down, k.pageDown, k.sections, k.form, k.copyEmail, k.theme, k.menu, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.down, k.up, k.pageDown, k.pageUp, k.top, k.bottom},
		{k.sections, k.menu, k.form},
		{k.copyEmail, k.theme, k.quit},
	}
}

// pageEffects is everything mounted for one content revision. Any field may
// be nil when the effect could not be built.
type pageEffects struct {
	scope    *effects.Scope
	cursor   *effects.Cursor
	progress *effects.ScrollProgress
	ambient  *effects.Ambient
	marquee  *effects.Marquee
	parallax *effects.Parallax
	magnets  map[string]*effects.Magnetic
	tilts    []*effects.TiltCard
	reveals  map[string]*effects.Reveal
}

type modelOptions struct {
	settings    effects.Settings
	content     *siteContent
	logger      *zap.Logger
	telemetry   *telemetryLogger
	clock       frame.Clock
	skipPreload bool
	notice      string
}

type model struct {
	width  int
	height int

	settings  effects.Settings
	content   *siteContent
	styles    styles
	keys      keyMap
	help      help.Model
	loadBar   progress.Model
	logger    *zap.Logger
	telemetry *telemetryLogger

	clock   frame.Clock
	origin  time.Time
	loop    *frame.Loop
	events  *input.Events
	framing bool

	scrollTarget  *motion.Value
	scroll        *motion.Spring
	releaseScroll motion.Unsubscribe

	layout pageLayout
	fx     pageEffects

	preloader   *effects.Preloader
	preloadSlot *frame.Slot
	preloadLast float64
	typewriter  *effects.Typewriter
	typeSlot    *frame.Slot
	typeLast    float64

	form        contactForm
	menuOpen    bool
	pointerIn   bool
	pointerSeen bool
	section     string

	notice       string
	toastMessage string
	toastID      int
	quitting     bool
}

func newModel(opts modelOptions) *model {
	if opts.logger == nil {
		opts.logger = zap.NewNop()
	}
	if opts.clock == nil {
		opts.clock = frame.SystemClock{}
	}
	if opts.content == nil {
		opts.content = defaultContent()
	}
	m := &model{
		settings:  opts.settings,
		content:   opts.content,
		styles:    newStyles(),
		keys:      newKeyMap(),
		help:      help.New(),
		logger:    opts.logger,
		telemetry: opts.telemetry,
		clock:     opts.clock,
		origin:    opts.clock.Now(),
		loop:      frame.NewLoop(),
		events:    input.NewEvents(input.Viewport{}),
		form:      newContactForm(),
		notice:    opts.notice,
		loadBar: progress.New(
			progress.WithGradient(string(palette.accent), string(palette.blue)),
			progress.WithoutPercentage(),
		),
		preloadLast: math.NaN(),
		typeLast:    math.NaN(),
	}

	m.scrollTarget = motion.NewValue("page.scroll.target", 0)
	spring, err := motion.NewSpring(m.loop, m.scrollTarget, m.settings.Scroll.Spring)
	if err != nil {
		m.logger.Warn("scroll spring rejected, using defaults", zap.Error(err))
		spring, _ = motion.NewSpring(m.loop, m.scrollTarget, effects.DefaultSettings().Scroll.Spring)
	}
	m.scroll = spring
	m.releaseScroll = spring.Value().Subscribe(m.events.Scroll)

	m.typewriter = effects.NewTypewriter(m.content.Role, m.settings.Typewriter)
	m.typeSlot = m.loop.Slot()
	m.preloader = effects.NewPreloader(m.settings.Preloader)
	m.preloadSlot = m.loop.Slot()
	m.preloader.OnFinish = func() {
		m.logger.Debug("preloader finished", zap.Int("percent", m.preloader.Percent()))
		m.telemetry.Emit(telemetryEvent{Event: eventPreloaderDone})
	}
	m.preloader.OnDone = m.startTypewriter
	if opts.skipPreload {
		m.preloader.Skip()
	} else {
		m.preloadSlot.Request(m.preloadFrame)
	}

	m.mountEffects()
	return m
}

func (m *model) Init() tea.Cmd {
	m.telemetry.Emit(telemetryEvent{Event: eventSessionStart})
	cmds := []tea.Cmd{m.requestFrame()}
	if m.notice != "" {
		cmds = append(cmds, m.setToast(m.notice, 2*toastDuration))
	}
	return tea.Batch(cmds...)
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch message := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = message.Width, message.Height
		m.relayout()

	case frameMsg:
		m.framing = false
		m.loop.Tick(frame.Millis(m.origin, time.Time(message)))
		m.trackSection()

	case tea.KeyMsg:
		if message.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		if m.preloader.State() != effects.PreloaderDone {
			m.preloader.Skip()
			break
		}
		if m.form.focused() {
			cmds = append(cmds, m.handleFormKey(message))
			break
		}
		if key.Matches(message, m.keys.quit) {
			return m, m.quit()
		}
		cmds = append(cmds, m.handleKey(message))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(message))

	case spinner.TickMsg:
		if m.form.sending {
			var cmd tea.Cmd
			m.form.spinner, cmd = m.form.spinner.Update(message)
			cmds = append(cmds, cmd)
		}

	case contactSentMsg:
		m.form.finish()
		m.telemetry.Emit(telemetryEvent{Event: eventContactSubmitted, Section: "contact"})
		m.logger.Info("contact form sent")
		cmds = append(cmds, m.setToast("Message sent!", toastDuration))

	case contentReloadedMsg:
		cmds = append(cmds, m.applyContent(message))

	case toastExpiredMsg:
		if message.id == m.toastID {
			m.toastMessage = ""
		}

	default:
		// cursor blink and other input internals
		if m.form.focused() {
			cmds = append(cmds, m.form.update(msg))
		}
	}

	if !m.quitting {
		cmds = append(cmds, m.requestFrame())
	}
	return m, tea.Batch(cmds...)
}

// requestFrame schedules the next animation frame while anything is
// subscribed to the loop. At most one frame is in flight.
func (m *model) requestFrame() tea.Cmd {
	if m.framing || !m.loop.Active() {
		return nil
	}
	m.framing = true
	return tea.Tick(frame.Interval(m.settings.FPS), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *model) quit() tea.Cmd {
	m.quitting = true
	m.close()
	return tea.Quit
}

// close releases every effect and the frame loop.
func (m *model) close() {
	if m.fx.scope != nil {
		m.fx.scope.Close()
	}
	m.preloadSlot.Cancel()
	m.typeSlot.Cancel()
	m.releaseScroll()
	m.scroll.Close()
	m.loop.Close()
}

func (m *model) preloadFrame(ts float64) {
	if !math.IsNaN(m.preloadLast) {
		m.preloader.Advance(millisToDuration(ts - m.preloadLast))
	}
	m.preloadLast = ts
	if m.preloader.State() != effects.PreloaderDone {
		m.preloadSlot.Request(m.preloadFrame)
	}
}

func (m *model) startTypewriter() {
	m.typeLast = math.NaN()
	if !m.typewriter.Done() {
		m.typeSlot.Request(m.typeFrame)
	}
}

func (m *model) typeFrame(ts float64) {
	if !math.IsNaN(m.typeLast) {
		m.typewriter.Advance(millisToDuration(ts - m.typeLast))
	}
	m.typeLast = ts
	if !m.typewriter.Done() {
		m.typeSlot.Request(m.typeFrame)
	}
}

func millisToDuration(ms float64) time.Duration {
	if ms <= 0 || math.IsNaN(ms) {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

func (m *model) effectFailed(name string, err error) {
	m.logger.Warn("effect disabled", zap.String("effect", name), zap.Error(err))
}

// mountEffects opens every effect for the current content, replacing any
// previous set.
func (m *model) mountEffects() {
	if m.fx.scope != nil {
		m.fx.scope.Close()
	}
	scope := &effects.Scope{}
	fx := pageEffects{
		scope:   scope,
		magnets: map[string]*effects.Magnetic{},
		reveals: map[string]*effects.Reveal{},
	}
	env := effects.Env{Events: m.events, Loop: m.loop}
	s := m.settings

	if c, err := effects.OpenCursor(env, s.Cursor); err != nil {
		m.effectFailed("cursor", err)
	} else {
		scope.Own(c)
		fx.cursor = c
	}
	if p, err := effects.OpenScrollProgress(env, s.Progress); err != nil {
		m.effectFailed("progress", err)
	} else {
		scope.Own(p)
		fx.progress = p
	}
	fx.ambient = effects.OpenAmbient(env)
	scope.Own(fx.ambient)
	if mq, err := effects.OpenMarquee(env, s.Marquee); err != nil {
		m.effectFailed("marquee", err)
	} else {
		scope.Own(mq)
		fx.marquee = mq
	}
	if p, err := effects.OpenParallax(env, m.sectionRect("about"), s.Parallax); err != nil {
		m.effectFailed("parallax", err)
	} else {
		scope.Own(p)
		fx.parallax = p
	}
	for _, name := range []string{boxHeroWork, boxHeroContact, boxContactSend} {
		mg, err := effects.OpenMagnetic(env, name, m.viewRect(name), s.Magnetic)
		if err != nil {
			m.effectFailed(name, err)
			continue
		}
		scope.Own(mg)
		fx.magnets[name] = mg
	}
	for i := range m.content.Projects {
		card := effects.OpenTiltCard(env, boxCard(i), m.viewRect(boxCard(i)), s.Tilt)
		scope.Own(card)
		fx.tilts = append(fx.tilts, card)
	}
	for _, name := range []string{boxSkills, boxProjects, boxTimeline} {
		rv, err := effects.OpenReveal(env, name, m.docRect(name), s.Reveal)
		if err != nil {
			m.effectFailed(name, err)
			continue
		}
		scope.Own(rv)
		fx.reveals[name] = rv
	}
	m.fx = fx
}

func (m *model) docRect(name string) func() input.Rect {
	return func() input.Rect { return m.layout.box(name) }
}

// viewRect returns name's box in viewport cells at the current scroll. Hero
// buttons also follow the parallax shift.
func (m *model) viewRect(name string) func() input.Rect {
	return func() input.Rect {
		dy := -float64(m.scrollRow())
		if (name == boxHeroWork || name == boxHeroContact) && m.fx.parallax != nil {
			dy += float64(roundInt(m.fx.parallax.Y.Get()))
		}
		return m.layout.box(name).Shift(0, dy)
	}
}

func (m *model) sectionRect(id string) func() input.Rect {
	return func() input.Rect {
		b, ok := m.layout.blockByID(id)
		if !ok {
			return input.Rect{}
		}
		return input.Rect{Width: float64(m.layout.width), Top: float64(b.top), Height: float64(b.height)}
	}
}

func (m *model) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.layout.width = m.width
	m.layout.viewHeight = max(m.height-headerRows-footerRows, 1)
	setMarkdownWordWrap(m.cardWidth() - 8)
	m.form.setWidth(min(m.contentWidth(), 60))
	m.loadBar.Width = min(40, max(m.width-4, 10))
	m.help.Width = m.width
	m.layout.blocks = m.blocks()
	m.layout.measure()
	m.layout.nav = m.navHits()
	m.events.Resize(m.layout.viewport())
	m.scrollTo(m.scrollTarget.Get())
	if m.scroll.Get() > m.layout.viewport().MaxScroll() {
		m.scroll.Jump(m.scrollTarget.Get())
	}
	m.trackSection()
}

func (m *model) applyContent(msg contentReloadedMsg) tea.Cmd {
	var cmd tea.Cmd
	if msg.err != nil {
		m.logger.Warn("content reload failed", zap.Error(msg.err))
		cmd = m.setToast("content: "+msg.err.Error(), toastDuration)
	}
	if msg.content == nil {
		return cmd
	}
	roleChanged := msg.content.Role != m.content.Role
	m.content = msg.content
	if roleChanged {
		m.typewriter.Reset(m.content.Role)
		if m.preloader.State() == effects.PreloaderDone {
			m.startTypewriter()
		}
	}
	m.mountEffects()
	m.relayout()
	m.logger.Info("content reloaded", zap.Int("projects", len(m.content.Projects)))
	if cmd == nil {
		cmd = m.setToast("Content reloaded", toastDuration)
	}
	return cmd
}

func (m *model) scrollRow() int {
	return roundInt(m.events.ScrollOffset())
}

func (m *model) scrollTo(row float64) {
	limit := m.layout.viewport().MaxScroll()
	m.scrollTarget.Set(math.Max(0, math.Min(row, limit)))
}

func (m *model) scrollBy(delta float64) {
	m.scrollTo(m.scrollTarget.Get() + delta)
}

func (m *model) jumpTo(section string) {
	if b, ok := m.layout.blockByID(section); ok {
		m.scrollTo(float64(b.top))
	}
}

// ensureVisible scrolls just enough to bring a box into the viewport.
func (m *model) ensureVisible(name string) {
	r := m.layout.box(name)
	top := m.scrollTarget.Get()
	view := float64(m.layout.viewHeight)
	switch {
	case r.Top < top:
		m.scrollTo(r.Top - 1)
	case r.Bottom() > top+view:
		m.scrollTo(r.Bottom() - view + 1)
	}
}

func (m *model) trackSection() {
	current := m.layout.sectionAt(m.scrollRow())
	if current == m.section {
		return
	}
	m.section = current
	if current != "" && m.preloader.State() == effects.PreloaderDone {
		m.telemetry.Emit(telemetryEvent{Event: eventSectionViewed, Section: current})
	}
}

func (m *model) setToast(msg string, duration time.Duration) tea.Cmd {
	trimmed := strings.TrimSpace(msg)
	m.toastID++
	m.toastMessage = trimmed
	if trimmed == "" {
		return nil
	}
	if duration <= 0 {
		duration = toastDuration
	}
	id := m.toastID
	return tea.Tick(duration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	page := float64(max(m.layout.viewHeight-2, 1))
	switch {
	case key.Matches(msg, m.keys.down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.pageDown):
		m.scrollBy(page)
	case key.Matches(msg, m.keys.pageUp):
		m.scrollBy(-page)
	case key.Matches(msg, m.keys.top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.bottom):
		m.scrollTo(m.layout.viewport().MaxScroll())
	case key.Matches(msg, m.keys.sections):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(m.content.Navigation) {
			m.jumpTo(m.content.Navigation[i].Section)
			m.menuOpen = false
		}
	case key.Matches(msg, m.keys.form):
		step := 1
		if msg.String() == "shift+tab" {
			step = -1
		}
		return m.focusField(m.form.cycle(step))
	case key.Matches(msg, m.keys.copyEmail):
		return m.copyEmail()
	case key.Matches(msg, m.keys.theme):
		theme := nextMarkdownTheme(currentMarkdownTheme())
		setMarkdownTheme(theme)
		m.relayout()
		return m.setToast("Markdown theme: "+string(theme), toastDuration)
	case key.Matches(msg, m.keys.menu):
		m.menuOpen = !m.menuOpen
	}
	return nil
}

func (m *model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.form.setFocus(fieldNone)
	case "tab":
		return m.focusField(m.form.cycle(1))
	case "shift+tab":
		return m.focusField(m.form.cycle(-1))
	case "enter":
		switch m.form.focus {
		case fieldSend:
			return m.form.submit()
		case fieldName, fieldEmail:
			return m.focusField(m.form.cycle(1))
		}
	}
	if m.form.focus == fieldSend {
		return nil
	}
	return m.form.update(msg)
}

func (m *model) focusField(cmd tea.Cmd) tea.Cmd {
	if box := fieldBox(m.form.focus); box != "" {
		m.ensureVisible(box)
	}
	return cmd
}

func fieldBox(f contactField) string {
	switch f {
	case fieldName:
		return boxContactName
	case fieldEmail:
		return boxContactEmail
	case fieldMessage:
		return boxContactMessage
	case fieldSend:
		return boxContactSend
	}
	return ""
}

func (m *model) copyEmail() tea.Cmd {
	email := m.content.Contact.Email
	if err := clipboard.WriteAll(email); err != nil {
		m.logger.Warn("clipboard unavailable", zap.Error(err))
		return m.setToast("Clipboard unavailable: "+email, toastDuration)
	}
	m.telemetry.Emit(telemetryEvent{Event: eventEmailCopied, Section: "contact"})
	return m.setToast("Copied "+email, toastDuration)
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Type {
	case tea.MouseWheelUp:
		m.scrollBy(-float64(m.settings.Scroll.WheelStep))
		return nil
	case tea.MouseWheelDown:
		m.scrollBy(float64(m.settings.Scroll.WheelStep))
		return nil
	}
	p := input.Point{X: float64(msg.X), Y: float64(msg.Y - headerRows)}
	inPage := msg.Y >= headerRows && msg.Y < headerRows+m.layout.viewHeight
	if m.pointerIn && !inPage {
		m.events.PointerLeave()
	}
	m.pointerIn = inPage
	m.pointerSeen = true
	m.events.PointerMove(p)
	if msg.Type == tea.MouseLeft {
		return m.click(msg.X, msg.Y, p, inPage)
	}
	return nil
}

func (m *model) click(x, y int, p input.Point, inPage bool) tea.Cmd {
	if y == headerRows-1 {
		for _, hit := range m.layout.nav {
			if x >= hit.from && x < hit.to {
				if hit.section == "" {
					m.menuOpen = !m.menuOpen
				} else {
					m.jumpTo(hit.section)
				}
				return nil
			}
		}
		return nil
	}
	if !inPage {
		return nil
	}
	if m.menuOpen {
		if section, ok := m.menuHit(x, int(p.Y)); ok {
			m.menuOpen = false
			m.jumpTo(section)
			return nil
		}
	}
	switch {
	case m.viewRect(boxHeroWork)().Contains(p):
		m.jumpTo("projects")
	case m.viewRect(boxHeroContact)().Contains(p):
		m.jumpTo("contact")
	case m.viewRect(boxContactSend)().Contains(p):
		m.form.setFocus(fieldSend)
		return m.form.submit()
	default:
		for _, f := range []contactField{fieldName, fieldEmail, fieldMessage} {
			if m.viewRect(fieldBox(f))().Contains(p) {
				return m.form.setFocus(f)
			}
		}
		if m.form.focused() {
			return m.form.setFocus(fieldNone)
		}
	}
	return nil
}

// navHits measures the navbar the same way renderNav lays it out.
func (m *model) navHits() []navHit {
	brand, right, items := m.navParts()
	x := 1 + lipgloss.Width(brand) + max(m.width-2-lipgloss.Width(brand)-lipgloss.Width(right), 1)
	var hits []navHit
	for _, it := range items {
		w := lipgloss.Width(it.text)
		hits = append(hits, navHit{from: x, to: x + w, section: it.section})
		x += w
	}
	return hits
}

type navItem struct {
	text    string
	section string
}

func (m *model) navParts() (string, string, []navItem) {
	brand := m.styles.brand.Render(m.content.Brand)
	var items []navItem
	if m.width < mobileBreakpoint {
		label := "☰ menu"
		if m.menuOpen {
			label = "✕ close"
		}
		items = append(items, navItem{text: m.styles.navLink.Render(label)})
	} else {
		for _, link := range m.content.Navigation {
			style := m.styles.navLink
			if link.Section == m.section {
				style = m.styles.navLinkActive
			}
			items = append(items, navItem{text: style.Render(link.Name), section: link.Section})
		}
	}
	var right strings.Builder
	for _, it := range items {
		right.WriteString(it.text)
	}
	return brand, right.String(), items
}

func (m *model) menuLines() []string {
	var b strings.Builder
	for i, link := range m.content.Navigation {
		if i > 0 {
			b.WriteString("\n")
		}
		style := m.styles.navLink
		if link.Section == m.section {
			style = m.styles.navLinkActive
		}
		b.WriteString(fmt.Sprintf("%s %s", m.styles.muted.Render(fmt.Sprint(i+1)), style.Render(link.Name)))
	}
	return splitLines(m.styles.menu.Render(b.String()))
}

func (m *model) menuLeft(lines []string) int {
	return max(m.width-lipgloss.Width(lines[0])-1, 0)
}

// menuHit maps a viewport cell onto a menu entry. Entries start one row
// below the border.
func (m *model) menuHit(x, row int) (string, bool) {
	lines := m.menuLines()
	left := m.menuLeft(lines)
	i := row - 1
	if x < left || x >= left+lipgloss.Width(lines[0]) || i < 0 || i >= len(m.content.Navigation) {
		return "", false
	}
	return m.content.Navigation[i].Section, true
}

func (m *model) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := m.pageLines()
	if m.preloader.State() != effects.PreloaderDone {
		cover := m.preloaderLines()
		cut := roundInt((1 - m.preloader.Exit().Get()) * float64(m.height))
		cut = max(0, min(cut, m.height))
		lines = append(cover[m.height-cut:], lines[cut:]...)
	}
	return strings.Join(lines, "\n")
}

func (m *model) pageLines() []string {
	lines := make([]string, 0, m.height)
	lines = append(lines, m.renderProgressBar(), m.renderNav())

	view := m.layout.compose(m.scrollRow())
	m.applyGlow(view)
	if m.menuOpen {
		menu := m.menuLines()
		left := m.menuLeft(menu)
		for i, line := range menu {
			if i < len(view) {
				view[i] = overlayAt(view[i], left, line)
			}
		}
	}
	lines = append(lines, view...)
	lines = append(lines, m.renderStatus())
	lines = fitLines(lines, m.height)
	m.drawCursor(lines)
	return lines
}

func (m *model) renderProgressBar() string {
	fill := 0.0
	if m.fx.progress != nil {
		fill = m.fx.progress.ScaleX()
	}
	return renderGradientBar(accentGradient, m.width, fill, "━", m.styles.barTrack)
}

func (m *model) renderNav() string {
	brand, right, _ := m.navParts()
	gap := max(m.width-2-lipgloss.Width(brand)-lipgloss.Width(right), 1)
	style := m.styles.navBar
	if m.scrollRow() > 2 {
		style = m.styles.navBarScrolled
	}
	line := truncate.String(brand+strings.Repeat(" ", gap)+right, uint(max(m.width-2, 0)))
	return style.Width(m.width).Render(line)
}

func (m *model) renderStatus() string {
	percent := 0
	if m.fx.progress != nil {
		percent = roundInt(m.fx.progress.Raw() * 100)
	}
	label := m.section
	if i := m.content.sectionIndex(m.section); i >= 0 {
		label = fmt.Sprintf("%d %s", i+1, m.content.Navigation[i].Name)
	}
	right := m.styles.statusHint.Render(fmt.Sprintf("%s · %d%%", label, percent))
	var left string
	if m.toastMessage != "" {
		left = m.styles.toast.Render(m.toastMessage)
	} else {
		m.help.Width = max(m.width-lipgloss.Width(right)-4, 0)
		left = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	gap := max(m.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := truncate.String(left+strings.Repeat(" ", gap)+right, uint(max(m.width-2, 0)))
	return m.styles.statusBar.Render(line)
}

// applyGlow tints empty viewport rows with the ambient gradient.
func (m *model) applyGlow(view []string) {
	if m.fx.ambient == nil || !m.pointerSeen {
		return
	}
	fx, fy := m.fx.ambient.Center()
	cx := fx * float64(m.width)
	cy := fy * float64(m.layout.viewHeight)
	radius := float64(m.layout.viewHeight) / 2
	for i, line := range view {
		if strings.TrimSpace(line) == "" {
			view[i] = glowLine(m.width, i, cx, cy, radius)
		}
	}
}

// drawCursor draws a ring around the smoothed pointer. The cursor bias puts
// its position on the ring's top-left corner.
func (m *model) drawCursor(lines []string) {
	if m.fx.cursor == nil || !m.pointerSeen {
		return
	}
	pos := m.fx.cursor.Position()
	x := roundInt(pos.X)
	y := roundInt(pos.Y) + headerRows
	if x < 0 || x+3 > m.width {
		return
	}
	style := m.styles.cursor
	rows := []func(string) string{
		func(l string) string { return overlayAt(l, x, style.Render("╭─╮")) },
		func(l string) string {
			l = overlayAt(l, x, style.Render("│"))
			return overlayAt(l, x+2, style.Render("│"))
		},
		func(l string) string { return overlayAt(l, x, style.Render("╰─╯")) },
	}
	for i, draw := range rows {
		if row := y + i; row >= 0 && row < len(lines) {
			lines[row] = draw(lines[row])
		}
	}
}

func (m *model) preloaderLines() []string {
	pct := m.preloader.Percent()
	count := m.styles.preloaderCount.Render(fmt.Sprintf("%3d%%", pct))
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.brand.Render(m.content.Brand),
		"",
		count,
		"",
		m.loadBar.ViewAs(float64(pct)/100),
		"",
		m.styles.muted.Render("LOADING EXPERIENCE"),
	)
	full := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(palette.background))
	return fitLines(splitLines(full), m.height)
}
