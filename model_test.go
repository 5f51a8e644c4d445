package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/bekirdag/folio/internal/effects"
	"github.com/bekirdag/folio/internal/frame"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, skipPreload bool) (*model, *frame.ManualClock) {
	t.Helper()
	clock := frame.NewManualClock(epoch)
	m := newModel(modelOptions{
		settings:    effects.DefaultSettings(),
		content:     defaultContent(),
		logger:      zaptest.NewLogger(t),
		clock:       clock,
		skipPreload: skipPreload,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, clock
}

// advance delivers n frames at 60 frames per second.
func advance(m *model, clock *frame.ManualClock, n int) {
	for i := 0; i < n; i++ {
		clock.Advance(time.Second / 60)
		m.Update(frameMsg(clock.Now()))
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewFillsTerminal(t *testing.T) {
	m, clock := newTestModel(t, true)
	advance(m, clock, 3)
	view := m.View()
	assert.Len(t, strings.Split(view, "\n"), 30)
	assert.Contains(t, view, m.content.Brand)
	assert.Contains(t, view, "Explore My Work")
}

func TestWheelScrollsPageAndProgress(t *testing.T) {
	m, clock := newTestModel(t, true)
	require.Zero(t, m.events.ScrollOffset())

	m.Update(tea.MouseMsg{X: 10, Y: 10, Type: tea.MouseWheelDown})
	assert.Equal(t, 3.0, m.scrollTarget.Get())

	advance(m, clock, 120)
	assert.Equal(t, 3.0, m.events.ScrollOffset())
	assert.Greater(t, m.fx.progress.Raw(), 0.0)
	assert.Greater(t, m.fx.progress.ScaleX(), 0.0)

	m.Update(tea.MouseMsg{X: 10, Y: 10, Type: tea.MouseWheelUp})
	m.Update(tea.MouseMsg{X: 10, Y: 10, Type: tea.MouseWheelUp})
	assert.Zero(t, m.scrollTarget.Get(), "scroll clamps at the top")
}

func TestKeysScrollWithinDocument(t *testing.T) {
	m, _ := newTestModel(t, true)
	limit := m.layout.viewport().MaxScroll()
	require.Greater(t, limit, 0.0)

	m.Update(runes("G"))
	assert.Equal(t, limit, m.scrollTarget.Get())
	m.Update(runes("j"))
	assert.Equal(t, limit, m.scrollTarget.Get())
	m.Update(runes("g"))
	assert.Zero(t, m.scrollTarget.Get())
}

func TestSectionKeysJump(t *testing.T) {
	m, _ := newTestModel(t, true)
	skills, ok := m.layout.blockByID("skills")
	require.True(t, ok)

	m.Update(runes("2"))
	assert.Equal(t, float64(skills.top), m.scrollTarget.Get())
}

func TestQuitReleasesEverything(t *testing.T) {
	m, _ := newTestModel(t, true)
	require.Greater(t, m.events.ListenerCount(), 0)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, m.events.ListenerCount())
	assert.False(t, m.loop.Active())
	assert.Empty(t, m.View())
}

func TestRemountDoesNotLeakListeners(t *testing.T) {
	m, _ := newTestModel(t, true)
	before := m.events.ListenerCount()
	for i := 0; i < 10; i++ {
		m.mountEffects()
	}
	assert.Equal(t, before, m.events.ListenerCount())
}

func TestPreloaderRunsThenTypewriterStarts(t *testing.T) {
	m, clock := newTestModel(t, false)
	assert.Equal(t, effects.PreloaderLoading, m.preloader.State())
	assert.Contains(t, m.View(), "LOADING EXPERIENCE")

	advance(m, clock, 300)
	assert.Equal(t, effects.PreloaderDone, m.preloader.State())
	assert.Equal(t, 100, m.preloader.Percent())
	assert.NotContains(t, m.View(), "LOADING EXPERIENCE")

	advance(m, clock, 150)
	assert.True(t, m.typewriter.Done())
	assert.Equal(t, m.content.Role, m.typewriter.Visible())
}

func TestKeyDuringPreloaderSkipsIt(t *testing.T) {
	m, _ := newTestModel(t, false)
	m.Update(runes("q"))
	assert.Equal(t, effects.PreloaderDone, m.preloader.State())
	assert.False(t, m.quitting, "the first key only skips the preloader")
	assert.NotContains(t, m.View(), "LOADING EXPERIENCE")
}

func TestNavClickJumpsToSection(t *testing.T) {
	m, _ := newTestModel(t, true)
	var hit navHit
	for _, h := range m.layout.nav {
		if h.section == "contact" {
			hit = h
		}
	}
	require.NotZero(t, hit.to)

	m.Update(tea.MouseMsg{X: hit.from + 1, Y: headerRows - 1, Type: tea.MouseLeft})
	contact, _ := m.layout.blockByID("contact")
	want := min(float64(contact.top), m.layout.viewport().MaxScroll())
	assert.Equal(t, want, m.scrollTarget.Get())
}

func TestHeroButtonClick(t *testing.T) {
	m, _ := newTestModel(t, true)
	r := m.viewRect(boxHeroWork)()
	require.NotZero(t, r.Width)

	c := r.Center()
	m.Update(tea.MouseMsg{X: int(c.X), Y: int(r.Top) + headerRows, Type: tea.MouseLeft})
	projects, _ := m.layout.blockByID("projects")
	assert.Equal(t, float64(projects.top), m.scrollTarget.Get())
	assert.True(t, m.fx.magnets[boxHeroWork].Hovering())
}

func TestMobileMenu(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 24})
	require.Len(t, m.layout.nav, 1)

	hit := m.layout.nav[0]
	m.Update(tea.MouseMsg{X: hit.from, Y: headerRows - 1, Type: tea.MouseLeft})
	assert.True(t, m.menuOpen)
	assert.Contains(t, m.View(), "Experience")

	m.Update(runes("m"))
	assert.False(t, m.menuOpen)
}

func TestContactFormSubmit(t *testing.T) {
	m, _ := newTestModel(t, true)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, fieldName, m.form.focus)
	m.Update(runes("q"))
	assert.Equal(t, "q", m.form.name.Value(), "keys go to the focused field")

	m.form.name.SetValue("Ada")
	m.form.email.SetValue("ada@example.com")
	m.form.message.SetValue("Let's build something.")
	m.form.setFocus(fieldSend)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.True(t, m.form.sending)

	m.Update(contactSentMsg{})
	assert.False(t, m.form.sending)
	assert.Empty(t, m.form.name.Value())
	assert.Empty(t, m.form.email.Value())
	assert.Empty(t, m.form.message.Value())
	assert.False(t, m.form.focused())
	assert.Equal(t, "Message sent!", m.toastMessage)
}

func TestContactFormRejectsBadEmail(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.form.name.SetValue("Ada")
	m.form.email.SetValue("not an email")
	m.form.message.SetValue("hi")

	assert.Nil(t, m.form.submit())
	assert.False(t, m.form.sending)
	assert.Equal(t, errEmailInvalid.Error(), m.form.status)
}

func TestEscapeLeavesForm(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, m.form.focused())
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.form.focused())
}

func TestContentReloadRemounts(t *testing.T) {
	m, _ := newTestModel(t, true)
	c := defaultContent()
	c.Projects = c.Projects[:1]
	c.Role = "Go Developer"

	m.Update(contentReloadedMsg{content: c})
	assert.Len(t, m.fx.tilts, 1)
	assert.Equal(t, "Content reloaded", m.toastMessage)
	assert.True(t, m.typewriter.Visible() == "" || strings.HasPrefix("Go Developer", m.typewriter.Visible()))
}

func TestContentReloadErrorKeepsPage(t *testing.T) {
	m, _ := newTestModel(t, true)
	brand := m.content.Brand
	m.Update(contentReloadedMsg{err: errEmptyContent})
	assert.Equal(t, brand, m.content.Brand)
	assert.Contains(t, m.toastMessage, errEmptyContent.Error())
}

func TestToastExpires(t *testing.T) {
	m, _ := newTestModel(t, true)
	m.setToast("first", time.Second)
	stale := m.toastID
	m.setToast("second", time.Second)

	m.Update(toastExpiredMsg{id: stale})
	assert.Equal(t, "second", m.toastMessage)
	m.Update(toastExpiredMsg{id: m.toastID})
	assert.Empty(t, m.toastMessage)
}

func TestPointerDrivesCursor(t *testing.T) {
	m, clock := newTestModel(t, true)
	m.Update(tea.MouseMsg{X: 40, Y: 12, Type: tea.MouseMotion})
	advance(m, clock, 120)

	pos := m.fx.cursor.Position()
	assert.InDelta(t, 39, pos.X, 0.05)
	assert.InDelta(t, float64(12-headerRows-1), pos.Y, 0.05)
	assert.Contains(t, m.View(), "╭─╮")
}

func TestFastScrollBoostsMarquee(t *testing.T) {
	m, clock := newTestModel(t, true)
	require.NotNil(t, m.fx.marquee)

	peak := 0.0
	for i := 0; i < 10; i++ {
		m.Update(tea.MouseMsg{X: 10, Y: 10, Type: tea.MouseWheelDown})
		for f := 0; f < 3; f++ {
			advance(m, clock, 1)
			peak = max(peak, m.fx.marquee.Boost())
		}
	}
	assert.Greater(t, peak, 0.5, "a wheel burst highlights the marquee")
	assert.Equal(t, 1.0, m.fx.marquee.Direction())

	advance(m, clock, 240)
	assert.InDelta(t, 0, m.fx.marquee.Boost(), 0.05, "boost fades once scrolling stops")
}
