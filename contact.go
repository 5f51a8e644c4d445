package main

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// the form posts nowhere; sending is a timer
const contactSendDelay = 1500 * time.Millisecond

type contactField int

const (
	fieldNone contactField = iota - 1
	fieldName
	fieldEmail
	fieldMessage
	fieldSend
	fieldCount
)

type contactSentMsg struct{}

var (
	errNameRequired    = errors.New("name is required")
	errEmailInvalid    = errors.New("email address is not valid")
	errMessageRequired = errors.New("message is required")
)

type contactForm struct {
	name    textinput.Model
	email   textinput.Model
	message textarea.Model
	spinner spinner.Model
	focus   contactField
	sending bool
	status  string
}

func newContactForm() contactForm {
	name := textinput.New()
	name.Placeholder = "John Doe"
	name.Prompt = ""
	name.CharLimit = 80

	email := textinput.New()
	email.Placeholder = "john@example.com"
	email.Prompt = ""
	email.CharLimit = 120

	message := textarea.New()
	message.Placeholder = "Tell me about your project..."
	message.ShowLineNumbers = false
	message.Prompt = ""
	message.SetHeight(4)
	message.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = newStyles().link

	return contactForm{
		name:    name,
		email:   email,
		message: message,
		spinner: sp,
		focus:   fieldNone,
	}
}

func (f *contactForm) setWidth(width int) {
	inner := max(width-2, 10)
	f.name.Width = inner - 1
	f.email.Width = inner - 1
	f.message.SetWidth(inner)
}

func (f *contactForm) focused() bool { return f.focus != fieldNone }

// setFocus moves focus to field, blurring the rest. fieldNone blurs all.
func (f *contactForm) setFocus(field contactField) tea.Cmd {
	f.focus = field
	f.name.Blur()
	f.email.Blur()
	f.message.Blur()
	switch field {
	case fieldName:
		return f.name.Focus()
	case fieldEmail:
		return f.email.Focus()
	case fieldMessage:
		return f.message.Focus()
	}
	return nil
}

func (f *contactForm) cycle(step int) tea.Cmd {
	next := (int(f.focus) + step + int(fieldCount)) % int(fieldCount)
	if f.focus == fieldNone {
		next = int(fieldName)
		if step < 0 {
			next = int(fieldSend)
		}
	}
	return f.setFocus(contactField(next))
}

func (f *contactForm) validate() error {
	if strings.TrimSpace(f.name.Value()) == "" {
		return errNameRequired
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(f.email.Value())); err != nil {
		return errEmailInvalid
	}
	if strings.TrimSpace(f.message.Value()) == "" {
		return errMessageRequired
	}
	return nil
}

// submit starts the mock send. It returns nil without sending when the form
// is busy or invalid; status explains which.
func (f *contactForm) submit() tea.Cmd {
	if f.sending {
		return nil
	}
	if err := f.validate(); err != nil {
		f.status = err.Error()
		return nil
	}
	f.sending = true
	f.status = ""
	return tea.Batch(
		f.spinner.Tick,
		tea.Tick(contactSendDelay, func(time.Time) tea.Msg { return contactSentMsg{} }),
	)
}

func (f *contactForm) finish() {
	f.sending = false
	f.name.Reset()
	f.email.Reset()
	f.message.Reset()
	f.status = "Message sent. Thanks for reaching out!"
	f.setFocus(fieldNone)
}

// update routes a message to the focused input.
func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case fieldName:
		f.name, cmd = f.name.Update(msg)
	case fieldEmail:
		f.email, cmd = f.email.Update(msg)
	case fieldMessage:
		f.message, cmd = f.message.Update(msg)
	}
	return cmd
}
