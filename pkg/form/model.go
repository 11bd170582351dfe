/* pkg/form/model.go */

// Package form is the interactive terminal form: a length field, one toggle
// per character class plus avoid-ambiguous, and Generate / Copy buttons.
package form

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/eos_err"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/interaction"
	"github.com/CodeMonkeyCybersecurity/pwgen/pkg/password"
)

// ErrLengthNotNumber is shown when the length field does not parse.
const ErrLengthNotNumber = "length must be a whole number"

// GenerateFunc produces a password for a policy. It runs inside a tea.Cmd.
type GenerateFunc func(password.Policy) (string, error)

// DefaultsMsg replaces the form's field values, e.g. after the config file
// changed. A non-nil Err is shown instead.
type DefaultsMsg struct {
	Policy password.Policy
	Err    error
}

type generatedMsg struct {
	password string
	err      error
}

type copiedMsg struct {
	copied bool
	err    error
}

const (
	focusLength = iota
	focusUpper
	focusLower
	focusDigits
	focusSymbols
	focusAvoid
	focusGenerate
	focusCopy
	focusCount
)

type toggle struct {
	label string
	on    bool
}

// Model is the bubbletea model for the form.
type Model struct {
	length   textinput.Model
	toggles  [5]toggle
	focus    int
	generate GenerateFunc
	clip     interaction.Clipboard

	password string
	strength string
	status   string
	errMsg   string
}

// New builds a form pre-filled from defaults.
func New(defaults password.Policy, generate GenerateFunc, clip interaction.Clipboard) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 4
	ti.Width = 6
	ti.Focus()

	m := Model{
		length:   ti,
		generate: generate,
		clip:     clip,
		toggles: [5]toggle{
			{label: "Uppercase (A-Z)"},
			{label: "Lowercase (a-z)"},
			{label: "Digits (0-9)"},
			{label: "Symbols (" + password.Symbols + ")"},
			{label: "Avoid ambiguous (" + password.Ambiguous + ")"},
		},
	}
	m.applyDefaults(defaults)
	return m
}

// Password is the last generated password, "" before the first success.
func (m Model) Password() string { return m.password }

// Strength is the label for Password.
func (m Model) Strength() string { return m.strength }

// Err is the message from the last failed action, if any.
func (m Model) Err() string { return m.errMsg }

func (m *Model) applyDefaults(p password.Policy) {
	m.length.SetValue(strconv.Itoa(p.Length))
	m.toggles[0].on = p.IncludeUpper
	m.toggles[1].on = p.IncludeLower
	m.toggles[2].on = p.IncludeDigits
	m.toggles[3].on = p.IncludeSymbols
	m.toggles[4].on = p.AvoidAmbiguous
}

// policy reads the fields. The only error is a length that is not a whole
// number; range and class checks belong to the generator.
func (m Model) policy() (password.Policy, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(m.length.Value()))
	if err != nil {
		return password.Policy{}, false
	}
	return password.Policy{
		Length:         n,
		IncludeUpper:   m.toggles[0].on,
		IncludeLower:   m.toggles[1].on,
		IncludeDigits:  m.toggles[2].on,
		IncludeSymbols: m.toggles[3].on,
		AvoidAmbiguous: m.toggles[4].on,
	}, true
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case generatedMsg:
		if msg.err != nil {
			m.errMsg = errText(msg.err)
			m.status = ""
			return m, nil
		}
		m.password = msg.password
		m.strength = password.Estimate(msg.password).String()
		m.errMsg = ""
		m.status = ""
		return m, nil

	case copiedMsg:
		switch {
		case msg.err != nil:
			m.errMsg = errText(msg.err)
		case msg.copied:
			m.errMsg = ""
			m.status = "Password copied to clipboard"
		}
		return m, nil

	case DefaultsMsg:
		if msg.Err != nil {
			m.errMsg = "config reload failed: " + errText(msg.Err)
			return m, nil
		}
		m.applyDefaults(msg.Policy)
		m.status = "Defaults reloaded from config"
		return m, nil
	}

	if m.focus == focusLength {
		var cmd tea.Cmd
		m.length, cmd = m.length.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "q":
		if m.focus != focusLength {
			return m, tea.Quit
		}
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(-1)
	case "enter":
		return m.activate()
	case " ", "space":
		if m.focus != focusLength {
			return m.activate()
		}
	}

	if m.focus == focusLength {
		var cmd tea.Cmd
		m.length, cmd = m.length.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focus = (m.focus + delta + focusCount) % focusCount
	if m.focus == focusLength {
		return m, m.length.Focus()
	}
	m.length.Blur()
	return m, nil
}

func (m Model) activate() (tea.Model, tea.Cmd) {
	switch {
	case m.focus >= focusUpper && m.focus <= focusAvoid:
		t := &m.toggles[m.focus-focusUpper]
		t.on = !t.on
		return m, nil
	case m.focus == focusCopy:
		return m, m.copyCmd()
	default:
		// Enter in the length field generates, like the Generate button.
		return m.startGenerate()
	}
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	p, ok := m.policy()
	if !ok {
		m.errMsg = ErrLengthNotNumber
		m.status = ""
		return m, nil
	}
	generate := m.generate
	return m, func() tea.Msg {
		pw, err := generate(p)
		return generatedMsg{password: pw, err: err}
	}
}

func (m Model) copyCmd() tea.Cmd {
	pw, clip := m.password, m.clip
	return func() tea.Msg {
		copied, err := interaction.Copy(clip, pw)
		return copiedMsg{copied: copied, err: err}
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString("\n")

	b.WriteString(m.styled(focusLength, labelStyle.Render("Length")))
	b.WriteString(m.length.View())
	b.WriteString("\n")

	for i, t := range m.toggles {
		box := "[ ]"
		if t.on {
			box = "[x]"
		}
		b.WriteString(m.styled(focusUpper+i, box+" "+t.label))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.button(focusGenerate, "Generate"),
		" ",
		m.button(focusCopy, "Copy"),
	))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Password"))
	b.WriteString(passwordStyle.Render(m.password))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Strength"))
	b.WriteString(strengthStyle(m.strength).Render(m.strength))
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab: move  space/enter: toggle or press  q/esc: quit"))
	b.WriteString("\n")
	return b.String()
}

// errText reduces classified errors to one line.
func errText(err error) string {
	var ce *eos_err.ClassifiedError
	if errors.As(err, &ce) {
		if ce.Cause != nil && ce.Cause.Error() != ce.Message {
			return ce.Message + ": " + ce.Cause.Error()
		}
		return ce.Message
	}
	return err.Error()
}

func (m Model) styled(field int, s string) string {
	if m.focus == field {
		return focusedStyle.Render(s)
	}
	return blurredStyle.Render(s)
}

func (m Model) button(field int, label string) string {
	if m.focus == field {
		return activeButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}
