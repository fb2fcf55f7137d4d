package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// lineKind selects the style a transcript line is rendered with.
type lineKind int

const (
	lineReply lineKind = iota
	lineEcho
	lineError
)

// transcriptLine is one rendered line of session history.
type transcriptLine struct {
	text string
	kind lineKind
}

// ModelOptions configure the session model.
type ModelOptions struct {
	Prompt   string
	Greeting string
}

// Model is the Bubble Tea model for the interactive session: a transcript of
// past exchanges above a single-line command input.
type Model struct {
	exec       Executor
	input      textinput.Model
	transcript []transcriptLine
	quitting   bool
}

// NewModel creates a session model wired to the given executor.
func NewModel(exec Executor, opts ModelOptions) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.CharLimit = 256
	ti.Focus()

	m := Model{exec: exec, input: ti}
	if opts.Greeting != "" {
		m.transcript = append(m.transcript, transcriptLine{text: opts.Greeting})
	}
	return m
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key input: enter submits the current line, ctrl+c quits.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit executes the current input line and appends the exchange to the
// transcript, quitting when the executor says the session is over.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")

	m.transcript = append(m.transcript, transcriptLine{
		text: m.input.Prompt + line,
		kind: lineEcho,
	})

	reply, quit := m.exec.Execute(line)
	if reply != "" {
		kind := lineReply
		if strings.HasPrefix(reply, "Error: ") || reply == "Invalid command." {
			kind = lineError
		}
		m.transcript = append(m.transcript, transcriptLine{text: reply, kind: kind})
	}

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the transcript followed by the input line.
func (m Model) View() string {
	var b strings.Builder
	for _, ln := range m.transcript {
		b.WriteString(renderLine(ln))
		b.WriteByte('\n')
	}
	if !m.quitting {
		b.WriteString(m.input.View())
		b.WriteByte('\n')
	}
	return b.String()
}
