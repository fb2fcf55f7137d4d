// Package repl runs the interactive command session: a Bubble Tea program
// when stdout is a TTY, a plain line-oriented loop otherwise.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// Executor runs one command line against the address book.
// Implemented by command.Dispatcher.
type Executor interface {
	Execute(line string) (reply string, quit bool)
}

// Session runs the command loop until the user exits or input ends.
type Session interface {
	Run(ctx context.Context, exec Executor) error
}

// Options configure session creation.
type Options struct {
	Input      io.Reader // Plain-mode input (default: os.Stdin).
	Output     io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force plain text even if TTY.
	Prompt     string    // Input prompt text.
	Greeting   string    // Printed once at session start.
}

// New returns a Bubble Tea session when output is a TTY, or a plain line
// loop otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Session {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.Output) {
		return &PlainSession{in: opts.Input, w: opts.Output, prompt: opts.Prompt, greeting: opts.Greeting}
	}

	return &TUISession{w: opts.Output, prompt: opts.Prompt, greeting: opts.Greeting}
}

// isTTY reports whether w is connected to a terminal.
func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PlainSession reads lines from input and prints replies without styling.
// Suitable for pipes and scripted input.
type PlainSession struct {
	in       io.Reader
	w        io.Writer
	prompt   string
	greeting string
}

// Run prints the greeting and loops over input lines until a quitting
// command, end of input, or context cancellation.
func (s *PlainSession) Run(ctx context.Context, exec Executor) error {
	if s.greeting != "" {
		_, _ = fmt.Fprintln(s.w, s.greeting)
	}

	// Scan in a goroutine so context cancellation is not stuck behind a
	// blocking read. The goroutine exits with the process on cancellation.
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		_, _ = fmt.Fprint(s.w, s.prompt)
		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(s.w)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			reply, quit := exec.Execute(line)
			if reply != "" {
				_, _ = fmt.Fprintln(s.w, reply)
			}
			if quit {
				return nil
			}
		}
	}
}

// TUISession runs the interactive loop as a Bubble Tea program.
type TUISession struct {
	w        io.Writer
	prompt   string
	greeting string
}

// Run starts the Bubble Tea program and blocks until the session ends.
func (s *TUISession) Run(ctx context.Context, exec Executor) error {
	m := NewModel(exec, ModelOptions{Prompt: s.prompt, Greeting: s.greeting})
	p := tea.NewProgram(m, tea.WithOutput(s.w), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
