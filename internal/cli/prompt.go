package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Option is one numbered choice. Disabled options are shown but cannot be picked.
type Option struct {
	Label    string
	Disabled bool
	Note     string
}

// Prompter reads line-based answers
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Answer is the outcome of a prompt
type Answer int

const (
	AnswerChoice Answer = iota
	AnswerBack
	AnswerQuit
)

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Choose asks for one of options by number until a selectable one is given.
// "b" goes back when allowBack is set, "q" quits.
func (p *Prompter) Choose(title string, options []Option, allowBack bool) (int, Answer, error) {
	headerColor.Fprintln(p.out, title)
	for i, o := range options {
		line := fmt.Sprintf("  %d) %s", i+1, o.Label)
		if o.Note != "" {
			line += " " + o.Note
		}
		if o.Disabled {
			dimColor.Fprintln(p.out, line)
		} else {
			fmt.Fprintln(p.out, line)
		}
	}

	hint := "number, q to quit"
	if allowBack {
		hint = "number, b to go back, q to quit"
	}

	for {
		fmt.Fprintf(p.out, "> (%s): ", hint)
		line, err := p.readLine()
		if err != nil {
			return 0, AnswerQuit, err
		}

		switch strings.ToLower(line) {
		case "q", "quit":
			return 0, AnswerQuit, nil
		case "b", "back":
			if allowBack {
				return 0, AnswerBack, nil
			}
		}

		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			warnColor.Fprintf(p.out, "Please enter a number between 1 and %d\n", len(options))
			continue
		}
		if options[n-1].Disabled {
			warnColor.Fprintf(p.out, "%s is not available\n", options[n-1].Label)
			continue
		}
		return n - 1, AnswerChoice, nil
	}
}

// Confirm asks a yes/back/quit question
func (p *Prompter) Confirm(question string) (Answer, error) {
	for {
		fmt.Fprintf(p.out, "%s [y]es / [b]ack / [q]uit: ", question)
		line, err := p.readLine()
		if err != nil {
			return AnswerQuit, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return AnswerChoice, nil
		case "b", "back":
			return AnswerBack, nil
		case "q", "quit", "n", "no":
			return AnswerQuit, nil
		}
	}
}
