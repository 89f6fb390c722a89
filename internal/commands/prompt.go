package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter reads interactive input for the auth commands. Prompts go to
// errOut so stdout stays clean for scripting.
type prompter struct {
	in     io.Reader
	errOut io.Writer
	reader *bufio.Reader
}

func newPrompter(in io.Reader, errOut io.Writer) *prompter {
	if in == nil {
		in = os.Stdin
	}
	return &prompter{in: in, errOut: errOut, reader: bufio.NewReader(in)}
}

// Line prints the prompt and reads a trimmed line.
func (p *prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.errOut, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Password prints the prompt and reads a password. When input is a
// terminal, echo is disabled; otherwise (tests, pipes) it reads a plain
// line.
func (p *prompter) Password(prompt string) (string, error) {
	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.errOut, prompt)
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.errOut)
		if err != nil {
			return "", err
		}
		return string(pw), nil
	}
	return p.Line(prompt)
}
