// Package prompt reads validated answers from a line-oriented reader.
//
// A Prompter writes a styled question, reads one line and hands it to a
// Validator. Rejected answers are reported and the same question is asked
// again until an answer is accepted or the input ends.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	wizerrors "github.com/Aman-CERP/indexwiz/internal/errors"
	"github.com/Aman-CERP/indexwiz/internal/ui"
)

// DefaultWidth is the column width prompts are padded to.
const DefaultWidth = 40

// ErrInputClosed is returned when the input ends before an answer is accepted.
var ErrInputClosed = wizerrors.New(wizerrors.ErrCodeInputClosed,
	"input closed before a valid answer was given", nil).
	WithSuggestion("Run the wizard in an interactive terminal or pipe a complete answer script")

// Validator accepts an answer by returning nil. The message of a returned
// error is shown to the user.
type Validator func(answer string) error

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	styles ui.Styles
	width  int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithStyles sets the styles for prompts and error messages.
func WithStyles(s ui.Styles) Option {
	return func(p *Prompter) {
		p.styles = s
	}
}

// WithWidth sets the padding width of prompt text. Non-positive values are ignored.
func WithWidth(width int) Option {
	return func(p *Prompter) {
		if width > 0 {
			p.width = width
		}
	}
}

// New creates a Prompter. Styles default to plain text.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		styles: ui.NoColorStyles(),
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Input asks text until validate accepts the answer, which is returned with
// trailing whitespace removed. It returns ErrInputClosed if the input ends
// first.
func (p *Prompter) Input(text string, validate Validator) (string, error) {
	for {
		p.writePrompt(text)

		line, readErr := p.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", readErr)
		}
		if errors.Is(readErr, io.EOF) && line == "" {
			_, _ = fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}

		answer := strings.TrimRightFunc(line, unicode.IsSpace)
		err := validate(answer)
		if err == nil {
			return answer, nil
		}
		_, _ = fmt.Fprintf(p.out, "Error: %s\n", p.styles.Error.Render(err.Error()))

		if errors.Is(readErr, io.EOF) {
			return "", ErrInputClosed
		}
	}
}

// Options asks msg until one of codes is entered, case-insensitively, and
// returns the chosen code in upper case. Codes must be upper case.
func (p *Prompter) Options(msg string, codes ...rune) (rune, error) {
	text := fmt.Sprintf("%s (%s)", msg, joinCodes(codes))
	entry, err := p.Input(text, OptionsValidator(codes))
	if err != nil {
		return 0, err
	}
	return asciiUpper([]rune(entry)[0]), nil
}

// YesNo asks msg with options Y/N and reports whether the answer was Y.
func (p *Prompter) YesNo(msg string) (bool, error) {
	c, err := p.Options(msg, 'Y', 'N')
	if err != nil {
		return false, err
	}
	return c == 'Y', nil
}

func (p *Prompter) writePrompt(text string) {
	padded := fmt.Sprintf("%-*s", p.width, text)
	_, _ = fmt.Fprintf(p.out, "%s ? ", p.styles.Prompt.Render(padded))
}
