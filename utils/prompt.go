package utils

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const invalidChoiceMsg = "Please select a valid choice"

// Animation choices returned by Prompter.AnimationType
const (
	ChoiceAnimate = 'a'
	ChoiceTick    = 't'
	ChoiceQuit    = 'q'
)

// Prompter asks questions on Out and reads answers line by line from In
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// GetLine prints the prompt and returns the next input line.
// io.EOF is returned once input is exhausted.
func (p *Prompter) GetLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt+" ")
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", errors.Wrap(err, "[Prompter.GetLine] failed to read input")
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// PromptUntil re-prompts until accept returns nil for the entered line
func (p *Prompter) PromptUntil(prompt string, accept func(string) error) (string, error) {
	for {
		line, err := p.GetLine(prompt)
		if err != nil {
			return "", err
		}
		if err = accept(line); err != nil {
			fmt.Fprintln(p.out, errors.Cause(err).Error()+"; please try again.")
			continue
		}
		return line, nil
	}
}

// GetYesOrNo re-prompts until the answer starts with y or n
func (p *Prompter) GetYesOrNo(prompt string) (bool, error) {
	for {
		line, err := p.GetLine(prompt + " (y/n)")
		if err != nil {
			return false, err
		}
		switch answer := strings.ToLower(strings.TrimSpace(line)); {
		case strings.HasPrefix(answer, "y"):
			return true, nil
		case strings.HasPrefix(answer, "n"):
			return false, nil
		}
		fmt.Fprintln(p.out, "Please type a word that starts with 'Y' or 'N'.")
	}
}

// GetInteger re-prompts until a non-negative integer is entered
func (p *Prompter) GetInteger(prompt string) (int, error) {
	for {
		line, err := p.GetLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(p.out, "Illegal integer format. Try again.")
	}
}

// AnimationType asks for a)nimate, t)ick or q)uit until a single valid letter is entered
func (p *Prompter) AnimationType() (byte, error) {
	for {
		line, err := p.GetLine("a)nimate, t)ick, q)uit?")
		if err != nil {
			return 0, err
		}
		choice := strings.ToLower(strings.TrimSpace(line))
		if len(choice) == 1 {
			switch choice[0] {
			case ChoiceAnimate, ChoiceTick, ChoiceQuit:
				return choice[0], nil
			}
		}
		fmt.Fprintln(p.out, invalidChoiceMsg)
	}
}
