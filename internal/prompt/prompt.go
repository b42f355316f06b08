// Package prompt is the single interaction primitive of the storefront:
// every numbered menu and every raw input read routes through a Prompter.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"orinoco/internal/money"
)

// ErrInputClosed reports that the operator closed the input stream. Callers
// treat it as the end of the session.
var ErrInputClosed = errors.New("input stream closed")

// Option is one selectable menu row. Price is shown only when present.
type Option struct {
	Code  int64
	Label string
	Price *float64
}

// Price is a convenience for building priced options.
func Price(v float64) *float64 {
	return &v
}

type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// ReadLine prompts until the operator supplies a non-blank line.
func (p *Prompter) ReadLine(promptText string) (string, error) {
	for {
		fmt.Fprint(p.out, promptText)
		line, err := p.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// ReadInt prompts until the operator supplies a valid integer.
func (p *Prompter) ReadInt(promptText string) (int, error) {
	for {
		fmt.Fprint(p.out, promptText)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a valid number.")
			continue
		}
		return n, nil
	}
}

// ReadQuantity prompts until the operator supplies an integer of at least 1.
// No upper bound is enforced.
func (p *Prompter) ReadQuantity(promptText string) (int, error) {
	for {
		n, err := p.ReadInt(promptText)
		if err != nil {
			return 0, err
		}
		if n < 1 {
			fmt.Fprintln(p.out, "Quantity must be at least 1.")
			continue
		}
		return n, nil
	}
}

// Select displays a 1-based numbered menu over options and loops until a
// choice in [1, len(options)] is read. It returns the chosen option's Code,
// never its position.
func (p *Prompter) Select(title, noun string, options []Option) (int64, error) {
	fmt.Fprintf(p.out, "\n%s\n\n", title)
	fmt.Fprintln(p.out, strings.Repeat("-", 50))

	for i, opt := range options {
		if opt.Price != nil {
			fmt.Fprintf(p.out, "%d.\t%s - %s\n", i+1, opt.Label, money.GBP(*opt.Price))
		} else {
			fmt.Fprintf(p.out, "%d.\t%s\n", i+1, opt.Label)
		}
	}

	for {
		fmt.Fprintf(p.out, "Enter the number against the %s you want to choose: ", noun)
		line, err := p.readLine()
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(p.out, "Please enter a valid number")
			continue
		}
		if n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Please enter a number between 1 and %d\n", len(options))
			continue
		}
		return options[n-1].Code, nil
	}
}
