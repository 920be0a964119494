package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrReadInput indicates an interactive answer could not be read.
var ErrReadInput = errors.New("failed to read input")

// prompter asks questions on stdout and reads answers line by line.
// One prompter must be shared across questions so buffered input is not lost.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints label and returns the trimmed answer. A final line without a
// newline is accepted; EOF with no answer returns io.EOF.
func (p *prompter) ask(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" && errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	return answer, nil
}
