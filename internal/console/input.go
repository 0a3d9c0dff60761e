package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Input reads answers one line at a time
type Input struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewInput returns an Input that prompts on out and reads from in
func NewInput(in io.Reader, out io.Writer) *Input {
	return &Input{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Prompt writes the message and returns the next line with surrounding whitespace removed.
// A final line without a newline is still returned; io.EOF is only returned once nothing is left.
func (i *Input) Prompt(message string) (string, error) {
	if message != "" {
		_, _ = fmt.Fprintf(i.out, "\n~> %s :\n", message)
	}

	str, err := i.reader.ReadString('\n')
	if err != nil && (err != io.EOF || str == "") {
		return "", err
	}

	return strings.TrimSpace(str), nil
}
