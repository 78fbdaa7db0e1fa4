// Package input reads and classifies console lines.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"growify/pkg/engine/terminal"
)

// LineReader reads one command per line, prompting only on interactive terminals.
type LineReader struct {
	reader *bufio.Reader
	out    io.Writer
	prompt string
}

// NewLineReader creates a reader over in. The prompt is written to out before
// each line when in is a terminal; piped input is read silently.
func NewLineReader(in io.Reader, out io.Writer, prompt string) *LineReader {
	if f, ok := in.(*os.File); !ok || !terminal.IsInteractive(f) {
		prompt = ""
	}
	return &LineReader{reader: bufio.NewReader(in), out: out, prompt: prompt}
}

// ReadLine returns the next line without its line ending.
// Returns io.EOF once the input is exhausted.
func (l *LineReader) ReadLine() (string, error) {
	if l.prompt != "" && l.out != nil {
		fmt.Fprint(l.out, l.prompt)
	}

	line, err := l.reader.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
