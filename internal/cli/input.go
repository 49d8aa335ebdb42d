package cli

import (
	"bufio"
	"errors"
	"io"

	"github.com/genesis-cli/genesis/internal/domain"
)

// maxInputLine is the longest command line the prompt accepts.
const maxInputLine = 1 << 20

// lineReader reads newline-terminated input lines of bounded length.
// A line longer than max is consumed and reported as domain.ErrLineTooLong
// so the next call starts on the following line.
type lineReader struct {
	r   *bufio.Reader
	max int
}

func newLineReader(r io.Reader, maxLen int) *lineReader {
	return &lineReader{r: bufio.NewReader(r), max: maxLen}
}

// Next returns the next line without its line ending, or io.EOF once the
// input is exhausted.
func (l *lineReader) Next() (string, error) {
	var buf []byte
	tooLong := false
	read := false
	for {
		chunk, isPrefix, err := l.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && read {
				break
			}
			return "", err
		}
		read = true
		if !tooLong && len(buf)+len(chunk) > l.max {
			tooLong = true
			buf = nil
		}
		if !tooLong {
			buf = append(buf, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", domain.ErrLineTooLong
	}
	return string(buf), nil
}
