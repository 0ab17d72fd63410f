package io

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/fcactx/pkg/errors"
)

// maxLineBytes bounds a single line of a line-oriented format.
const maxLineBytes = 16 << 20

// lineReader yields lines with their 1-based numbers and turns premature
// end of input into a malformed-input error.
type lineReader struct {
	format string
	sc     *bufio.Scanner
	line   int
}

func newLineReader(format string, r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &lineReader{format: format, sc: sc}
}

// next returns the next line without its terminator. what describes the
// expected content for the end-of-input message.
func (lr *lineReader) next(what string) (string, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", errors.Wrap(errors.ErrCodeMalformedInput, err, "%s: line %d", lr.format, lr.line+1)
		}
		return "", lr.errorf("unexpected end of input, expected %s", what)
	}
	lr.line++
	return strings.TrimSuffix(lr.sc.Text(), "\r"), nil
}

// count reads a line holding a non-negative integer.
func (lr *lineReader) count(what string) (int, error) {
	s, err := lr.next(what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, lr.errorf("invalid %s %q", what, s)
	}
	return n, nil
}

func (lr *lineReader) errorf(msg string, args ...any) error {
	return errors.Malformed(lr.format, lr.line, msg, args...)
}
