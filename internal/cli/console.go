package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Console reads player input as whitespace-separated tokens or whole lines
// from a single buffered stream
type Console struct {
	r *bufio.Reader
}

// NewConsole creates a Console over r
func NewConsole(r io.Reader) *Console {
	return &Console{r: bufio.NewReader(r)}
}

// ReadToken skips leading whitespace and returns the next token. Blank space
// after the token is consumed up to and including the end of its line, so a
// token ending a line leaves the reader at the start of the next line.
func (c *Console) ReadToken() (string, error) {
	var sb strings.Builder
	for {
		r, _, err := c.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				if r != '\n' {
					c.skipLineEnd()
				}
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}

// skipLineEnd consumes spaces up to and including a newline, stopping
// before the next token on the same line
func (c *Console) skipLineEnd() {
	for {
		r, _, err := c.r.ReadRune()
		if err != nil || r == '\n' {
			return
		}
		if !unicode.IsSpace(r) {
			_ = c.r.UnreadRune()
			return
		}
	}
}

// ReadLine returns the rest of the current line without its line ending
func (c *Console) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
