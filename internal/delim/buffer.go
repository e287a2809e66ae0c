package delim

import "strings"

// textBuffer accumulates rewritten prose and tracks how many newline
// characters sit at the end of the output, so display-block padding can
// be decided without re-scanning what was already written.
type textBuffer struct {
	b        strings.Builder
	trailing int
}

// WriteString appends text to the buffer.
func (tb *textBuffer) WriteString(s string) {
	if s == "" {
		return
	}
	tb.b.WriteString(s)

	n := 0
	for i := len(s) - 1; i >= 0 && s[i] == '\n'; i-- {
		n++
	}
	if n == len(s) {
		tb.trailing += n
	} else {
		tb.trailing = n
	}
}

// WriteByte appends a single byte to the buffer. The error is always nil.
func (tb *textBuffer) WriteByte(c byte) error {
	tb.b.WriteByte(c)
	if c == '\n' {
		tb.trailing++
	} else {
		tb.trailing = 0
	}
	return nil
}

// Len returns the number of bytes written so far.
func (tb *textBuffer) Len() int {
	return tb.b.Len()
}

// TrailingNewlines returns the number of newline characters at the end
// of the buffer.
func (tb *textBuffer) TrailingNewlines() int {
	return tb.trailing
}

// String returns the accumulated text.
func (tb *textBuffer) String() string {
	return tb.b.String()
}
