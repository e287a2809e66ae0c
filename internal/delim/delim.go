// Package delim rewrites the math delimiter forms that LLMs emit into the
// canonical dollar notation a math-aware Markdown renderer expects.
//
// Canonical forms are $...$ for inline math and $$ blocks for display math.
// Source forms handled: \(...\), \[...\], and the degenerate pattern of a
// display body sandwiched between two lines holding a single $.
//
// The rewriter is purely lexical. It does not understand LaTeX and it cannot
// tell a literal dollar sign from an inline-math delimiter; currency amounts
// like "$5" survive only because a match needs a closing dollar on the same
// line. Callers must keep fenced code away from this package (see the fence
// package).
package delim

import "strings"

// Normalize rewrites every recognized math delimiter form in a prose span
// into canonical dollar notation and blank-line-pads display blocks.
//
// Normalize is idempotent and never fails: unterminated or empty delimiters
// stay in the output verbatim.
func Normalize(prose string) string {
	s := rewriteBackslashDelims(prose, false)
	s = rewriteLoneDollarBlocks(s)
	return padDisplayBlocks(s)
}

// rewriteBackslashDelims converts \(...\) to $...$ and, unless inlineOnly
// is set, \[...\] to a padded $$ block. Bodies are trimmed. A delimiter with
// no terminator or an empty body is copied through unchanged.
func rewriteBackslashDelims(s string, inlineOnly bool) string {
	if !strings.Contains(s, `\(`) && (inlineOnly || !strings.Contains(s, `\[`)) {
		return s
	}

	var out textBuffer
	i := 0
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '[':
				if inlineOnly {
					break
				}
				if body, next, ok := scanUntil(s, i+2, `\]`); ok && strings.TrimSpace(body) != "" {
					out.WriteString("\n$$\n")
					out.WriteString(strings.TrimSpace(body))
					out.WriteString("\n$$\n")
					i = next
					continue
				}
			case '(':
				if body, next, ok := scanUntil(s, i+2, `\)`); ok && strings.TrimSpace(body) != "" {
					out.WriteByte('$')
					out.WriteString(strings.TrimSpace(body))
					out.WriteByte('$')
					i = next
					continue
				}
			}
			// Unterminated or empty delimiter, or some other escape pair:
			// copy both bytes so an escaped bracket never opens a region.
			out.WriteString(s[i : i+2])
			i += 2
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// scanUntil finds the closing token at or after start and returns the body
// between, plus the index just past the token.
func scanUntil(s string, start int, closing string) (body string, next int, ok bool) {
	end := strings.Index(s[start:], closing)
	if end < 0 {
		return "", 0, false
	}
	return s[start : start+end], start + end + len(closing), true
}

// rewriteLoneDollarBlocks repairs the degenerate emission pattern of a
// display body between two lines holding nothing but a single $:
//
//	$
//	x^2 + y^2
//	$
//
// becomes a padded $$ block. A lone $ line with no closing partner, or with
// no body line between, is left alone.
func rewriteLoneDollarBlocks(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}

	lines := strings.SplitAfter(s, "\n")
	var out textBuffer
	i := 0
	for i < len(lines) {
		if isLoneDollarLine(lines[i]) {
			j := -1
			for k := i + 2; k < len(lines); k++ {
				if isLoneDollarLine(lines[k]) {
					j = k
					break
				}
			}
			if j > 0 {
				body := strings.Join(lines[i+1:j], "")
				out.WriteString("\n$$\n")
				out.WriteString(strings.TrimSpace(body))
				out.WriteString("\n$$\n")
				i = j + 1
				continue
			}
		}
		out.WriteString(lines[i])
		i++
	}
	return out.String()
}

func isLoneDollarLine(line string) bool {
	return strings.TrimSpace(line) == "$"
}

// padDisplayBlocks inserts a blank line before each opening $$ marker and
// after each closing one, pairing markers left to right. Padding stays
// outside the block: a blank line inside $$...$$ would split the block at
// the Markdown layer. Single $ markers are never touched, and markers at
// the very start or end of the span need no padding.
func padDisplayBlocks(s string) string {
	if !strings.Contains(s, "$$") {
		return s
	}

	var out textBuffer
	i := 0
	open := false
	for i < len(s) {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '$' {
			if !open {
				if out.Len() > 0 {
					switch out.TrailingNewlines() {
					case 0:
						out.WriteString("\n\n")
					case 1:
						out.WriteString("\n")
					}
				}
				out.WriteString("$$")
				open = true
			} else {
				out.WriteString("$$")
				open = false
				n := 0
				for j := i + 2; j < len(s) && s[j] == '\n'; j++ {
					n++
				}
				if i+2+n < len(s) {
					switch n {
					case 0:
						out.WriteString("\n\n")
					case 1:
						out.WriteString("\n")
					}
				}
			}
			i += 2
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}
