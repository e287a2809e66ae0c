package fence

import "strings"

// SpanKind classifies a span produced by Split.
type SpanKind int

const (
	// SpanProse is regular document text, eligible for rewriting.
	SpanProse SpanKind = iota
	// SpanCode is a fenced code region that must pass through untouched.
	SpanCode
)

// String returns the string representation of SpanKind.
func (k SpanKind) String() string {
	switch k {
	case SpanProse:
		return "prose"
	case SpanCode:
		return "code"
	default:
		return "unknown"
	}
}

// Span is a contiguous substring of the source document.
//
// Concatenating the Text of all spans returned by Split, in order,
// reproduces the source document byte for byte.
type Span struct {
	Kind SpanKind
	Text string
}

// Split partitions a document into alternating prose and code spans on
// triple-backtick fence lines.
//
// A code span includes its opening fence line, the body, and the closing
// fence line. An unclosed fence absorbs the remainder of the document as
// code, so a truncated LLM response never leaks half a code block into
// the prose rewriting stages.
func Split(doc string) []Span {
	if doc == "" {
		return nil
	}

	spans := make([]Span, 0, 4)
	var cur strings.Builder
	inCode := false

	flush := func(kind SpanKind) {
		if cur.Len() == 0 {
			return
		}
		spans = append(spans, Span{Kind: kind, Text: cur.String()})
		cur.Reset()
	}

	rest := doc
	for len(rest) > 0 {
		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line = rest[:i+1]
			rest = rest[i+1:]
		} else {
			rest = ""
		}

		if isFenceLine(line) {
			if inCode {
				cur.WriteString(line)
				flush(SpanCode)
				inCode = false
			} else {
				flush(SpanProse)
				cur.WriteString(line)
				inCode = true
			}
			continue
		}
		cur.WriteString(line)
	}

	if inCode {
		// Unclosed fence: the tail stays code.
		flush(SpanCode)
	} else {
		flush(SpanProse)
	}
	return spans
}

// isFenceLine reports whether a line toggles a code fence.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "```")
}
