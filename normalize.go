package mathdown

import (
	"strings"

	"github.com/ericyerongjun/mathdown-go/internal/delim"
	"github.com/ericyerongjun/mathdown-go/internal/fence"
)

// Re-exported span types from the code-block guard.
type (
	Span     = fence.Span
	SpanKind = fence.SpanKind
)

const (
	SpanProse = fence.SpanProse
	SpanCode  = fence.SpanCode
)

// Guard splits a document into alternating prose and code spans on
// triple-backtick fences. Concatenating the spans in order reproduces the
// document exactly; an unclosed fence absorbs the rest of the document as
// code rather than failing.
func Guard(document string) []Span {
	return fence.Split(document)
}

// Normalize rewrites a document so all math uses canonical $/$$ delimiters,
// leaving fenced code byte-identical.
//
// Rewrites, applied to prose only: \[...\] and \(...\) become $$ blocks and
// $...$ spans, a display body between two lines holding a single $ becomes
// a $$ block, and every $$ block is separated from surrounding text by
// blank lines. Normalize is idempotent and never fails; malformed
// delimiters simply stay literal.
func Normalize(document string) string {
	spans := NormalizeSpans(document)
	if len(spans) == 1 {
		return spans[0].Text
	}
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// NormalizeSpans is Normalize keeping the guard's span structure, for
// callers that want to hand code spans to a different path.
func NormalizeSpans(document string) []Span {
	spans := fence.Split(document)
	out := make([]Span, len(spans))
	for i, s := range spans {
		if s.Kind == SpanProse {
			s.Text = delim.Normalize(s.Text)
		}
		out[i] = s
	}
	return out
}
