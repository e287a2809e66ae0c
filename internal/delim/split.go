package delim

// RunKind classifies a run produced by SplitInline.
type RunKind int

const (
	// RunText is literal text, rendered as-is.
	RunText RunKind = iota
	// RunMath is an inline math body with the dollar delimiters stripped.
	RunMath
)

// String returns the string representation of RunKind.
func (k RunKind) String() string {
	switch k {
	case RunText:
		return "text"
	case RunMath:
		return "math"
	default:
		return "unknown"
	}
}

// Run is one element of a split inline string.
type Run struct {
	Kind RunKind
	Text string
}

// SplitInline splits a short string into alternating text and math runs.
//
// It is meant for strings too small to justify a structural Markdown pass,
// such as suggestion chips. \(...\) is first rewritten to $...$ so the scan
// only has to recognize one delimiter form. A match is a $ pair on a single
// line with at least one non-$ character between; anything else, including
// an unterminated $ and the empty $$, stays literal text. Runs keep the
// original order and exact substrings.
func SplitInline(text string) []Run {
	s := rewriteBackslashDelims(text, true)

	runs := make([]Run, 0, 4)
	textStart := 0
	i := 0
	for i < len(s) {
		if s[i] == '$' {
			if end, ok := matchInlineMath(s, i); ok {
				if i > textStart {
					runs = append(runs, Run{Kind: RunText, Text: s[textStart:i]})
				}
				runs = append(runs, Run{Kind: RunMath, Text: s[i+1 : end]})
				i = end + 1
				textStart = i
				continue
			}
		}
		i++
	}
	if textStart < len(s) {
		runs = append(runs, Run{Kind: RunText, Text: s[textStart:]})
	}
	return runs
}

// matchInlineMath returns the index of the closing dollar for a
// single-line $...$ match with a non-empty body.
func matchInlineMath(s string, open int) (int, bool) {
	for j := open + 1; j < len(s); j++ {
		switch s[j] {
		case '\n':
			return 0, false
		case '$':
			if j == open+1 {
				// Empty body stays literal.
				return 0, false
			}
			return j, true
		}
	}
	return 0, false
}
