package mathdown

import "github.com/ericyerongjun/mathdown-go/internal/delim"

// Re-exported run types from the inline splitter.
type (
	Run     = delim.Run
	RunKind = delim.RunKind
)

const (
	RunText = delim.RunText
	RunMath = delim.RunMath
)

// SplitInline splits a short string into alternating text and math runs,
// for contexts too lightweight to run the structural renderer (suggestion
// chips, follow-up prompts). Math runs carry the body without delimiters;
// an unterminated or empty delimiter stays literal text.
func SplitInline(text string) []Run {
	return delim.SplitInline(text)
}
