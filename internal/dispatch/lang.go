package dispatch

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

// languageToExt maps programming language names to file extensions.
var languageToExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c++":        "cpp",
	"c":          "c",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"php":        "php",
	"markdown":   "md",
	"dotenv":     "env",
	"json":       "json",
	"yaml":       "yaml",
	"xml":        "xml",
	"dockerfile": "dockerfile",
	"plaintext":  "txt",
	"toml":       "toml",
	"go":         "go",
	"ruby":       "rb",
	"rust":       "rs",
	"perl":       "pl",
	"swift":      "swift",
	"kotlin":     "kt",
	"sql":        "sql",
	"jsx":        "jsx",
	"tsx":        "tsx",
	"graphql":    "graphql",
	"r":          "r",
	"dart":       "dart",
	"scala":      "scala",
	"groovy":     "groovy",
}

var filenamePattern = regexp.MustCompile(`([a-zA-Z0-9_\-\.]+\.[a-zA-Z0-9]+)`)

// ResolveLanguage canonicalizes a fence tag via the chroma lexer registry,
// falling back to content analysis when the tag is empty. Returns "" when
// nothing matches.
func ResolveLanguage(tag, body string) string {
	if tag != "" {
		if lx := lexers.Get(tag); lx != nil {
			return strings.ToLower(lx.Config().Name)
		}
		return strings.ToLower(tag)
	}
	if lx := lexers.Analyse(body); lx != nil {
		return strings.ToLower(lx.Config().Name)
	}
	return ""
}

// extForLanguage returns the file extension for a language name.
func extForLanguage(language string) string {
	ext, ok := languageToExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// extractValidFilename pulls a filename (with extension) out of a line of
// text, typically a leading comment like "// main.go".
func extractValidFilename(line string) string {
	matches := filenamePattern.FindAllString(line, -1)
	for _, match := range matches {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// SuggestedFilename proposes a download filename for a code block.
//
// It looks for a filename in the first two lines of the code and falls
// back to "snippet.<ext>" derived from the language.
func SuggestedFilename(body, language string) string {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	sample := ""
	if len(lines) > 0 {
		sample = lines[0]
		if len(lines) > 1 {
			sample += " " + lines[1]
		}
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	extracted := extractValidFilename(sample)
	ext := extForLanguage(ResolveLanguage(language, body))

	if extracted != "" {
		if strings.HasSuffix(extracted, "."+ext) && len(extracted) <= 24 {
			return extracted
		}
		return extracted + "." + ext
	}
	return "snippet." + ext
}
