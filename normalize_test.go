package mathdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_Lossless(t *testing.T) {
	docs := []string{
		"",
		"just prose with \\(math\\)",
		"a\n```go\ncode\n```\nb",
		"unclosed\n```python\nprint(1)",
		"See \\[ x^2 \\] and \\(y\\). ```mermaid\ngraph TD;A-->B```",
	}
	for _, doc := range docs {
		var b strings.Builder
		for _, s := range Guard(doc) {
			b.WriteString(s.Text)
		}
		require.Equal(t, doc, b.String())
	}
}

func TestNormalize_ProseRewrittenCodeUntouched(t *testing.T) {
	doc := "Prose \\(y\\)\n```\nkeep \\[raw\\] and $5\n```\ntail \\[ z \\]\n"
	got := Normalize(doc)

	assert.Contains(t, got, "Prose $y$\n")
	assert.Contains(t, got, "```\nkeep \\[raw\\] and $5\n```\n")
	assert.Contains(t, got, "$$\nz\n$$")
	assert.NotContains(t, got, `\[ z \]`)
}

func TestNormalize_Idempotent(t *testing.T) {
	docs := []string{
		"See \\[ x^2 \\] and \\(y\\).",
		"mix\n```js\nlet a = \"\\\\(not math\\\\)\";\n```\nand $\nb\n$\ndone",
		"text$$\nX\n$$more",
		"unclosed fence\n```\n\\[ stays raw \\]",
	}
	for _, doc := range docs {
		once := Normalize(doc)
		require.Equal(t, once, Normalize(once), "doc %q", doc)
	}
}

func TestNormalize_DelimiterRoundTrip(t *testing.T) {
	got := Normalize(`\[x\]`)
	assert.Contains(t, got, "$$\nx\n$$")

	assert.Equal(t, "$x$", Normalize(`\(x\)`))
}

func TestNormalize_UnclosedFenceStaysRaw(t *testing.T) {
	doc := "before \\(a\\)\n```\n\\[ raw forever \\]"
	got := Normalize(doc)

	assert.Contains(t, got, "before $a$\n")
	assert.Contains(t, got, "```\n\\[ raw forever \\]")
}
