package delim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_DisplayBackslash(t *testing.T) {
	got := Normalize(`See \[ x^2 \] end`)
	assert.Contains(t, got, "\n\n$$\nx^2\n$$\n\n")
	assert.NotContains(t, got, `\[`)
}

func TestNormalize_InlineBackslash(t *testing.T) {
	assert.Equal(t, "a $y$ b", Normalize(`a \(y\) b`))
	assert.Equal(t, "$e^{i\\pi}+1=0$", Normalize(`\( e^{i\pi}+1=0 \)`))
}

func TestNormalize_LoneDollarBlock(t *testing.T) {
	got := Normalize("$\nE=mc^2\n$")
	assert.Contains(t, got, "$$\nE=mc^2\n$$")
	assert.NotContains(t, got, "\n$\n")
}

func TestNormalize_LoneDollarNeedsBody(t *testing.T) {
	// Two adjacent lone $ lines have no body and stay literal.
	in := "$\n$\ntext"
	assert.Equal(t, in, Normalize(in))
}

func TestNormalize_BlankLinePadding(t *testing.T) {
	got := Normalize("text$$\nX\n$$more")
	assert.Equal(t, "text\n\n$$\nX\n$$\n\nmore", got)
}

func TestNormalize_PaddingLeavesSingleDollarAlone(t *testing.T) {
	in := "inline $x$ and a price of $5."
	assert.Equal(t, in, Normalize(in))
}

func TestNormalize_NoDelimitersIsIdentity(t *testing.T) {
	docs := []string{
		"",
		"plain prose, nothing to do",
		"list:\n- one\n- two\n",
	}
	for _, d := range docs {
		assert.Equal(t, d, Normalize(d))
	}
}

func TestNormalize_MalformedStaysLiteral(t *testing.T) {
	cases := []string{
		`unterminated \(x`,
		`unterminated \[x`,
		`empty \(\) body`,
		`empty \[ \] body`,
		"lone $ line\n$\nno partner",
	}
	for _, in := range cases {
		assert.Equal(t, in, Normalize(in), "malformed delimiters must pass through")
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	docs := []string{
		`See \[ x^2 \] and \(y\).`,
		"text$$\nX\n$$more",
		"$\na+b\n$\ntail",
		"mixed \\(a\\) then \\[ b \\] then $$c$$ done",
		"already canonical\n\n$$\nx\n$$\n\ntail",
		`nothing here`,
		"$5 or $6",
		`broken \( and \[ left open`,
	}
	for _, d := range docs {
		once := Normalize(d)
		require.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", d)
	}
}

func TestNormalize_MultilineDisplayBody(t *testing.T) {
	got := Normalize("\\[\na = 1 \\\\\nb = 2\n\\]")
	assert.Contains(t, got, "$$\na = 1 \\\\\nb = 2\n$$")
}

func TestNormalize_PaddingCollapsesToTwoNewlines(t *testing.T) {
	// One newline on either side is topped up, never doubled.
	got := Normalize("before\n$$x$$\nafter")
	assert.Equal(t, "before\n\n$$x$$\n\nafter", got)

	require.Equal(t, got, Normalize(got))
}
