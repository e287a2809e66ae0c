package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute_Table(t *testing.T) {
	tests := []struct {
		tag  string
		want TargetKind
	}{
		{"mermaid", TargetDiagram},
		{"plotly", TargetInteractiveChart},
		{"chartjs", TargetStaticChart},
		{"chart", TargetStaticChart},
		{"go", TargetHighlightedCode},
		{"python", TargetHighlightedCode},
		{"", TargetVerbatimCode},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Route(tt.tag), "tag %q", tt.tag)
	}
}

func TestRoute_CaseSensitive(t *testing.T) {
	// Tag matching is exact; a capitalized tag is just a highlight language.
	assert.Equal(t, TargetHighlightedCode, Route("Mermaid"))
	assert.Equal(t, TargetHighlightedCode, Route("PLOTLY"))
}

func TestRoute_Total(t *testing.T) {
	tags := []string{
		"mermaid", "plotly", "chartjs", "chart", "",
		"go", "c++", "no-such-language", "日本語", " mermaid",
		"mermaid ", "```", "$", "\n",
	}
	for _, tag := range tags {
		kind := Route(tag)
		assert.NotEqual(t, "unknown", kind.String(), "tag %q must route somewhere", tag)
	}
}

func TestDecodeChartPayload_Defaults(t *testing.T) {
	p, err := DecodeChartPayload(`{"type":"bar","data":{}}`)
	require.NoError(t, err)

	assert.Equal(t, "bar", p.Type)
	assert.NotNil(t, p.Data)
	assert.Equal(t, DefaultChartHeight, p.Height)
	assert.Equal(t, true, p.Options["responsive"])
	assert.Equal(t, false, p.Options["maintainAspectRatio"])
	assert.Equal(t, map[string]interface{}{"position": "top"}, p.Options["legend"])
}

func TestDecodeChartPayload_SuppliedValuesWin(t *testing.T) {
	p, err := DecodeChartPayload(`{"type":"line","data":{"labels":[]},"options":{"legend":"none","animation":false},"height":500}`)
	require.NoError(t, err)

	assert.Equal(t, 500, p.Height)
	assert.Equal(t, "none", p.Options["legend"])
	assert.Equal(t, false, p.Options["animation"])
	// Untouched defaults survive the merge.
	assert.Equal(t, true, p.Options["responsive"])
}

func TestDecodeChartPayload_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing type", `{"data":{}}`},
		{"missing data", `{"type":"bar"}`},
		{"json null", "null"},
		{"wrong data shape", `{"type":"bar","data":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := DecodeChartPayload(tt.body)
			require.Error(t, err)
			assert.Nil(t, p)

			var decodeErr *DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.NotEmpty(t, decodeErr.Reason)
		})
	}
}

func TestSuggestedFilename_FromFirstLine(t *testing.T) {
	body := "// main.go\npackage main\n"
	assert.Equal(t, "main.go", SuggestedFilename(body, "go"))
}

func TestSuggestedFilename_Fallbacks(t *testing.T) {
	assert.Equal(t, "snippet.py", SuggestedFilename("print(1)", "python"))
	assert.Equal(t, "snippet.txt", SuggestedFilename("???", "no-such-language"))
}

func TestResolveLanguage(t *testing.T) {
	assert.Equal(t, "go", ResolveLanguage("go", ""))
	assert.Equal(t, "python", ResolveLanguage("python", ""))
	// Unknown tags pass through lowercased.
	assert.Equal(t, "klingon", ResolveLanguage("Klingon", ""))
}
