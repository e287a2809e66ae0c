package mathdown

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch_Routing(t *testing.T) {
	tests := []struct {
		tag  string
		want TargetKind
	}{
		{"mermaid", TargetDiagram},
		{"plotly", TargetInteractiveChart},
		{"chartjs", TargetStaticChart},
		{"chart", TargetStaticChart},
		{"rust", TargetHighlightedCode},
		{"", TargetVerbatimCode},
	}
	for _, tt := range tests {
		target := Dispatch(FencedBlock{Language: tt.tag, Body: "x"})
		assert.Equal(t, tt.want, target.GetTargetKind(), "tag %q", tt.tag)
	}
}

func TestDispatch_DiagramBodyUnchanged(t *testing.T) {
	target := Dispatch(FencedBlock{Language: "mermaid", Body: "graph TD;A-->B"})

	diagram, ok := target.(*Diagram)
	require.True(t, ok)
	assert.Equal(t, "graph TD;A-->B", diagram.Body)
}

func TestDispatch_HighlightedCodeCarriesLanguageAndFilename(t *testing.T) {
	target := Dispatch(FencedBlock{Language: "go", Body: "package main\n"})

	code, ok := target.(*HighlightedCode)
	require.True(t, ok)
	assert.Equal(t, "go", code.Language)
	assert.Equal(t, "snippet.go", code.Filename)
}

func TestDecodeChartPayload_PublicSurface(t *testing.T) {
	p, err := DecodeChartPayload(`{"type":"bar","data":{}}`)
	require.NoError(t, err)
	assert.Equal(t, DefaultChartHeight, p.Height)

	_, err = DecodeChartPayload("not json")
	require.Error(t, err)
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
