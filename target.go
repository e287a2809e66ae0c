package mathdown

import "github.com/ericyerongjun/mathdown-go/internal/dispatch"

// Re-exported dispatcher types.
type (
	TargetKind   = dispatch.TargetKind
	FencedBlock  = dispatch.FencedBlock
	ChartPayload = dispatch.ChartPayload
	DecodeError  = dispatch.DecodeError
)

const (
	TargetDiagram          = dispatch.TargetDiagram
	TargetInteractiveChart = dispatch.TargetInteractiveChart
	TargetStaticChart      = dispatch.TargetStaticChart
	TargetHighlightedCode  = dispatch.TargetHighlightedCode
	TargetVerbatimCode     = dispatch.TargetVerbatimCode

	// DefaultChartHeight is used when a chart payload has no height.
	DefaultChartHeight = dispatch.DefaultChartHeight
)

// RenderTarget is the dispatcher's decision for one fenced block: which
// specialized renderer should receive it, plus everything that renderer
// needs.
type RenderTarget interface {
	GetTargetKind() TargetKind
}

// Diagram is a mermaid definition for the diagram engine.
type Diagram struct {
	Body string
}

// GetTargetKind returns TargetDiagram.
func (d *Diagram) GetTargetKind() TargetKind {
	return TargetDiagram
}

// InteractiveChart is a plotly payload, still undecoded. Use
// DecodeChartPayload to validate it.
type InteractiveChart struct {
	Body string
}

// GetTargetKind returns TargetInteractiveChart.
func (c *InteractiveChart) GetTargetKind() TargetKind {
	return TargetInteractiveChart
}

// StaticChart is a chart.js payload, still undecoded. Use
// DecodeChartPayload to validate it.
type StaticChart struct {
	Body string
}

// GetTargetKind returns TargetStaticChart.
func (c *StaticChart) GetTargetKind() TargetKind {
	return TargetStaticChart
}

// HighlightedCode is source code with a language tag for the syntax
// highlighter. Filename is a suggested download name for the snippet.
type HighlightedCode struct {
	Language string
	Body     string
	Filename string
}

// GetTargetKind returns TargetHighlightedCode.
func (c *HighlightedCode) GetTargetKind() TargetKind {
	return TargetHighlightedCode
}

// VerbatimCode is an untagged fence, shown as plain preformatted text.
type VerbatimCode struct {
	Body     string
	Filename string
}

// GetTargetKind returns TargetVerbatimCode.
func (c *VerbatimCode) GetTargetKind() TargetKind {
	return TargetVerbatimCode
}

// Dispatch routes a fenced block to its render target. The routing table
// is total: every language tag maps to exactly one target, so dispatch can
// never fail.
func Dispatch(block FencedBlock) RenderTarget {
	switch dispatch.Route(block.Language) {
	case dispatch.TargetDiagram:
		return &Diagram{Body: block.Body}
	case dispatch.TargetInteractiveChart:
		return &InteractiveChart{Body: block.Body}
	case dispatch.TargetStaticChart:
		return &StaticChart{Body: block.Body}
	case dispatch.TargetHighlightedCode:
		return &HighlightedCode{
			Language: block.Language,
			Body:     block.Body,
			Filename: dispatch.SuggestedFilename(block.Body, block.Language),
		}
	default:
		return &VerbatimCode{
			Body:     block.Body,
			Filename: dispatch.SuggestedFilename(block.Body, ""),
		}
	}
}

// DecodeChartPayload parses a chart fence body. On failure the error is a
// *DecodeError carrying the reason, for the caller to render a placeholder
// instead of the chart.
func DecodeChartPayload(body string) (*ChartPayload, error) {
	return dispatch.DecodeChartPayload(body)
}
