// Package dispatch routes fenced blocks to the specialized renderer that
// should receive them, keyed by the fence info-string language tag.
package dispatch

// TargetKind identifies the renderer a fenced block is routed to.
type TargetKind int

const (
	// TargetDiagram is a mermaid diagram, drawn by the diagram engine.
	TargetDiagram TargetKind = iota
	// TargetInteractiveChart is a plotly payload.
	TargetInteractiveChart
	// TargetStaticChart is a chart.js payload.
	TargetStaticChart
	// TargetHighlightedCode is source code with a known language tag.
	TargetHighlightedCode
	// TargetVerbatimCode is an untagged fence, shown as plain text.
	TargetVerbatimCode
)

// String returns the string representation of TargetKind.
func (k TargetKind) String() string {
	switch k {
	case TargetDiagram:
		return "diagram"
	case TargetInteractiveChart:
		return "interactive_chart"
	case TargetStaticChart:
		return "static_chart"
	case TargetHighlightedCode:
		return "highlighted_code"
	case TargetVerbatimCode:
		return "verbatim_code"
	default:
		return "unknown"
	}
}

// FencedBlock is a fenced code region as handed over by the structural
// Markdown parser: the info-string language tag, verbatim, and the body.
type FencedBlock struct {
	Language string
	Body     string
}

// Route maps a fence language tag to its render target. The match is exact
// and case-sensitive; the table is total, so every tag routes somewhere and
// dispatch can never fail.
func Route(tag string) TargetKind {
	switch tag {
	case "mermaid":
		return TargetDiagram
	case "plotly":
		return TargetInteractiveChart
	case "chartjs", "chart":
		return TargetStaticChart
	case "":
		return TargetVerbatimCode
	default:
		return TargetHighlightedCode
	}
}
