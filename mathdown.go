// Package mathdown prepares LLM-generated Markdown for rendering.
//
// Model output mixes Markdown prose, inconsistent LaTeX math delimiters,
// fenced code, diagram definitions, and chart payloads. This package sits
// in front of the structural renderer and the visual widgets and makes the
// text safe for them:
//
//   - Normalize(): rewrite every ad-hoc math delimiter form into canonical
//     $/$$ notation without ever touching fenced code
//   - SplitInline(): split short strings (suggestion chips) into alternating
//     text/math runs for lightweight contexts
//   - Dispatch(): route a fenced block to the renderer that should receive
//     it, by language tag
//   - Render(): full pipeline, producing HTML handoff markup via goldmark
//
// Every transform is a pure function over its input: no shared state, no
// I/O, safe for concurrent use. Malformed input never raises; it degrades
// to literal text, verbatim code, or a visible placeholder.
//
// Example:
//
//	html, err := mathdown.Render("Euler: \\(e^{i\\pi}+1=0\\)")
//	if err != nil {
//	    // renderer-internal failure only; malformed input never errors
//	}
package mathdown

// Render normalizes a document and renders it to HTML handoff markup.
//
// The document is guarded (fenced code set aside), its prose normalized to
// canonical math delimiters, and the result parsed by goldmark. Each fenced
// block the parser discovers is dispatched once: mermaid fences become
// diagram divs, plotly/chartjs fences become chart divs carrying their
// decoded payloads, tagged code is syntax-highlighted, and untagged code
// stays verbatim.
//
// Render never fails on malformed document content; the error covers only
// renderer-internal problems.
func Render(document string, opts ...Option) (string, error) {
	options := applyOptions(opts...)
	return renderDocument(document, options.Config)
}
