package types

// RenderConfig controls the HTML handoff produced for each render target.
type RenderConfig struct {
	// HighlightStyle is the chroma style name used for highlighted code.
	HighlightStyle string
	// GuessLanguage enables content-based language detection for fences
	// with an unknown tag.
	GuessLanguage bool
	// MermaidTheme is passed through to the diagram engine.
	MermaidTheme string
	// MermaidLiveLink adds a mermaid.live edit link under each diagram.
	MermaidLiveLink bool
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		HighlightStyle:  "github",
		GuessLanguage:   false,
		MermaidTheme:    "default",
		MermaidLiveLink: true,
	}
}
