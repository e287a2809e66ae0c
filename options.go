package mathdown

// RenderOptions holds options for a render pass.
type RenderOptions struct {
	Config *RenderConfig
}

// Option is a function that configures RenderOptions.
type Option func(*RenderOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *RenderOptions) {
		if config != nil {
			c := *config
			opts.Config = &c
		}
	}
}

// WithHighlightStyle sets the chroma style used for highlighted code.
func WithHighlightStyle(name string) Option {
	return func(opts *RenderOptions) {
		opts.Config.HighlightStyle = name
	}
}

// WithMermaidLiveLink toggles the mermaid.live edit link under diagrams.
func WithMermaidLiveLink(enable bool) Option {
	return func(opts *RenderOptions) {
		opts.Config.MermaidLiveLink = enable
	}
}

// defaultRenderOptions copies the default config so option functions can
// mutate it freely.
func defaultRenderOptions() *RenderOptions {
	cfg := *DefaultConfig()
	return &RenderOptions{Config: &cfg}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *RenderOptions {
	options := defaultRenderOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
