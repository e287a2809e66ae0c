package mathdown

import (
	"sync"

	"github.com/ericyerongjun/mathdown-go/internal/types"
)

// RenderConfig is re-exported for callers configuring Render.
type RenderConfig = types.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}
