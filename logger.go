package mathdown

import "go.uber.org/zap"

// logger is a no-op by default: the core transforms are silent, and only
// degraded render paths (for example a rejected chart payload) log at all.
var logger = zap.NewNop()

// SetLogger installs a custom logger for the rendering layer.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
