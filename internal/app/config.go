package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string      // container directory, e.g. $HOME/.coldsign
	Permissive bool        // tolerate memory-lock failures (test environments only)
	Logger     *zap.Logger // optional; defaults to a no-op logger
}
