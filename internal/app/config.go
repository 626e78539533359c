package app

import (
	"time"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	ConstantsPath string           // optional .toml/.yaml table replacing the built-in iron table
	ReportDir     string           // optional directory for saved JSON reports
	Logger        *zap.Logger      // optional; defaults to a no-op logger
	Now           func() time.Time // optional; defaults to time.Now
}
