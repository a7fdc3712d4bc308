package log

import "go.uber.org/zap"

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey struct{}
