package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_TraceID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := &zapLogger{sugar: zap.New(core).Sugar()}

	ctx := WithTraceID(context.Background(), "trace-1")
	l.Infof(ctx, "report %s ready", "r1")
	l.Debugf(ctx, "dropped")

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "report r1 ready", entries[0].Message)
	assert.Equal(t, "trace-1", entries[0].ContextMap()["trace_id"])
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	assert.NotNil(t, l)
	assert.NotPanics(t, func() { NewNop().Errorf(context.Background(), "x %d", 1) })
}
