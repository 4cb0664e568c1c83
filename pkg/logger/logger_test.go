package logger_test

import (
	"testing"

	"go-gin-activities/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithComponent(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	logger.WithComponent("service").Info("hello", zap.String("k", "v"))

	entries := logs.All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "service", ctx["component"])
	assert.Equal(t, "v", ctx["k"])
}

func TestReplace(t *testing.T) {
	original := logger.L
	restore := logger.Replace(zap.NewNop())
	assert.NotSame(t, original, logger.L)
	restore()
	assert.Same(t, original, logger.L)
}
