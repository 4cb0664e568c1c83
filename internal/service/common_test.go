package service_test

import (
	"context"
	"testing"

	repoMocks "go-gin-activities/internal/repository/mocks"
	"go-gin-activities/pkg/logger"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs 以 observer 取代全域 logger，測試結束後還原
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(logger.Replace(zap.New(core)))
	return logs
}

// passthroughTx 直接執行 fn，模擬成功開啟的 transaction
func passthroughTx(t *testing.T) *repoMocks.MockTransactor {
	tx := repoMocks.NewMockTransactor(t)
	tx.EXPECT().WithinTx(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	return tx
}

func ptr[T any](v T) *T {
	return &v
}
