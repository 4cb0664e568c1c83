package service

import (
	"context"
	"errors"
	"time"

	apperrors "go-gin-activities/pkg/app_errors"
	"go-gin-activities/pkg/logger"

	"go.uber.org/zap"
)

func serviceLogger(operation string, fields ...zap.Field) *zap.Logger {
	return logger.WithComponent("service").With(zap.String("operation", operation)).With(fields...)
}

// classify 將 repository 錯誤轉為對外的錯誤類型：
// not found 與 invalid input 原樣回傳，取消或逾時轉為 ErrTimeout，其餘包成 ErrInternalServerError
func classify(ctx context.Context, log *zap.Logger, err error, notFoundMsg string) error {
	switch {
	case apperrors.IsNotFound(err):
		if notFoundMsg == "" {
			notFoundMsg = "Entity not found"
		}
		log.Warn(notFoundMsg)
		return err
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input", zap.Error(err))
		return err
	case errors.Is(err, apperrors.ErrTimeout),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		ctx.Err() != nil:
		log.Warn("Operation cancelled", zap.Error(err))
		return apperrors.ErrTimeout
	default:
		log.Error("Unexpected error", zap.Error(err))
		return apperrors.Internal(err)
	}
}

// settle 等待 delay，context 取消時提前回傳錯誤
func settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func distinct[T comparable](ids []T) []T {
	seen := make(map[T]struct{}, len(ids))
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
