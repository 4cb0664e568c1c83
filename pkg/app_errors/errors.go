package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrTimeout             = errors.New("request timed out")
	ErrInternalServerError = errors.New("internal server error")
)

// Internal 包裝非預期錯誤，errors.Is 同時可匹配 ErrInternalServerError 與原始錯誤
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInternalServerError, err)
}

// IsNotFound 判斷是否為任一實體的 not found 錯誤
func IsNotFound(err error) bool {
	return errors.Is(err, ErrActivityNotFound) || errors.Is(err, ErrEventNotFound)
}
