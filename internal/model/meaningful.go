package model

import (
	"strings"
	"time"
)

func meaningfulString(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func meaningfulFloat(f *float64) *float64 {
	if f == nil || *f == 0 {
		return nil
	}
	return f
}

func meaningfulTime(t *time.Time) *time.Time {
	if t == nil || t.IsZero() || t.Unix() == 0 {
		return nil
	}
	return t
}
