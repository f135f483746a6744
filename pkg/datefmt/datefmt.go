// Package datefmt 日期展示与表单日期解析
package datefmt

import (
	"errors"
	"time"
)

const (
	// DisplayLayout 页面展示格式，如 Oct 14, 2026
	DisplayLayout = "Jan 2, 2006"

	// InputLayout 表单日期格式（<input type="date">）
	InputLayout = "2006-01-02"
)

// ErrUnavailable 日期缺失，无法格式化
var ErrUnavailable = errors.New("date unavailable")

// Format 格式化可选日期
// 日期缺失时返回ErrUnavailable，由调用方决定如何展示
func Format(t *time.Time) (string, error) {
	if t == nil || t.IsZero() {
		return "", ErrUnavailable
	}
	return t.Format(DisplayLayout), nil
}

// FormatOr 格式化可选日期，缺失时返回fallback
func FormatOr(t *time.Time, fallback string) string {
	s, err := Format(t)
	if err != nil {
		return fallback
	}
	return s
}

// FormatInput 格式化为表单回填值，缺失时返回空串
func FormatInput(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(InputLayout)
}

// ParseInput 解析表单日期
func ParseInput(s string) (time.Time, error) {
	return time.Parse(InputLayout, s)
}
