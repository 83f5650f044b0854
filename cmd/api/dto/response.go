package dto

import (
	"time"

	"blog-platform/validation"
)

// ErrorResponseDTO는 5xx 응답의 공통 형식이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"internal server error"`
}

// ValidationErrorDTO는 400 검증 오류 응답 형식이다.
type ValidationErrorDTO struct {
	ErrorsMessages []validation.FieldError `json:"errorsMessages"`
}

// HealthDTO는 /health 응답이다.
type HealthDTO struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty"`
}

// isoMillis 는 createdAt 직렬화 형식(UTC, 밀리초)이다.
const isoMillis = "2006-01-02T15:04:05.000Z"

// FormatTime 은 시각을 ISO-8601 UTC 밀리초 문자열로 만든다.
func FormatTime(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
