package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/cmd/api/dto"
	"blog-platform/cmd/api/services"
	"blog-platform/cmd/api/trace"
	"blog-platform/internal/logger"
	"blog-platform/query"
	"blog-platform/validation"
)

// respondError 는 서비스 오류를 HTTP 상태와 응답 본문으로 바꾼다.
func respondError(c *gin.Context, err error) {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.ValidationErrorDTO{ErrorsMessages: verr})
	case errors.Is(err, services.ErrEmailNotUnique):
		fieldError(c, "email", err)
	case errors.Is(err, services.ErrLoginNotUnique):
		fieldError(c, "login", err)
	case errors.Is(err, services.ErrInvalidConfirmationCode):
		fieldError(c, "code", err)
	case errors.Is(err, services.ErrWrongCredentials):
		c.Status(http.StatusUnauthorized)
	case errors.Is(err, services.ErrForbidden):
		c.Status(http.StatusForbidden)
	case errors.Is(err, services.ErrNotFound):
		c.Status(http.StatusNotFound)
	default:
		logger.ErrorWithFields("request failed", logger.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"request_id": trace.RequestID(c.Request.Context()),
			"error":      err.Error(),
		})
		c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "internal server error"})
	}
}

func fieldError(c *gin.Context, field string, err error) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorDTO{
		ErrorsMessages: []validation.FieldError{{Field: field, Message: err.Error()}},
	})
}

// bindJSON 은 요청 본문을 디코딩하고 검증한다. 실패하면 400 을 쓰고 false 를 반환한다.
// 빈 본문은 모든 필드가 비어 있는 객체로 취급한다.
func bindJSON(c *gin.Context, in any) bool {
	var errs validation.Errors
	if err := c.ShouldBindJSON(in); err != nil && !errors.Is(err, io.EOF) {
		errs = validation.DecodeError(err)
	}
	errs = errs.Merge(validation.Check(in))
	if len(errs) > 0 {
		respondError(c, errs)
		return false
	}
	return true
}

// bindQuery 는 목록 조회 쿼리를 엔티티 정책에 따라 해석한다.
func bindQuery(c *gin.Context, p query.Policy) (query.ListQuery, bool) {
	q, errs := p.Resolve(c.Request.URL.Query())
	if len(errs) > 0 {
		respondError(c, errs)
		return query.ListQuery{}, false
	}
	return q, true
}

// Pinger 는 헬스 체크 대상 저장소다.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
// @Summary      Health check
// @Description  Ping the document store
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthDTO
// @Failure      503  {object}  dto.HealthDTO
// @Router       /health [get]
func HealthHandler(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			logger.WarnWithFields("health check failed", logger.Fields{"error": err.Error()})
			c.JSON(http.StatusServiceUnavailable, dto.HealthDTO{Status: "unavailable", Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.HealthDTO{Status: "ok"})
	}
}
