package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/JoeShih716/go-mem-bank/internal/app/core/domain"
)

// KindBadRequest 請求格式錯誤 (JSON 解析失敗或缺少欄位)，不屬於帳本錯誤
const KindBadRequest = "BadRequest"

// statusFor 帳本錯誤種類對應的 HTTP 狀態碼
func statusFor(err error) int {
	if errors.Is(err, domain.ErrLedgerStopped) {
		return http.StatusServiceUnavailable
	}
	switch domain.Kind(err) {
	case domain.KindAccountNotFound:
		return http.StatusNotFound
	case domain.KindDuplicateAccount:
		return http.StatusConflict
	case domain.KindInsufficientFunds, domain.KindBelowMinimumBalance:
		return http.StatusUnprocessableEntity
	case domain.KindInvalidAccountNumber, domain.KindInvalidName, domain.KindInvalidAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	kind := domain.Kind(err)
	status := statusFor(err)
	h.metrics.RecordError(kind)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
		"code":    kind,
	})
}

func (h *Handler) respondBadRequest(c *gin.Context, msg string) {
	h.metrics.RecordError(KindBadRequest)
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   msg,
		"code":    KindBadRequest,
	})
}

// validateRequest 驗證 DTO 並把錯誤轉成可讀訊息
func (h *Handler) validateRequest(dto interface{}) error {
	if err := h.validator.Struct(dto); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		var errorMessages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				errorMessages = append(errorMessages, "field "+e.Field()+" is required")
			default:
				errorMessages = append(errorMessages, "field "+e.Field()+" failed "+e.Tag())
			}
		}
		return errors.New(strings.Join(errorMessages, "; "))
	}
	return nil
}
