package handlers

import (
	"errors"
	"net/http"

	"partnerapi/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// APIResponse 定義統一的 API 回應結構
type APIResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// SuccessResponse 返回成功的回應
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 返回失敗的回應
func ErrorResponse(c *gin.Context, statusCode int, message string, err string) {
	c.JSON(statusCode, APIResponse{
		Status:  false,
		Message: message,
		Error:   err,
	})
}

// statusFor 依錯誤種類決定 HTTP 狀態碼
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrSpotNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrSpotAlreadyExists),
		errors.Is(err, models.ErrSpotNotAvailable):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidTicketKind):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// failWith 記錄錯誤並以對應狀態碼回應
func failWith(c *gin.Context, message string, err error) {
	status := statusFor(err)
	entry := logrus.WithError(err).WithField("path", c.Request.URL.Path)
	if status >= http.StatusInternalServerError {
		entry.Error(message)
		ErrorResponse(c, status, message, "internal server error")
		return
	}
	entry.Warn(message)
	ErrorResponse(c, status, message, err.Error())
}
