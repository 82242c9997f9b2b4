package routes

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"partnerapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// AuthMiddleware 驗證 JWT token，並提取 partner
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "缺少 Authorization 標頭", "Authorization header is required", "ERR_NO_AUTH_HEADER")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "無效的 Authorization 格式", "Authorization header must be in the format 'Bearer <token>'", "ERR_INVALID_AUTH_FORMAT")
			return
		}

		partner, err := utils.ParseToken(parts[1])
		if err != nil {
			logrus.WithError(err).Debug("Token parsing error")
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, "token 已過期", "Token has expired", "ERR_TOKEN_EXPIRED")
			} else {
				abortUnauthorized(c, "無效的 token", err.Error(), "ERR_INVALID_TOKEN")
			}
			return
		}

		c.Set("partner", partner)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message, errMsg, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  false,
		"message": message,
		"error":   errMsg,
		"code":    code,
	})
}

// Logger 以 logrus 記錄每個請求
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start),
			"client_ip": c.ClientIP(),
		})
		if partner, ok := c.Get("partner"); ok {
			entry = entry.WithField("partner", partner)
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Error("Request failed")
		} else {
			entry.Info("Request processed")
		}
	}
}
