package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

var JWTSecret []byte

// InitJWTSecret 設定簽章密鑰，未設定時產生隨機密鑰（重啟後舊 token 失效）
func InitJWTSecret(secret string) {
	if secret != "" {
		JWTSecret = []byte(secret)
		return
	}
	JWTSecret = make([]byte, 32)
	if _, err := rand.Read(JWTSecret); err != nil {
		logrus.Fatalf("Failed to generate JWT secret: %v", err)
	}
	logrus.Warn("AUTH_JWT_SECRET is not set, using a random secret")
}

// GenerateToken 簽發帶 partner 與 exp 的 HS256 token
func GenerateToken(partner string, ttl time.Duration) (string, error) {
	if len(JWTSecret) == 0 {
		return "", errors.New("jwt secret is not initialized")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"partner": partner,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	})
	return token.SignedString(JWTSecret)
}

// ParseToken 驗證 token 並回傳 partner
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return JWTSecret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	partner, ok := claims["partner"].(string)
	if !ok || partner == "" {
		return "", fmt.Errorf("missing partner claim")
	}
	return partner, nil
}
