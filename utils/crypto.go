package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashSecret 使用 bcrypt 雜湊密鑰
func HashSecret(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash secret: %w", err)
	}
	return string(bytes), nil
}

// CheckSecretHash 驗證密鑰是否與雜湊相符
func CheckSecretHash(secret, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	return err == nil
}
