package services

import (
	"fmt"
	"time"

	"partnerapi/models"
	"partnerapi/utils"
)

// AuthService 以 API key 換取 JWT
type AuthService struct {
	apiKeyHash string
	tokenTTL   time.Duration
}

// NewAuthService 啟動時即雜湊 API key，之後只比對雜湊值
func NewAuthService(apiKey string, tokenTTL time.Duration) (*AuthService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key is not set")
	}
	hash, err := utils.HashSecret(apiKey)
	if err != nil {
		return nil, err
	}
	return &AuthService{apiKeyHash: hash, tokenTTL: tokenTTL}, nil
}

func (s *AuthService) IssueToken(apiKey, partner string) (string, error) {
	if !utils.CheckSecretHash(apiKey, s.apiKeyHash) {
		return "", models.ErrInvalidAPIKey
	}
	token, err := utils.GenerateToken(partner, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
