package models

import "errors"

var (
	// 活動
	ErrEventNotFound = errors.New("event not found")

	// 車位 / 座位
	ErrSpotNotFound      = errors.New("spot not found")
	ErrSpotAlreadyExists = errors.New("spot already exists")
	ErrSpotNotAvailable  = errors.New("spot is not available")

	// 票券
	ErrInvalidTicketKind = errors.New("invalid ticket kind")

	// 認證
	ErrInvalidAPIKey = errors.New("invalid api key")
)
