package utils

import "errors"

var (
	ErrDestinationNotFound = errors.New("destination not found")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("session not found or expired")
	ErrInvalidInput        = errors.New("invalid input")
	ErrCacheError          = errors.New("cache error")
)
