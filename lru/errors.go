package lru

import "errors"

var (
	ErrInvalidCapacity = errors.New("capacity must be a positive integer")
	ErrEmptyKey        = errors.New("key must not be empty")
	ErrKeyTooLong      = errors.New("key is too long")
	ErrInvalidTTL      = errors.New("TTL must not be negative")
)
