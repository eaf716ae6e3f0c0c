package repositories

import "errors"

var (
	ErrAlreadyExists       = errors.New("record already exists")
	ErrNotFound            = errors.New("record not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrAlreadyClaimed      = errors.New("spin already claimed")
	ErrCacheMiss           = errors.New("cache miss")
)
