package repository

import "errors"

var (
	ErrCorruptData   = errors.New("knowledge data is corrupt")
	ErrUnknownDriver = errors.New("unknown knowledge driver")
)
