package models

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrInvalidItemType   = errors.New("invalid item type")
)
