package errors

import "errors"

var (
	ErrInvalidName      = errors.New("channel name cannot be empty")
	ErrDuplicateChannel = errors.New("channel already exists")
	ErrChannelNotFound  = errors.New("channel not found")
	ErrStorageRead      = errors.New("channel storage is unreadable")
	ErrInvalidSelection = errors.New("invalid filter selection")
)
