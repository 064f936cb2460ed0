package internaltypes

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("already exists")
	ErrAlreadyCancelled = errors.New("reservation already cancelled")
	ErrNoRooms          = errors.New("no rooms available")
	ErrAtCapacity       = errors.New("already at full capacity")
)
