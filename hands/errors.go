package hands

import "errors"

var (
	ErrInvalidOperation = errors.New("invalid operation")
	ErrIndexOutOfRange  = errors.New("index out of range")
)
