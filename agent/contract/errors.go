package contract

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrHandlerFailed = errors.New("agent handler failed")
	ErrStore         = errors.New("conversation store failed")
)
