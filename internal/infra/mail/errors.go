package mail

import "errors"

var (
	ErrSendFailed     = errors.New("failed to send email")
	ErrInvalidConfig  = errors.New("invalid mail configuration")
	ErrInvalidMessage = errors.New("invalid email message")
)
