package mail

import (
	"context"
	"errors"
)

// UnavailableSender stands in when no provider could be configured. Every
// Send fails with ErrInvalidConfig, so each route applies its own
// dispatch policy instead of the whole process refusing to start.
type UnavailableSender struct {
	reason error
}

func NewUnavailableSender(reason error) *UnavailableSender {
	return &UnavailableSender{reason: reason}
}

func (u *UnavailableSender) Send(_ context.Context, _ Message) error {
	if u.reason == nil {
		return ErrInvalidConfig
	}
	return errors.Join(ErrInvalidConfig, u.reason)
}
