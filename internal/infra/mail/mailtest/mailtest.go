// Package mailtest provides a testify mock of mail.Sender.
package mailtest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"friendship-offers/internal/infra/mail"
)

type Sender struct {
	mock.Mock
}

var _ mail.Sender = (*Sender)(nil)

func (s *Sender) Send(ctx context.Context, msg mail.Message) error {
	args := s.Called(ctx, msg)
	return args.Error(0)
}

// Sent returns every message passed to Send, in order.
func (s *Sender) Sent() []mail.Message {
	var out []mail.Message
	for _, c := range s.Calls {
		if c.Method == "Send" {
			out = append(out, c.Arguments.Get(1).(mail.Message))
		}
	}
	return out
}
