// Package mail delivers owner notifications through SMTP, Postmark, a
// local directory or the log.
package mail

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Message is one outbound email. The sender address belongs to the
// Sender, not the message.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	Tag     string
}

func (m Message) Validate() error {
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", ErrInvalidMessage, m.To, err)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}
