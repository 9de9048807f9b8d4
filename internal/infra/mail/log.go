package mail

import (
	"context"

	"go.uber.org/zap"
)

// LogSender only logs. Useful where no mail account exists.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log}
}

func (l *LogSender) Send(_ context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	l.log.Info("email (not sent)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("tag", msg.Tag),
		zap.Int("html_bytes", len(msg.HTML)),
		zap.String("text", msg.Text),
	)
	return nil
}
