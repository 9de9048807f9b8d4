// Package notify turns site events into owner emails.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/infra/mail"
)

//go:embed templates
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// Mail tags, also used as dev-mailbox file prefixes.
const (
	TagTierRequest = "submit-tier"
	TagShowMore    = "show-more"
	TagVisitor     = "visitor"
	TagTest        = "mail-test"
)

type TierRequest struct {
	Name    string
	Message string
	Mobile  string
	Tier    string
	Price   string
}

type ShowMore struct {
	UserName string
	TierName string
}

type Visitor struct {
	Name      string
	VisitedAt time.Time
	Friend    *friends.Match
}

type Notifier struct {
	sender mail.Sender
	to     string
	log    *zap.Logger
	now    func() time.Time
}

func New(sender mail.Sender, to string, log *zap.Logger) *Notifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &Notifier{sender: sender, to: to, log: log, now: time.Now}
}

// WithClock replaces the time source. Tests only.
func (n *Notifier) WithClock(now func() time.Time) *Notifier {
	n.now = now
	return n
}

func (n *Notifier) Recipient() string {
	return n.to
}

func (n *Notifier) TierRequest(ctx context.Context, r TierRequest) error {
	now := n.now()
	data := struct {
		TierRequest
		Time string
		Year int
	}{r, FormatTime(now), now.In(IST).Year()}

	return n.send(ctx, TagTierRequest, fmt.Sprintf("🎉 New Friendship Tier Request: %s", r.Tier), "tier_request", data)
}

// ShowMore fills in placeholders for missing names rather than failing.
func (n *Notifier) ShowMore(ctx context.Context, e ShowMore) error {
	if strings.TrimSpace(e.UserName) == "" {
		e.UserName = "Someone"
	}
	if strings.TrimSpace(e.TierName) == "" {
		e.TierName = "unknown"
	}

	now := n.now()
	data := struct {
		ShowMore
		Time string
		Year int
	}{e, FormatTime(now), now.In(IST).Year()}

	return n.send(ctx, TagShowMore, fmt.Sprintf("👀 %s viewed %s features", e.UserName, e.TierName), "show_more", data)
}

// Visitor reports a new visitor. A zero VisitedAt means now.
func (n *Notifier) Visitor(ctx context.Context, v Visitor) error {
	if v.VisitedAt.IsZero() {
		v.VisitedAt = n.now()
	}
	data := struct {
		Visitor
		Time string
		Year int
	}{v, FormatTime(v.VisitedAt), v.VisitedAt.In(IST).Year()}

	return n.send(ctx, TagVisitor, fmt.Sprintf("👋 New Visitor Alert - %s", v.Name), "visitor", data)
}

// Test sends the configuration self-test email.
func (n *Notifier) Test(ctx context.Context, provider string) error {
	now := n.now()
	data := struct {
		Provider string
		To       string
		Time     string
		Year     int
	}{provider, n.to, FormatTime(now), now.In(IST).Year()}

	return n.send(ctx, TagTest, "🧪 Friendship Offers™ - Email Test", "test", data)
}

func (n *Notifier) send(ctx context.Context, tag, subject, name string, data any) error {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, name+".html", data); err != nil {
		return fmt.Errorf("render %s html: %w", name, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, name+".txt", data); err != nil {
		return fmt.Errorf("render %s text: %w", name, err)
	}

	msg := mail.Message{
		To:      n.to,
		Subject: subject,
		HTML:    html.String(),
		Text:    text.String(),
		Tag:     tag,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		return err
	}

	n.log.Info("notification sent", zap.String("tag", tag), zap.String("to", n.to))
	return nil
}
