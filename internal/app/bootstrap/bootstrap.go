// Package bootstrap wires configuration into the running pieces.
package bootstrap

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"friendship-offers/config"
	"friendship-offers/database"
	routes "friendship-offers/internal/app/http"
	"friendship-offers/internal/assets"
	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/domain/tiers"
	"friendship-offers/internal/infra/mail"
	"friendship-offers/internal/infra/roster"
	"friendship-offers/internal/notify"
)

// Build assembles the route dependencies. The returned cleanup closes
// anything Build opened and is never nil. A mail misconfiguration is not
// an error here: it is logged and every send fails instead.
func Build(cfg *config.Config, log *zap.Logger) (routes.Deps, func(), error) {
	cleanup := func() {}

	catalog, err := tiers.ParseCatalog(assets.Tiers)
	if err != nil {
		return routes.Deps{}, cleanup, err
	}

	var db *gorm.DB
	if cfg.DBURL != "" {
		db, err = database.InitDB(cfg.DBURL)
		if err != nil {
			return routes.Deps{}, cleanup, err
		}
		cleanup = func() {
			if err := database.Close(db); err != nil {
				log.Warn("closing database", zap.Error(err))
			}
		}
	}

	r, source, err := LoadRoster(cfg, db)
	if err != nil {
		cleanup()
		return routes.Deps{}, func() {}, err
	}
	log.Info("roster loaded",
		zap.String("source", source),
		zap.Int("categories", len(r.Categories)),
		zap.Int("entries", r.EntryCount()),
	)

	sender := senderOrUnavailable(cfg, log)

	return routes.Deps{
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
		Catalog:     catalog,
		Matcher:     friends.NewMatcher(r),
		Notifier:    notify.New(sender, cfg.Recipient(), log),
	}, cleanup, nil
}

// LoadRoster picks the roster source: the database when one is open,
// then ROSTER_FILE, then the embedded default.
func LoadRoster(cfg *config.Config, db *gorm.DB) (friends.Roster, string, error) {
	switch {
	case db != nil:
		r, err := roster.LoadFromDB(db)
		return r, "database", err
	case cfg.RosterFile != "":
		r, err := roster.LoadFile(cfg.RosterFile)
		return r, cfg.RosterFile, err
	default:
		r, err := roster.Default()
		return r, "embedded", err
	}
}

func senderOrUnavailable(cfg *config.Config, log *zap.Logger) mail.Sender {
	err := cfg.Validate()
	if err == nil {
		var s mail.Sender
		if s, err = NewSender(cfg, log); err == nil {
			return s
		}
	}
	log.Error("mail disabled, notifications will fail",
		zap.String("mail_provider", cfg.MailProvider),
		zap.Error(err),
	)
	return mail.NewUnavailableSender(err)
}

// NewSender returns the mail.Sender for cfg.MailProvider.
func NewSender(cfg *config.Config, log *zap.Logger) (mail.Sender, error) {
	switch cfg.MailProvider {
	case config.MailSMTP:
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			From:     cfg.EmailUser,
		})
	case config.MailPostmark:
		return mail.NewPostmarkSender(mail.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			From:         cfg.EmailUser,
		})
	case config.MailDev:
		return mail.NewDevSender(cfg.MailDevDir)
	case config.MailLog:
		return mail.NewLogSender(log), nil
	}
	return nil, fmt.Errorf("%w: unknown MAIL_PROVIDER %q", config.ErrInvalidConfig, cfg.MailProvider)
}
