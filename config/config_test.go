package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendship-offers/config"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CORS_ORIGINS", "MAIL_PROVIDER", "SMTP_HOST", "SMTP_PORT", "RECIPIENT_EMAIL", "EMAIL_USER"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, config.MailSMTP, cfg.MailProvider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, []string{
		"https://friendship-tiers.vercel.app",
		"https://friends.shailavmalik.me",
		"http://localhost:3000",
	}, cfg.CORSOrigins)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MAIL_PROVIDER", " Dev ")
	t.Setenv("CORS_ORIGINS", "http://a.test,http://b.test")

	cfg, err := config.Parse()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, config.MailDev, cfg.MailProvider)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestParse_InvalidPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := config.Parse()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRecipient(t *testing.T) {
	cfg := &config.Config{EmailUser: "me@example.com"}
	assert.Equal(t, "me@example.com", cfg.Recipient())

	cfg.RecipientEmail = "owner@example.com"
	assert.Equal(t, "owner@example.com", cfg.Recipient())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name:    "smtp needs credentials",
			cfg:     config.Config{MailProvider: config.MailSMTP, EmailUser: "me@example.com"},
			wantErr: true,
		},
		{
			name: "smtp with credentials",
			cfg:  config.Config{MailProvider: config.MailSMTP, EmailUser: "me@example.com", EmailPass: "secret"},
		},
		{
			name:    "postmark needs tokens",
			cfg:     config.Config{MailProvider: config.MailPostmark, EmailUser: "me@example.com"},
			wantErr: true,
		},
		{
			name: "postmark with tokens",
			cfg: config.Config{
				MailProvider:         config.MailPostmark,
				EmailUser:            "me@example.com",
				PostmarkServerToken:  "s",
				PostmarkAccountToken: "a",
			},
		},
		{
			name:    "dev needs a recipient",
			cfg:     config.Config{MailProvider: config.MailDev},
			wantErr: true,
		},
		{
			name: "log works without anything",
			cfg:  config.Config{MailProvider: config.MailLog},
		},
		{
			name:    "unknown provider",
			cfg:     config.Config{MailProvider: "pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, config.ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}
