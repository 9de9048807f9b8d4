package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Mail providers
const (
	MailSMTP     = "smtp"
	MailPostmark = "postmark"
	MailDev      = "dev"
	MailLog      = "log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Port      string `env:"PORT" envDefault:"5000"`
	GinMode   string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"https://friendship-tiers.vercel.app,https://friends.shailavmalik.me,http://localhost:3000"`

	MailProvider   string `env:"MAIL_PROVIDER" envDefault:"smtp"`
	EmailUser      string `env:"EMAIL_USER"`
	EmailPass      string `env:"EMAIL_PASS"`
	RecipientEmail string `env:"RECIPIENT_EMAIL"`
	SMTPHost       string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort       int    `env:"SMTP_PORT" envDefault:"587"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	MailDevDir           string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`

	RosterFile string `env:"ROSTER_FILE"`
	DBURL      string `env:"DB_URL"`
}

// Load reads .env (when present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.MailProvider = strings.ToLower(strings.TrimSpace(cfg.MailProvider))
	return &cfg, nil
}

// Recipient is where owner notifications go.
func (c *Config) Recipient() string {
	if v := strings.TrimSpace(c.RecipientEmail); v != "" {
		return v
	}
	return c.EmailUser
}

func (c *Config) Validate() error {
	switch c.MailProvider {
	case MailSMTP:
		if c.EmailUser == "" || c.EmailPass == "" {
			return fmt.Errorf("%w: EMAIL_USER and EMAIL_PASS must be set for the smtp provider", ErrInvalidConfig)
		}
	case MailPostmark:
		if c.PostmarkServerToken == "" || c.PostmarkAccountToken == "" {
			return fmt.Errorf("%w: POSTMARK_SERVER_TOKEN and POSTMARK_ACCOUNT_TOKEN must be set", ErrInvalidConfig)
		}
		if c.EmailUser == "" {
			return fmt.Errorf("%w: EMAIL_USER is the sender address and must be set", ErrInvalidConfig)
		}
	case MailDev, MailLog:
	default:
		return fmt.Errorf("%w: unknown MAIL_PROVIDER %q", ErrInvalidConfig, c.MailProvider)
	}

	if c.Recipient() == "" && c.MailProvider != MailLog {
		return fmt.Errorf("%w: no recipient (set RECIPIENT_EMAIL or EMAIL_USER)", ErrInvalidConfig)
	}
	return nil
}
