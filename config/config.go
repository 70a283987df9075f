package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	BlobS3         = "s3"
	BlobCloudinary = "cloudinary"

	MailZepto = "zeptomail"
	MailSES   = "ses"
)

type Config struct {
	Env            string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	Admin   Admin   `envPrefix:"ADMIN_"`
	Session Session `envPrefix:"SESSION_"`

	StoreDriver string `env:"DOCUMENT_STORE" envDefault:"mongo"`
	MongoURI    string `env:"MONGO_URI"`
	DBName      string `env:"MONGO_DB" envDefault:"topup"`

	BlobProvider string     `env:"BLOB_PROVIDER" envDefault:"s3"`
	Bucket       Bucket     `envPrefix:"STORAGE_"`
	Cloudinary   Cloudinary `envPrefix:"CLOUDINARY_"`

	MailProvider string `env:"EMAIL_PROVIDER" envDefault:"zeptomail"`
	EmailFrom    string `env:"EMAIL_FROM"`
	Zepto        Zepto  `envPrefix:"ZEPTO_"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`

	Telegram Telegram `envPrefix:"TELEGRAM_"`

	// notification recipient candidates, checked in this order
	NotifyEmail string `env:"NOTIFY_EMAIL"`
	AdminEmail  string `env:"ADMIN_EMAIL"`
	EmailTo     string `env:"EMAIL_TO"`

	// NotifyRecipients is NotifyEmail, AdminEmail, EmailTo in fallback order.
	NotifyRecipients []string

	NotifyTimeout time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"15s"`
}

type Admin struct {
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}

type Session struct {
	Secret string        `env:"SECRET"`
	TTL    time.Duration `env:"TTL" envDefault:"168h"`
}

type Bucket struct {
	Name          string `env:"BUCKET"`
	Endpoint      string `env:"ENDPOINT" envDefault:"https://storage.googleapis.com"`
	Region        string `env:"REGION" envDefault:"auto"`
	AccessKey     string `env:"ACCESS_KEY"`
	SecretKey     string `env:"SECRET_KEY"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://storage.googleapis.com"`
}

type Cloudinary struct {
	CloudName string `env:"CLOUD_NAME"`
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
}

type Zepto struct {
	APIURL string `env:"API_URL" envDefault:"https://api.zeptomail.com/v1.1/email"`
	APIKey string `env:"API_KEY"`
	ToName string `env:"TO_NAME"`
}

type Telegram struct {
	BotToken string `env:"BOT_TOKEN"`
	ChatID   string `env:"CHAT_ID"`
}

// Load reads an optional .env file and parses the process environment.
func Load() (*Config, error) {
	// .env is optional outside development
	_ = godotenv.Load()

	return Parse(env.Options{})
}

// Parse builds and validates a Config from the given env options.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.NotifyRecipients = []string{cfg.NotifyEmail, cfg.AdminEmail, cfg.EmailTo}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	missing := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}

	missing("ADMIN_USERNAME", c.Admin.Username)
	missing("ADMIN_PASSWORD", c.Admin.Password)
	missing("SESSION_SECRET", c.Session.Secret)
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}

	// the admin session cookie needs credentialed CORS, which forbids "*"
	for _, origin := range c.AllowedOrigins {
		if strings.TrimSpace(origin) == "*" {
			errs = append(errs, errors.New(`CORS_ORIGINS cannot contain "*", list the admin panel origins explicitly`))
			break
		}
	}

	switch c.StoreDriver {
	case StoreMongo:
		missing("MONGO_URI", c.MongoURI)
		missing("MONGO_DB", c.DBName)
	case StoreMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown DOCUMENT_STORE %q", c.StoreDriver))
	}

	switch c.BlobProvider {
	case BlobS3:
		missing("STORAGE_BUCKET", c.Bucket.Name)
		missing("STORAGE_ACCESS_KEY", c.Bucket.AccessKey)
		missing("STORAGE_SECRET_KEY", c.Bucket.SecretKey)
	case BlobCloudinary:
		missing("CLOUDINARY_CLOUD_NAME", c.Cloudinary.CloudName)
		missing("CLOUDINARY_API_KEY", c.Cloudinary.APIKey)
		missing("CLOUDINARY_API_SECRET", c.Cloudinary.APISecret)
	default:
		errs = append(errs, fmt.Errorf("unknown BLOB_PROVIDER %q", c.BlobProvider))
	}

	missing("EMAIL_FROM", c.EmailFrom)
	switch c.MailProvider {
	case MailZepto:
		missing("ZEPTO_API_URL", c.Zepto.APIURL)
		missing("ZEPTO_API_KEY", c.Zepto.APIKey)
	case MailSES:
		missing("AWS_REGION", c.AWSRegion)
	default:
		errs = append(errs, fmt.Errorf("unknown EMAIL_PROVIDER %q", c.MailProvider))
	}

	return errors.Join(errs...)
}

// NotifyRecipient returns the first configured operator email, or "".
func (c *Config) NotifyRecipient() string {
	for _, addr := range c.NotifyRecipients {
		if addr = strings.TrimSpace(addr); addr != "" {
			return addr
		}
	}
	return ""
}

func (c *Config) IsProd() bool {
	return c.Env == "prod"
}
