package config

import (
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	ServerAddr string `env:"SERVER_ADDR" envDefault:":5001"`

	MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017/mansionmarket"`
	MongoDB  string `env:"MONGO_DB"`

	FrontendOrigins []string `env:"FRONTEND_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	JWTSecret        string `env:"JWT_SECRET"`
	AccessTTLMinutes int    `env:"ACCESS_TTL_MINUTES" envDefault:"60"`

	UploadsDir string `env:"UPLOADS_DIR" envDefault:"Uploads"`

	RedisURL      string `env:"REDIS_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	CacheTTLSeconds    int `env:"CACHE_TTL_SECONDS" envDefault:"60"`
	RateLimitForms     int `env:"RATE_LIMIT_FORMS" envDefault:"10"`
	RateLimitWindowSec int `env:"RATE_LIMIT_WINDOW_SEC" envDefault:"60"`

	BrevoAPIKey        string `env:"BREVO_API_KEY"`
	BrevoSenderEmail   string `env:"BREVO_SENDER_EMAIL"`
	BrevoSenderName    string `env:"BREVO_SENDER_NAME"`
	BrevoSandbox       bool   `env:"BREVO_SANDBOX" envDefault:"false"`
	InquiryNotifyEmail string `env:"INQUIRY_NOTIFY_EMAIL"`

	SuperadminEmail    string `env:"SUPERADMIN_EMAIL"`
	SuperadminPassword string `env:"SUPERADMIN_PASSWORD"`
}

func Load() (*Config, error) {
	loadDotEnv(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = mongoDBFromURI(cfg.MongoURI)
	}
	if cfg.MongoDB == "" {
		cfg.MongoDB = "mansionmarket"
	}

	return cfg, nil
}

func mongoDBFromURI(uri string) string {
	idx := strings.Index(uri, "://")
	if idx < 0 {
		return ""
	}
	rest := uri[idx+3:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	db := rest[slash+1:]
	if q := strings.Index(db, "?"); q >= 0 {
		db = db[:q]
	}
	// URIs sometimes carry extra path segments; only the first one is the db name.
	if extra := strings.Index(db, "/"); extra >= 0 {
		db = db[:extra]
	}
	return strings.Trim(db, "/")
}

func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
