package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Geocoder GeocoderConfig
	Site     SiteConfig
	Admin    AdminConfig
	Intake   IntakeConfig
	Email    EmailConfig
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	AdminEmail   string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
}

type GeocoderConfig struct {
	BaseURL        string
	ReverseTimeout time.Duration
}

type SiteConfig struct {
	Name    string
	BaseURL string
}

type AdminConfig struct {
	Token string
}

type IntakeConfig struct {
	CooldownWindow time.Duration
	CooldownMax    int
}

func Load() *Config {
	godotenv.Load() // .env is optional outside local dev

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        getEnv("GEOCODER_BASE_URL", "https://api-adresse.data.gouv.fr"),
			ReverseTimeout: getDuration("GEOCODER_REVERSE_TIMEOUT", 12*time.Second),
		},
		Site: SiteConfig{
			Name:    getEnv("SITE_NAME", "PremiumArtisan"),
			BaseURL: getEnv("SITE_BASE_URL", "http://localhost:3000"),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
		Intake: IntakeConfig{
			CooldownWindow: getDuration("INTAKE_COOLDOWN_WINDOW", time.Minute),
			CooldownMax:    getInt("INTAKE_COOLDOWN_MAX", 3),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "PremiumArtisan <leads@premiumartisan.fr>"),
			AdminEmail:   getEnv("ADMIN_EMAIL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
