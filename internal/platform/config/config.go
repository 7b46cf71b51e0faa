package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	MongoURL     string
	MongoDBName  string
	Port         string
	IsProduction bool

	// Session config
	SessionCookieName string
	SessionTTL        time.Duration

	// Password reset config
	ResetTokenTTL time.Duration

	// Mail transport
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	MailTimeout  time.Duration

	// Reminder scheduler
	ReminderCronSpec   string
	ReminderStaleAfter time.Duration

	// External OAuth Providers
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
	FrontendBaseURL    string `mapstructure:"FRONTEND_BASE_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "health_portal")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SESSION_COOKIE_NAME", "hpsid")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("RESET_TOKEN_TTL", "30m")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USERNAME", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("MAIL_FROM", "no-reply@health-portal.local")
	viper.SetDefault("MAIL_TIMEOUT", "15s")
	viper.SetDefault("REMINDER_CRON_SPEC", "0 8 * * *")
	viper.SetDefault("REMINDER_STALE_AFTER", "168h")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")

	// Environment variables override defaults and .env values.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.MongoURL = viper.GetString("MONGO_URL")
	if cfg.MongoURL == "" {
		log.Println("Warning: MONGO_URL environment variable not set.")
	}
	cfg.MongoDBName = viper.GetString("MONGO_DB_NAME")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.SessionCookieName = viper.GetString("SESSION_COOKIE_NAME")
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = "hpsid"
		log.Printf("Warning: SESSION_COOKIE_NAME not set. Defaulting to %s.\n", cfg.SessionCookieName)
	}

	sessionTTLStr := viper.GetString("SESSION_TTL")
	sessionTTL, err := time.ParseDuration(sessionTTLStr)
	if err != nil {
		sessionTTL = 24 * time.Hour
		log.Printf("Warning: Invalid value for SESSION_TTL ('%s'). Defaulting to %s.\n", sessionTTLStr, sessionTTL.String())
	}
	cfg.SessionTTL = sessionTTL

	resetTTLStr := viper.GetString("RESET_TOKEN_TTL")
	resetTTL, err := time.ParseDuration(resetTTLStr)
	if err != nil {
		resetTTL = 30 * time.Minute
		log.Printf("Warning: Invalid value for RESET_TOKEN_TTL ('%s'). Defaulting to %s.\n", resetTTLStr, resetTTL.String())
	}
	cfg.ResetTokenTTL = resetTTL

	cfg.SMTPHost = viper.GetString("SMTP_HOST")
	cfg.SMTPPort = viper.GetInt("SMTP_PORT")
	cfg.SMTPUsername = viper.GetString("SMTP_USERNAME")
	cfg.SMTPPassword = viper.GetString("SMTP_PASSWORD")
	cfg.MailFrom = viper.GetString("MAIL_FROM")
	if cfg.SMTPHost == "" {
		log.Println("Warning: SMTP_HOST not set. Outbound mail will fail until configured.")
	}

	mailTimeoutStr := viper.GetString("MAIL_TIMEOUT")
	mailTimeout, err := time.ParseDuration(mailTimeoutStr)
	if err != nil {
		mailTimeout = 15 * time.Second
		log.Printf("Warning: Invalid value for MAIL_TIMEOUT ('%s'). Defaulting to %s.\n", mailTimeoutStr, mailTimeout.String())
	}
	cfg.MailTimeout = mailTimeout

	cfg.ReminderCronSpec = viper.GetString("REMINDER_CRON_SPEC")
	if cfg.ReminderCronSpec == "" {
		cfg.ReminderCronSpec = "0 8 * * *"
		log.Printf("Warning: REMINDER_CRON_SPEC not set. Defaulting to %q.\n", cfg.ReminderCronSpec)
	}

	staleAfterStr := viper.GetString("REMINDER_STALE_AFTER")
	staleAfter, err := time.ParseDuration(staleAfterStr)
	if err != nil {
		staleAfter = 7 * 24 * time.Hour
		log.Printf("Warning: Invalid value for REMINDER_STALE_AFTER ('%s'). Defaulting to %s.\n", staleAfterStr, staleAfter.String())
	}
	cfg.ReminderStaleAfter = staleAfter

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")

	// Log warnings for missing critical OAuth ENV variables
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google OAuth will not function.")
	}
	if cfg.GoogleClientSecret == "" {
		log.Println("Warning: GOOGLE_CLIENT_SECRET not set. Google OAuth will not function.")
	}
	if cfg.GoogleRedirectURL == "" {
		log.Println("Warning: GOOGLE_REDIRECT_URL not set. Google OAuth will not function.")
	}

	return cfg, nil
}
