package config

import (
	"fmt"
	"log"
	"time"

	"garagat/models"
	"garagat/services/scheduling"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB    int    `mapstructure:"REDIS_SESSION_DB"`
	RedisTaskDB       int    `mapstructure:"REDIS_TASK_DB"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`
	PushWorkers       int    `mapstructure:"PUSH_WORKERS"`

	// Payments and push.
	StripeKey               string `mapstructure:"STRIPE_KEY"`
	DefaultPaymentMethod    string `mapstructure:"DEFAULT_PAYMENT_METHOD"`
	FirebaseCredentialsPath string `mapstructure:"FIREBASE_CREDENTIALS_PATH"`

	// Scheduling.
	Timezone            string `mapstructure:"TIMEZONE"`
	DefaultOpenHour     int    `mapstructure:"DEFAULT_OPEN_HOUR"`
	DefaultCloseHour    int    `mapstructure:"DEFAULT_CLOSE_HOUR"`
	SlotIntervalMinutes int    `mapstructure:"SLOT_INTERVAL_MINUTES"`
	SameDayLeadMinutes  int    `mapstructure:"SAME_DAY_LEAD_MINUTES"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "garagat")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_TASK_DB", 1)
	v.SetDefault("SESSION_TTL_MINUTES", 30)
	v.SetDefault("PUSH_WORKERS", 5)
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("DEFAULT_PAYMENT_METHOD", models.PaymentMethodCard)
	v.SetDefault("FIREBASE_CREDENTIALS_PATH", "")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("DEFAULT_OPEN_HOUR", 8)
	v.SetDefault("DEFAULT_CLOSE_HOUR", 22)
	v.SetDefault("SLOT_INTERVAL_MINUTES", 30)
	v.SetDefault("SAME_DAY_LEAD_MINUTES", 60)
}

// Load reads config.yaml from "." or "./config" when present, then the environment.
func Load(v *viper.Viper) (Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.SessionTTLMinutes <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_MINUTES must be positive, got %d", cfg.SessionTTLMinutes)
	}
	if _, err := cfg.SchedulingPolicy(); err != nil {
		return Config{}, err
	}
	if _, err := cfg.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig() {
	cfg, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// SchedulingPolicy builds the platform slot policy; providers override only the hours.
func (c Config) SchedulingPolicy() (scheduling.Policy, error) {
	return scheduling.NewPolicy(
		models.OperatingHours{StartHour: c.DefaultOpenHour, EndHour: c.DefaultCloseHour},
		time.Duration(c.SlotIntervalMinutes)*time.Minute,
		time.Duration(c.SameDayLeadMinutes)*time.Minute,
	)
}

// Location is the time zone booking dates are interpreted in.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
