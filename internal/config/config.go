package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Log        LogConfig
	Mail       MailConfig
	Payment    PaymentConfig
	Scheduling SchedulingConfig
}

type ServerConfig struct {
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

type MailConfig struct {
	Endpoint string
	APIKey   string
	From     string
}

type PaymentConfig struct {
	WebhookSecret string
}

type SchedulingConfig struct {
	OpenHour  int
	CloseHour int
	LeadDays  int
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 3306)
	viper.SetDefault("DB_USER", "tavola")
	viper.SetDefault("DB_PASSWORD", "secret")
	viper.SetDefault("DB_NAME", "tavola")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAIL_ENDPOINT", "https://api.mail.example.com/v1/send")
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM", "orders@tavola.example.com")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	viper.SetDefault("SCHEDULE_OPEN_HOUR", 11)
	viper.SetDefault("SCHEDULE_CLOSE_HOUR", 21)
	viper.SetDefault("SCHEDULE_LEAD_DAYS", 7)

	connMaxLifetime, err := time.ParseDuration(viper.GetString("DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			Name:            viper.GetString("DB_NAME"),
			MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Mail: MailConfig{
			Endpoint: viper.GetString("MAIL_ENDPOINT"),
			APIKey:   viper.GetString("MAIL_API_KEY"),
			From:     viper.GetString("MAIL_FROM"),
		},
		Payment: PaymentConfig{
			WebhookSecret: viper.GetString("PAYMENT_WEBHOOK_SECRET"),
		},
		Scheduling: SchedulingConfig{
			OpenHour:  viper.GetInt("SCHEDULE_OPEN_HOUR"),
			CloseHour: viper.GetInt("SCHEDULE_CLOSE_HOUR"),
			LeadDays:  viper.GetInt("SCHEDULE_LEAD_DAYS"),
		},
	}

	return cfg, nil
}
