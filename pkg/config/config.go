package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Database DatabaseConfig `json:"database"`
	Telegram TelegramConfig `json:"telegram"`
	Logging  LoggingConfig  `json:"logging"`
}

type DatabaseConfig struct {
	// URL takes precedence over the individual fields when set.
	URL      string `json:"url" env:"DATABASE_URL"`
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
}

type TelegramConfig struct {
	Token string `json:"token" env:"TELEGRAM_BOT_TOKEN"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	GormLevel string `json:"gorm_level"`
}

var AppConfig Config

// LoadConfig reads the JSON config file and applies environment overrides.
// A missing file is not an error as long as the environment supplies the
// required values.
func LoadConfig(filename string) error {
	AppConfig = Config{}

	file, err := os.Open(filename)
	if err == nil {
		defer file.Close()
		if decodeErr := json.NewDecoder(file).Decode(&AppConfig); decodeErr != nil {
			return fmt.Errorf("failed to decode config file %s: %w", filename, decodeErr)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to open config file %s: %w", filename, err)
	}

	if err := env.Parse(&AppConfig); err != nil {
		return fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	return validate(AppConfig)
}

func validate(cfg Config) error {
	if cfg.Telegram.Token == "" {
		return errors.New("telegram token is not configured")
	}
	if cfg.Database.URL == "" && (cfg.Database.Host == "" || cfg.Database.DBName == "") {
		return errors.New("database is not configured: set database.url or host and dbname")
	}
	return nil
}
