// Package config loads and validates application configuration from viper's
// merged sources (config file, environment, flags).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/ktagirov/nastroenie/internal/common"
	"github.com/ktagirov/nastroenie/internal/sentiment"
)

// Telegram holds the transport credentials and target.
type Telegram struct {
	Token  string
	ChatID int64
}

// Classifier selects and configures the sentiment model backend.
type Classifier struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// Sentiment holds the outlier thresholds on the 1-10 scale.
type Sentiment struct {
	ThresholdLow  float64
	ThresholdHigh float64
}

// Storage locates the JSON store directory.
type Storage struct {
	LogDir string
}

// Report configures daily report generation.
type Report struct {
	DailyTime string
}

// Config is the full application configuration.
type Config struct {
	Telegram   Telegram
	Classifier Classifier
	Sentiment  Sentiment
	Storage    Storage
	Report     Report
}

// SetDefaults registers every default value with viper. Called once from the
// root command before any configuration is read.
func SetDefaults() {
	viper.SetDefault("classifier.provider", "huggingface")
	viper.SetDefault("classifier.model", "cardiffnlp/twitter-xlm-roberta-base-sentiment-multilingual")
	viper.SetDefault("sentiment.threshold_low", sentiment.DefaultThresholdLow)
	viper.SetDefault("sentiment.threshold_high", sentiment.DefaultThresholdHigh)
	viper.SetDefault("storage.log_dir", "logs")
	viper.SetDefault("report.daily_time", "23:59")
}

// Load reads the configuration out of viper and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		Telegram: Telegram{
			Token:  viper.GetString("telegram.token"),
			ChatID: viper.GetInt64("telegram.chat_id"),
		},
		Classifier: Classifier{
			Provider: viper.GetString("classifier.provider"),
			Model:    viper.GetString("classifier.model"),
			APIKey:   viper.GetString("classifier.api_key"),
			BaseURL:  viper.GetString("classifier.base_url"),
		},
		Sentiment: Sentiment{
			ThresholdLow:  viper.GetFloat64("sentiment.threshold_low"),
			ThresholdHigh: viper.GetFloat64("sentiment.threshold_high"),
		},
		Storage: Storage{
			LogDir: ExpandPath(viper.GetString("storage.log_dir")),
		},
		Report: Report{
			DailyTime: viper.GetString("report.daily_time"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks required fields and value formats. Inverted outlier
// thresholds are legal and deliberately not rejected.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("%w: telegram.token (or NASTROENIE_TELEGRAM_TOKEN)", common.ErrMissingConfig)
	}
	if c.Storage.LogDir == "" {
		return fmt.Errorf("%w: storage.log_dir must not be empty", common.ErrInvalidConfig)
	}
	if _, err := time.Parse("15:04", c.Report.DailyTime); err != nil {
		return fmt.Errorf("%w: report.daily_time must be HH:MM, got %q", common.ErrInvalidConfig, c.Report.DailyTime)
	}
	return nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}
