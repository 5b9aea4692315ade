package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ktagirov/nastroenie/internal/common"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	viper.Set("telegram.token", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Zero(t, cfg.Telegram.ChatID)
	assert.Equal(t, "huggingface", cfg.Classifier.Provider)
	assert.Equal(t, 3.0, cfg.Sentiment.ThresholdLow)
	assert.Equal(t, 7.5, cfg.Sentiment.ThresholdHigh)
	assert.Equal(t, "logs", cfg.Storage.LogDir)
	assert.Equal(t, "23:59", cfg.Report.DailyTime)
}

func TestLoadRequiresToken(t *testing.T) {
	resetViper(t)

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMissingConfig))
}

func TestLoadRejectsMalformedReportTime(t *testing.T) {
	resetViper(t)
	viper.Set("telegram.token", "123:abc")
	viper.Set("report.daily_time", "quarter past nine")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidConfig))
}

func TestLoadAcceptsInvertedThresholds(t *testing.T) {
	resetViper(t)
	viper.Set("telegram.token", "123:abc")
	viper.Set("sentiment.threshold_low", 8.0)
	viper.Set("sentiment.threshold_high", 2.0)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Sentiment.ThresholdLow)
	assert.Equal(t, 2.0, cfg.Sentiment.ThresholdHigh)
}

func TestLoadOverrides(t *testing.T) {
	resetViper(t)
	viper.Set("telegram.token", "123:abc")
	viper.Set("telegram.chat_id", int64(-100456))
	viper.Set("classifier.provider", "stub")
	viper.Set("classifier.model", "some/other-model")
	viper.Set("storage.log_dir", "data/sentiment")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(-100456), cfg.Telegram.ChatID)
	assert.Equal(t, "stub", cfg.Classifier.Provider)
	assert.Equal(t, "some/other-model", cfg.Classifier.Model)
	assert.Equal(t, filepath.Join("data", "sentiment"), filepath.Clean(cfg.Storage.LogDir))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("NASTROENIE_TEST_DIR", "/var/log")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain", "logs", "logs"},
		{"env var", "$NASTROENIE_TEST_DIR/sentiment", "/var/log/sentiment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.input))
		})
	}
}

func TestExpandPathTilde(t *testing.T) {
	got := ExpandPath("~/logs")
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, "logs", filepath.Base(got))
}
