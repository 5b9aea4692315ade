package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/ktagirov/nastroenie/internal/classifier"
	"github.com/ktagirov/nastroenie/internal/common"
	"github.com/ktagirov/nastroenie/internal/config"
	"github.com/ktagirov/nastroenie/internal/engine"
	"github.com/ktagirov/nastroenie/internal/sentiment"
	"github.com/ktagirov/nastroenie/internal/storage"
	"github.com/ktagirov/nastroenie/internal/telegram"
)

func monitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Run the silent sentiment monitoring bot",
		Long: `Start polling the configured chat, score every message, persist the
records, and generate daily reports on schedule. The bot never replies.`,
		RunE: runMonitor,
	}

	cmd.Flags().String("log-dir", "", "directory for sentiment data files")
	cmd.Flags().Float64("threshold-low", 0, "low outlier threshold (scores at or below are outliers)")
	cmd.Flags().Float64("threshold-high", 0, "high outlier threshold (scores at or above are outliers)")
	cmd.Flags().String("report-time", "", "daily report time (HH:MM)")

	_ = viper.BindPFlag("storage.log_dir", cmd.Flags().Lookup("log-dir"))
	_ = viper.BindPFlag("sentiment.threshold_low", cmd.Flags().Lookup("threshold-low"))
	_ = viper.BindPFlag("sentiment.threshold_high", cmd.Flags().Lookup("threshold-high"))
	_ = viper.BindPFlag("report.daily_time", cmd.Flags().Lookup("report-time"))

	return cmd
}

func runMonitor(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := classifier.NewClient(classifier.Config{
		Provider: cfg.Classifier.Provider,
		Model:    cfg.Classifier.Model,
		APIKey:   cfg.Classifier.APIKey,
		BaseURL:  cfg.Classifier.BaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create classifier: %w", err)
	}

	analyzer := classifier.NewAnalyzer(client, sentiment.NewNormalizer(), slog.Default())

	slog.Info("loading sentiment model", "provider", cfg.Classifier.Provider, "model", cfg.Classifier.Model)
	if err := analyzer.Warmup(ctx); err != nil {
		return common.NewUserError("sentiment model failed to load", err)
	}

	store, err := storage.NewJSONStore(cfg.Storage.LogDir, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	eng := engine.New(analyzer, store, engine.Config{
		ThresholdLow:  cfg.Sentiment.ThresholdLow,
		ThresholdHigh: cfg.Sentiment.ThresholdHigh,
	}, slog.Default())
	defer func() {
		if closeErr := eng.Close(); closeErr != nil {
			slog.Error("failed to flush session on shutdown", "error", closeErr)
		}
	}()

	scheduler, err := engine.NewScheduler(eng, cfg.Report.DailyTime, slog.Default())
	if err != nil {
		return err
	}

	bot, err := telegram.NewBot(telegram.Config{
		Token:  cfg.Telegram.Token,
		ChatID: cfg.Telegram.ChatID,
	}, eng, slog.Default())
	if err != nil {
		return common.NewUserError("failed to connect to Telegram", err)
	}

	printBanner(cfg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(gctx) })
	g.Go(func() error { return scheduler.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	slog.Info("monitor stopped")
	return nil
}

func printBanner(cfg *config.Config) {
	target := "all chats"
	if cfg.Telegram.ChatID != 0 {
		target = fmt.Sprintf("chat %d", cfg.Telegram.ChatID)
	}

	fmt.Println("============================================================")
	fmt.Println("SENTIMENT MONITOR STARTED")
	fmt.Println("============================================================")
	fmt.Printf("Model:              %s (%s)\n", cfg.Classifier.Model, cfg.Classifier.Provider)
	fmt.Printf("Monitoring:         %s\n", target)
	fmt.Printf("Data directory:     %s\n", cfg.Storage.LogDir)
	fmt.Printf("Daily report:       %s\n", cfg.Report.DailyTime)
	fmt.Printf("Outlier thresholds: <=%.1f / >=%.1f\n", cfg.Sentiment.ThresholdLow, cfg.Sentiment.ThresholdHigh)
	fmt.Println("Silent mode: the bot does not respond to messages")

	if cfg.Telegram.ChatID == 0 {
		fmt.Println()
		fmt.Println("TIP: run 'nastroenie chat-id' to discover the chat to monitor,")
		fmt.Println("     then set telegram.chat_id in your config")
	}
	fmt.Println("============================================================")
}
