package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ktagirov/nastroenie/internal/common"
	"github.com/ktagirov/nastroenie/internal/telegram"
)

func chatIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat-id",
		Short: "Discover the ID of a chat to monitor",
		Long: `Print chat metadata for every message the bot receives. Add the bot to
the target chat, send a message there, and copy the printed chat ID into
your config. Press Ctrl+C to stop.`,
		RunE: runChatID,
	}
}

func runChatID(cmd *cobra.Command, _ []string) error {
	token := viper.GetString("telegram.token")
	if token == "" {
		return fmt.Errorf("%w: telegram.token (or NASTROENIE_TELEGRAM_TOKEN)", common.ErrMissingConfig)
	}

	finder, err := telegram.NewChatIDFinder(token, os.Stdout)
	if err != nil {
		return common.NewUserError("failed to connect to Telegram", err)
	}

	fmt.Println("Listening for messages... send one in the chat you want to monitor.")
	fmt.Println("Press Ctrl+C to stop.")
	fmt.Println()

	if err := finder.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
