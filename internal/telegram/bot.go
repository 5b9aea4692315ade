// Package telegram implements the silent polling transport. The bot only
// consumes updates; there is no outbound send capability in this package at
// all.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ktagirov/nastroenie/internal/model"
)

// pollTimeout is the long-poll timeout in seconds for GetUpdates.
const pollTimeout = 30

// Config holds the transport configuration.
type Config struct {
	// Token is the bot credential.
	Token string
	// ChatID is the monitored chat. Zero monitors every chat the bot can
	// see and logs a setup hint with each chat's identifier.
	ChatID int64
}

// Handler consumes one inbound message. Handling one message must never
// block on another in flight.
type Handler interface {
	ProcessMessage(ctx context.Context, msg model.IncomingMessage)
}

// Bot polls Telegram for updates and feeds accepted messages to the handler.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler Handler
	logger  *slog.Logger
	chatID  int64
}

// NewBot authenticates against the Bot API and returns the transport.
func NewBot(cfg Config, handler Handler, logger *slog.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate bot: %w", err)
	}

	logger.Info("authenticated to Telegram", "bot", api.Self.UserName)

	return &Bot{
		api:     api,
		chatID:  cfg.ChatID,
		handler: handler,
		logger:  logger,
	}, nil
}

// Run polls for updates until ctx is canceled. Each accepted message is
// handled in its own goroutine so one slow inference never delays the next
// update; Run waits for in-flight handlers before returning.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := b.api.GetUpdatesChan(u)
	b.logger.Info("polling for messages", "chat_id", b.chatID)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			msg, ok := b.accept(update)
			if !ok {
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				b.handler.ProcessMessage(ctx, msg)
			}()
		}
	}
}

// accept filters one update down to a monitorable message: it must carry
// text, must not be a command, and must originate from the monitored chat
// when one is configured.
func (b *Bot) accept(update tgbotapi.Update) (model.IncomingMessage, bool) {
	m := update.Message
	if m == nil || m.Text == "" {
		return model.IncomingMessage{}, false
	}
	if m.IsCommand() {
		return model.IncomingMessage{}, false
	}

	if b.chatID != 0 && m.Chat.ID != b.chatID {
		return model.IncomingMessage{}, false
	}

	if b.chatID == 0 {
		b.logger.Info("message from unconfigured chat; set telegram.chat_id to monitor it",
			"chat_id", m.Chat.ID)
	}

	msg := model.IncomingMessage{
		MessageID: m.MessageID,
		ChatID:    m.Chat.ID,
		Text:      m.Text,
		Timestamp: time.Unix(int64(m.Date), 0),
	}
	if m.From != nil {
		msg.UserID = m.From.ID
		msg.Username = m.From.UserName
	}

	return msg, true
}
