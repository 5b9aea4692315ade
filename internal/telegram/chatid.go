package telegram

import (
	"context"
	"fmt"
	"io"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ChatIDFinder streams chat metadata for every inbound update, to help
// discover the identifier of the chat to monitor. It shares nothing with the
// scoring core.
type ChatIDFinder struct {
	api *tgbotapi.BotAPI
	out io.Writer
}

// NewChatIDFinder authenticates against the Bot API and returns the finder.
func NewChatIDFinder(token string, out io.Writer) (*ChatIDFinder, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate bot: %w", err)
	}

	return &ChatIDFinder{api: api, out: out}, nil
}

// Run prints metadata for every inbound message until ctx is canceled.
func (f *ChatIDFinder) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	updates := f.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			f.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			fmt.Fprint(f.out, describeMessage(update.Message))
		}
	}
}

// describeMessage renders one message's chat metadata for the console.
func describeMessage(m *tgbotapi.Message) string {
	var b strings.Builder

	title := m.Chat.Title
	if title == "" {
		title = "N/A"
	}
	from := "Unknown"
	if m.From != nil {
		from = m.From.FirstName
	}
	text := m.Text
	if text == "" {
		text = "<no text>"
	} else if runes := []rune(text); len(runes) > 50 {
		text = string(runes[:50]) + "..."
	}

	fmt.Fprintf(&b, "New message received\n")
	fmt.Fprintf(&b, "  Chat ID:    %d\n", m.Chat.ID)
	fmt.Fprintf(&b, "  Chat Type:  %s\n", m.Chat.Type)
	fmt.Fprintf(&b, "  Chat Title: %s\n", title)
	fmt.Fprintf(&b, "  From:       %s\n", from)
	fmt.Fprintf(&b, "  Message:    %s\n", text)

	if m.Chat.Type == "group" || m.Chat.Type == "supergroup" {
		fmt.Fprintf(&b, "  To monitor this chat, set telegram.chat_id = %d\n", m.Chat.ID)
	}
	b.WriteString(strings.Repeat("-", 50) + "\n")

	return b.String()
}
