package notifier

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// CommandHandler is called when a user command is received. An empty reply sends nothing.
type CommandHandler func(ctx context.Context, command string) string

// StartPolling long-polls for chat commands and replies in the originating chat.
// Blocks until ctx is cancelled.
func (t *TelegramNotifier) StartPolling(ctx context.Context, handler CommandHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := t.api.GetUpdatesChan(u)
	t.log.Info("telegram polling started")

	for {
		select {
		case <-ctx.Done():
			t.api.StopReceivingUpdates()
			t.log.Info("telegram polling stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go t.reply(ctx, update.Message, handler)
		}
	}
}

func (t *TelegramNotifier) reply(ctx context.Context, msg *tgbotapi.Message, handler CommandHandler) {
	text := strings.TrimSpace(msg.Text)
	t.log.Debugw("received command", "chat_id", msg.Chat.ID, "text", text)

	out := handler(ctx, text)
	if out == "" {
		return
	}
	if err := t.SendTo(ctx, msg.Chat.ID, out); err != nil {
		t.log.Errorw("send reply", "chat_id", msg.Chat.ID, "error", err)
	}
}
