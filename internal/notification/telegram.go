package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/fansel/domburg-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier delivers conflict alerts to the admin chats. NotifyConflict
// succeeds as soon as one chat accepts the message; only a total failure is
// reported back, so the caller can roll its notified marker back.
type TelegramNotifier struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
	logger  logger.Logger
}

func NewTelegramNotifier(token string, chatIDs []int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatIDs: chatIDs, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatIDs: chatIDs, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyConflict(ctx context.Context, c domain.Conflict) error {
	if n.bot == nil || len(n.chatIDs) == 0 {
		n.logger.Debug("conflict notification skipped (bot disabled)",
			logger.String("key", c.Key()),
		)
		return domain.ErrNoRecipients
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	text := fmt.Sprintf(
		"*Booking conflict (%s)*\n\n%s\n\nSeverity: %s",
		c.Type(), c.Description(), c.Severity(),
	)

	delivered := 0
	for _, chatID := range n.chatIDs {
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = "Markdown"

		if _, err := n.bot.Send(msg); err != nil {
			n.logger.Error("failed to send conflict notification",
				logger.Int64("chat_id", chatID),
				logger.String("error", err.Error()),
			)
			continue
		}
		delivered++
	}

	if delivered == 0 {
		return domain.ErrNoRecipients
	}

	return nil
}
