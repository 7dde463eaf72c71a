package notifier

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/contextx"
	"lotmarket/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type messageSender interface {
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

// TelegramBot дублирует уведомления по лотам в операторский чат.
type TelegramBot struct {
	bot    messageSender
	chatID int64
}

func NewTelegramBot(token string, chatID int64) (*TelegramBot, error) {
	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &TelegramBot{
		bot:    bot,
		chatID: chatID,
	}, nil
}

// Run отправляет уведомления из канала, пока он не закрыт.
func (b *TelegramBot) Run(ctx context.Context, notifications <-chan entity.Notification) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n, ok := <-notifications:
			if !ok {
				return nil
			}
			if err := b.Send(ctx, n); err != nil {
				logger(ctx).Error("failed to send notification",
					slog.String(logx.FieldLotID, n.LotID.String()),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) Send(ctx context.Context, n entity.Notification) error {
	text := fmt.Sprintf(
		"<b>%s</b>\n\n%s\n\n<code>lot %s</code>",
		html.EscapeString(n.Title),
		html.EscapeString(n.Body),
		n.LotID,
	)

	msg := tu.Message(
		tu.ID(b.chatID),
		text,
	).WithParseMode(telego.ModeHTML)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text)

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
