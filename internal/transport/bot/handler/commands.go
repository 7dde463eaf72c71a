package handler

import (
	"context"
	"fmt"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
)

const startMessage = `<b>lotmarket</b>

/status — планировщик и подключённые ящики
/poll — поставить опрос всех ящиков в очередь`

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, startMessage)
}

func (h *Handler) OnStatus(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.status(ctx))
}

func (h *Handler) OnPoll(ctx *th.Context, msg telego.Message) error {
	return h.sendHTML(ctx, msg.Chat.ID, h.poll(ctx))
}

func (h *Handler) status(ctx context.Context) string {
	scheduler := "🔴 остановлен"
	if h.scheduler.IsRunning() {
		scheduler = "🟢 работает"
	}

	mailboxes := "недоступно"
	if creds, err := h.mailboxes.ListConnected(ctx); err == nil {
		mailboxes = fmt.Sprintf("%d", len(creds))
	}

	return fmt.Sprintf("📊 <b>Статус</b>\n\n⏱ <b>Планировщик:</b> %s\n📬 <b>Ящиков:</b> %s", scheduler, mailboxes)
}

func (h *Handler) poll(ctx context.Context) string {
	n := h.scheduler.ScheduleAll(ctx)
	if n == 0 {
		return "Новых задач нет: ящиков нет или опрос уже в очереди"
	}

	return fmt.Sprintf("✅ В очереди опросов: <b>%d</b>", n)
}

func (h *Handler) sendHTML(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, tu.Message(tu.ID(chatID), text).WithParseMode(telego.ModeHTML))
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
