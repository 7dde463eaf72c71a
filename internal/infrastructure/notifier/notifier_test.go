package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/entity"
)

type sinkFunc func(context.Context, entity.Notification) error

func (f sinkFunc) Notify(ctx context.Context, n entity.Notification) error { return f(ctx, n) }

type recordingSender struct {
	sent []*telego.SendMessageParams
	err  error
}

func (s *recordingSender) SendMessage(_ context.Context, p *telego.SendMessageParams) (*telego.Message, error) {
	s.sent = append(s.sent, p)
	return &telego.Message{}, s.err
}

func TestFanout(t *testing.T) {
	rq := require.New(t)

	var stored []entity.Notification
	f := NewFanout(sinkFunc(func(_ context.Context, n entity.Notification) error {
		stored = append(stored, n)
		return nil
	})).WithAlerts(1)

	n := entity.Notification{LotID: uuid.New(), Kind: "lot_sold", Title: "Lot sold"}

	rq.NoError(f.Notify(context.Background(), n))
	// вторая не влезает в очередь, но в хранилище попадает
	rq.NoError(f.Notify(context.Background(), n))

	rq.Len(stored, 2)
	rq.Len(f.Alerts(), 1)

	f.Close()

	bot := &recordingSender{}
	rq.NoError((&TelegramBot{bot: bot, chatID: 42}).Run(context.Background(), f.Alerts()))
	rq.Len(bot.sent, 1)
}

func TestFanoutStoreFailure(t *testing.T) {
	rq := require.New(t)

	f := NewFanout(sinkFunc(func(context.Context, entity.Notification) error {
		return errors.New("db down")
	})).WithAlerts(4)

	rq.ErrorContains(f.Notify(context.Background(), entity.Notification{}), "db down")
	rq.Empty(f.Alerts())
}

func TestTelegramBotSend(t *testing.T) {
	rq := require.New(t)

	sender := &recordingSender{}
	bot := &TelegramBot{bot: sender, chatID: 1001}

	lotID := uuid.New()
	rq.NoError(bot.Send(context.Background(), entity.Notification{
		LotID: lotID,
		Title: "Offers <received>",
		Body:  "R&D lot",
	}))

	rq.Len(sender.sent, 1)
	rq.Equal(int64(1001), sender.sent[0].ChatID.ID)
	rq.Equal(telego.ModeHTML, sender.sent[0].ParseMode)
	rq.Contains(sender.sent[0].Text, "Offers &lt;received&gt;")
	rq.Contains(sender.sent[0].Text, "R&amp;D lot")
	rq.Contains(sender.sent[0].Text, lotID.String())

	sender.err = errors.New("chat not found")
	rq.ErrorContains(bot.SendText(context.Background(), "ping"), "chat not found")
}
