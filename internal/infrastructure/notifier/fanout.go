package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/logx"
)

type Sink interface {
	Notify(ctx context.Context, n entity.Notification) error
}

// Fanout пишет уведомление в хранилище и, если настроен чат, ставит его в
// очередь бота. Полная очередь не блокирует переход лота.
type Fanout struct {
	store  Sink
	alerts chan entity.Notification
}

func NewFanout(store Sink) *Fanout {
	return &Fanout{store: store}
}

// WithAlerts включает очередь для бота; её читает TelegramBot.Run.
func (f *Fanout) WithAlerts(size int) *Fanout {
	f.alerts = make(chan entity.Notification, size)
	return f
}

func (f *Fanout) Alerts() <-chan entity.Notification {
	return f.alerts
}

func (f *Fanout) Notify(ctx context.Context, n entity.Notification) error {
	if err := f.store.Notify(ctx, n); err != nil {
		return fmt.Errorf("store.Notify: %w", err)
	}

	if f.alerts == nil {
		return nil
	}

	select {
	case f.alerts <- n:
	default:
		logger(ctx).Warn("alert queue is full, dropping notification",
			slog.String(logx.FieldLotID, n.LotID.String()),
			slog.String("kind", n.Kind),
		)
	}

	return nil
}

// Close закрывает очередь; Run бота после этого завершается.
func (f *Fanout) Close() {
	if f.alerts != nil {
		close(f.alerts)
	}
}
