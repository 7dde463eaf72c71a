package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"lotmarket/internal/domain/entity"
	"lotmarket/pkg/logx"
)

type MailboxLister interface {
	ListConnected(ctx context.Context) ([]entity.MailboxCredential, error)
}

type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// PollScheduler ставит в очередь опрос каждого подключённого ящика. Задачи
// уникальны на интервал, поэтому медленный опрос не копится в очереди.
type PollScheduler struct {
	mailboxes MailboxLister
	queue     TaskEnqueuer

	interval  time.Duration
	queueName string

	// Управление циклом
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewPollScheduler(mailboxes MailboxLister, queue TaskEnqueuer, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		mailboxes: mailboxes,
		queue:     queue,
		interval:  interval,
		queueName: "default",
	}
}

func (w *PollScheduler) WithQueue(name string) *PollScheduler {
	if name != "" {
		w.queueName = name
	}
	return w
}

func (w *PollScheduler) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("scheduler is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("poll scheduler stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *PollScheduler) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *PollScheduler) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run планирует опросы сразу и затем раз в interval.
func (w *PollScheduler) Run(ctx context.Context) error {
	if w.interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", w.interval)
	}

	logger(ctx).Info("poll scheduler started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.ScheduleAll(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("poll scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ScheduleAll возвращает число поставленных задач. Ошибка одного ящика не
// мешает остальным.
func (w *PollScheduler) ScheduleAll(ctx context.Context) int {
	creds, err := w.mailboxes.ListConnected(ctx)
	if err != nil {
		logger(ctx).Error("failed to list mailboxes", logx.Error(err))
		return 0
	}

	var enqueued int

	for _, c := range creds {
		select {
		case <-ctx.Done():
			return enqueued
		default:
		}

		if err := w.scheduleOne(ctx, c); err != nil {
			logger(ctx).Error("poll enqueue failed",
				slog.String(logx.FieldTenantID, c.TenantID.String()),
				slog.String(logx.FieldUserID, c.UserID),
				logx.Error(err),
			)
			continue
		}

		enqueued++
	}

	if enqueued > 0 {
		logger(ctx).Info("poll cycle scheduled", slog.Int("enqueued", enqueued))
	}

	return enqueued
}

func (w *PollScheduler) scheduleOne(ctx context.Context, c entity.MailboxCredential) error {
	task, err := NewPollTask(c.TenantID, c.UserID)
	if err != nil {
		return err
	}

	_, err = w.queue.EnqueueContext(ctx, task,
		asynq.Queue(w.queueName),
		asynq.Unique(w.interval),
		asynq.MaxRetry(1),
		asynq.Timeout(w.interval),
	)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, asynq.ErrDuplicateTask):
		logger(ctx).Debug("poll already queued", slog.String(logx.FieldUserID, c.UserID))
		return nil
	default:
		return fmt.Errorf("queue.EnqueueContext: %w", err)
	}
}
