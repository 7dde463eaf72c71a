package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/pkg/contextx"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const TypeEmailPoll = "email:poll"

type pollPayload struct {
	TenantID uuid.UUID `json:"tenant_id"`
	UserID   string    `json:"user_id"`
}

func NewPollTask(tenantID uuid.UUID, userID string) (*asynq.Task, error) {
	payload, err := json.Marshal(pollPayload{TenantID: tenantID, UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeEmailPoll, payload), nil
}

//go:generate moq -rm -out worker_mock.gen.go . Poller MailboxLister TaskEnqueuer

type Poller interface {
	Poll(ctx context.Context, tenantID uuid.UUID, userID string) (ingest.PollResult, error)
}

// PollTaskHandler выполняет опрос ящика из очереди.
type PollTaskHandler struct {
	poller Poller
}

func NewPollTaskHandler(poller Poller) *PollTaskHandler {
	return &PollTaskHandler{poller: poller}
}

func (h *PollTaskHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var p pollPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("json.Unmarshal: %w: %w", err, asynq.SkipRetry)
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTenantID, p.TenantID.String()),
		slog.String(logx.FieldUserID, p.UserID),
	))

	res, err := h.poller.Poll(ctx, p.TenantID, p.UserID)

	switch {
	case err == nil:
		logger(ctx).Info("scheduled poll finished", slog.Int(logx.FieldProcessed, res.Processed))
		return nil

	case failure.IsConflictError(err):
		// другой экземпляр уже опрашивает этот ящик
		logger(ctx).Info("scheduled poll skipped, lock held")
		return nil

	case failure.Code(err) == errcodes.CredentialMissing, domain.HasCode(err, errcodes.CredentialMissing):
		logger(ctx).Warn("scheduled poll skipped, mailbox not connected", logx.Error(err))
		return fmt.Errorf("poller.Poll: %w: %w", err, asynq.SkipRetry)

	case errors.Is(err, context.Canceled):
		return fmt.Errorf("poller.Poll: %w", err)

	default:
		logger(ctx).Error("scheduled poll failed", logx.Error(err))
		return fmt.Errorf("poller.Poll: %w", err)
	}
}
