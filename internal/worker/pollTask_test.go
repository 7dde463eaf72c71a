package worker

import (
	"context"
	"errors"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/service/ingest"
	"lotmarket/pkg/errcodes"
)

func TestNewPollTask(t *testing.T) {
	rq := require.New(t)

	tenantID := uuid.New()

	task, err := NewPollTask(tenantID, "user-1")
	rq.NoError(err)
	rq.Equal(TypeEmailPoll, task.Type())

	var p pollPayload
	rq.NoError(json.Unmarshal(task.Payload(), &p))
	rq.Equal(tenantID, p.TenantID)
	rq.Equal("user-1", p.UserID)
}

func TestPollTaskHandler(t *testing.T) {
	testCases := []struct {
		name      string
		pollErr   error
		wantErr   bool
		skipRetry bool
	}{
		{name: "ok"},
		{
			name:    "lock held",
			pollErr: failure.NewConflictError("poll in progress", failure.WithCode(errcodes.PollInProgress)),
		},
		{
			name:      "mailbox not connected",
			pollErr:   failure.NewNotFoundError("no refresh token", failure.WithCode(errcodes.CredentialMissing)),
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:      "mailbox not connected, domain error",
			pollErr:   domain.NewError(errcodes.CredentialMissing, "token revoked"),
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:    "transient",
			pollErr: errors.New("connection reset"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			tenantID := uuid.New()
			poller := &PollerMock{
				PollFunc: func(_ context.Context, gotTenant uuid.UUID, gotUser string) (ingest.PollResult, error) {
					rq.Equal(tenantID, gotTenant)
					rq.Equal("user-1", gotUser)
					return ingest.PollResult{Processed: 3}, tc.pollErr
				},
			}

			task, err := NewPollTask(tenantID, "user-1")
			rq.NoError(err)

			err = NewPollTaskHandler(poller).Handle(context.Background(), task)
			if !tc.wantErr {
				rq.NoError(err)
			} else {
				rq.Error(err)
				rq.Equal(tc.skipRetry, errors.Is(err, asynq.SkipRetry))
			}
			rq.Len(poller.PollCalls(), 1)
		})
	}
}

func TestPollTaskHandlerBadPayload(t *testing.T) {
	rq := require.New(t)

	poller := &PollerMock{}
	err := NewPollTaskHandler(poller).Handle(context.Background(), asynq.NewTask(TypeEmailPoll, []byte("{")))

	rq.ErrorIs(err, asynq.SkipRetry)
	rq.Empty(poller.PollCalls())
}
