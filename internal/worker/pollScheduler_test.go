package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"lotmarket/internal/domain/entity"
)

func TestScheduleAll(t *testing.T) {
	rq := require.New(t)

	creds := []entity.MailboxCredential{
		{TenantID: uuid.New(), UserID: "ok"},
		{TenantID: uuid.New(), UserID: "dup"},
		{TenantID: uuid.New(), UserID: "broken"},
	}

	queue := &TaskEnqueuerMock{
		EnqueueContextFunc: func(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
			var p pollPayload
			rq.NoError(json.Unmarshal(task.Payload(), &p))

			switch p.UserID {
			case "dup":
				return nil, asynq.ErrDuplicateTask
			case "broken":
				return nil, errors.New("redis: connection refused")
			default:
				return &asynq.TaskInfo{ID: "t1"}, nil
			}
		},
	}

	s := NewPollScheduler(&MailboxListerMock{
		ListConnectedFunc: func(context.Context) ([]entity.MailboxCredential, error) { return creds, nil },
	}, queue, time.Minute).WithQueue("mail")

	rq.Equal(2, s.ScheduleAll(context.Background()))

	calls := queue.EnqueueContextCalls()
	rq.Len(calls, 3)
	// очередь, уникальность, ретраи, таймаут
	rq.Len(calls[0].Opts, 4)
	rq.Equal(TypeEmailPoll, calls[0].Task.Type())
}

func TestScheduleAllListFailure(t *testing.T) {
	rq := require.New(t)

	queue := &TaskEnqueuerMock{}
	s := NewPollScheduler(&MailboxListerMock{
		ListConnectedFunc: func(context.Context) ([]entity.MailboxCredential, error) {
			return nil, errors.New("db down")
		},
	}, queue, time.Minute)

	rq.Zero(s.ScheduleAll(context.Background()))
	rq.Empty(queue.EnqueueContextCalls())
}

func TestPollSchedulerRun(t *testing.T) {
	rq := require.New(t)

	s := NewPollScheduler(&MailboxListerMock{}, &TaskEnqueuerMock{}, 0)
	rq.Error(s.Run(context.Background()))

	scheduled := make(chan struct{}, 1)
	s = NewPollScheduler(&MailboxListerMock{
		ListConnectedFunc: func(context.Context) ([]entity.MailboxCredential, error) {
			select {
			case scheduled <- struct{}{}:
			default:
			}
			return nil, nil
		},
	}, &TaskEnqueuerMock{}, time.Hour)

	rq.NoError(s.Start(context.Background()))
	rq.Error(s.Start(context.Background()))

	select {
	case <-scheduled:
	case <-time.After(time.Second):
		t.Fatal("first cycle did not run")
	}

	rq.True(s.IsRunning())
	s.Stop()
	rq.False(s.IsRunning())
}
