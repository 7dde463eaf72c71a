package handler

import (
	"context"

	"lotmarket/internal/domain/entity"
)

type Scheduler interface {
	ScheduleAll(ctx context.Context) int
	IsRunning() bool
}

type MailboxLister interface {
	ListConnected(ctx context.Context) ([]entity.MailboxCredential, error)
}

type Handler struct {
	scheduler Scheduler
	mailboxes MailboxLister
}

func New(scheduler Scheduler, mailboxes MailboxLister) *Handler {
	return &Handler{
		scheduler: scheduler,
		mailboxes: mailboxes,
	}
}
