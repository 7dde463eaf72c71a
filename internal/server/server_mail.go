package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"lotmarket/internal/domain/service/ingest"
	"lotmarket/pkg/httpx/reply"
)

type pollService interface {
	Poll(ctx context.Context, tenantID uuid.UUID, userID string) (ingest.PollResult, error)
}

type MailServer struct {
	pollService pollService
}

func NewMailServer(pollService pollService) MailServer {
	return MailServer{
		pollService: pollService,
	}
}

// postV1EmailPoll опрашивает ящик текущего пользователя синхронно.
func (s MailServer) postV1EmailPoll(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	user, err := userID(r)
	if err != nil {
		return err
	}

	res, err := s.pollService.Poll(ctx, tenant, user)
	if err != nil {
		return fmt.Errorf("pollService.Poll: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPollResponse(res))

	return nil
}
