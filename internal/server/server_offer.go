package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/service/award"
	"lotmarket/internal/domain/service/offer"
	"lotmarket/pkg/httpx/reply"
	"lotmarket/pkg/httpx/req"
	"lotmarket/pkg/rest"
)

//go:generate moq -rm -out server_mock.gen.go . offerService resultsService lotService pollService

type offerService interface {
	Submit(ctx context.Context, tenantID uuid.UUID, token string, sub offer.Submission) (*entity.Offer, error)
}

type resultsService interface {
	InviteResults(ctx context.Context, tenantID uuid.UUID, token string) (award.InviteResults, error)
}

type OfferServer struct {
	offerService   offerService
	resultsService resultsService
}

func NewOfferServer(offerService offerService, resultsService resultsService) OfferServer {
	return OfferServer{
		offerService:   offerService,
		resultsService: resultsService,
	}
}

func (s OfferServer) postV1InviteOffers(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	var request rest.OfferRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	created, err := s.offerService.Submit(ctx, tenant, r.PathValue("token"), newDomainSubmission(request))
	if err != nil {
		return fmt.Errorf("offerService.Submit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTOffer(created))

	return nil
}

func (s OfferServer) getV1InviteResults(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	res, err := s.resultsService.InviteResults(ctx, tenant, r.PathValue("token"))
	if err != nil {
		return fmt.Errorf("resultsService.InviteResults: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTInviteResults(res))

	return nil
}
