package server

import (
	"context"
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/httpx/reply"
	"lotmarket/pkg/httpx/req"
	"lotmarket/pkg/rest"
)

type lotService interface {
	Transition(ctx context.Context, tenantID, lotID uuid.UUID, requested value.LotStatus) (*entity.Lot, error)
	RecordPurchaseOrder(ctx context.Context, po entity.PurchaseOrder) (*entity.Lot, error)
	SetExpectedPOCount(ctx context.Context, tenantID, lotID uuid.UUID, count int) (*entity.Lot, error)
}

type LotServer struct {
	lotService lotService
}

func NewLotServer(lotService lotService) LotServer {
	return LotServer{
		lotService: lotService,
	}
}

// postV1LotStatus обслуживает и /status, и /transition.
func (s LotServer) postV1LotStatus(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	id, err := lotID(r)
	if err != nil {
		return err
	}

	var request rest.LotStatusRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	status, err := value.ParseLotStatus(request.Status)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseLotStatus: %w", err),
			failure.WithCode(errcodes.InvalidLotStatus),
			failure.WithDescription("Unknown lot status"),
		)
	}

	lot, err := s.lotService.Transition(ctx, tenant, id, status)
	if err != nil {
		return fmt.Errorf("lotService.Transition: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLot(lot))

	return nil
}

func (s LotServer) postV1LotPurchaseOrders(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	id, err := lotID(r)
	if err != nil {
		return err
	}

	var request rest.PurchaseOrderRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	po := entity.PurchaseOrder{
		TenantID:    tenant,
		LotID:       id,
		DocumentURL: request.DocumentURL,
	}

	if request.BuyerID != nil {
		// формат уже проверен валидатором
		buyerID := uuid.MustParse(*request.BuyerID)
		po.BuyerID = &buyerID
	}

	lot, err := s.lotService.RecordPurchaseOrder(ctx, po)
	if err != nil {
		return fmt.Errorf("lotService.RecordPurchaseOrder: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTLot(lot))

	return nil
}

func (s LotServer) putV1LotExpectedPOCount(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	tenant, err := tenantID(r)
	if err != nil {
		return err
	}

	id, err := lotID(r)
	if err != nil {
		return err
	}

	var request rest.ExpectedPOCountRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	lot, err := s.lotService.SetExpectedPOCount(ctx, tenant, id, *request.ExpectedPOCount)
	if err != nil {
		return fmt.Errorf("lotService.SetExpectedPOCount: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTLot(lot))

	return nil
}
