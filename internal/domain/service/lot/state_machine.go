package lot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/google/uuid"

	"lotmarket/internal/domain"
	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
	"lotmarket/pkg/logx"
)

//go:generate moq -rm -out state_machine_mock.gen.go . LotRepository PurchaseOrderRepository Notifier Observer

type LotRepository interface {
	GetByID(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Lot, error)
	// CompareAndSetStatus moves the lot to next only while it is still in
	// expected. stamp=false keeps the phase timestamp when it is already set.
	CompareAndSetStatus(ctx context.Context, tenantID, lotID uuid.UUID, expected, next value.LotStatus, at time.Time, stamp bool) (bool, error)
	SetExpectedPOCount(ctx context.Context, tenantID, lotID uuid.UUID, count int) error
}

type PurchaseOrderRepository interface {
	// Create stores the document and recounts po_count from purchase order
	// rows, returning the new count.
	Create(ctx context.Context, po *entity.PurchaseOrder) (int, error)
}

type Notifier interface {
	Notify(ctx context.Context, n entity.Notification) error
}

type Observer interface {
	ObserveTransition(from, to string)
}

type StateMachine struct {
	lots     LotRepository
	pos      PurchaseOrderRepository
	notifier Notifier
	observer Observer
	now      func() time.Time
}

func NewStateMachine(lots LotRepository, pos PurchaseOrderRepository) *StateMachine {
	return &StateMachine{
		lots: lots,
		pos:  pos,
		now:  time.Now,
	}
}

func (m *StateMachine) WithNotifier(n Notifier) *StateMachine {
	m.notifier = n
	return m
}

func (m *StateMachine) WithObserver(o Observer) *StateMachine {
	m.observer = o
	return m
}

func (m *StateMachine) WithClock(now func() time.Time) *StateMachine {
	m.now = now
	return m
}

// Transition applies a requested status change.
func (m *StateMachine) Transition(ctx context.Context, tenantID, lotID uuid.UUID, requested value.LotStatus) (*entity.Lot, error) {
	lot, err := m.get(ctx, tenantID, lotID)
	if err != nil {
		return nil, err
	}

	if err := CheckTransition(*lot, requested); err != nil {
		return nil, err
	}

	if lot.Status == requested {
		if phaseStamp(lot, requested) != nil {
			return lot, nil
		}

		// Самопереход только проставляет отсутствующую отметку времени.
		if err := m.apply(ctx, lot, requested, false); err != nil {
			return nil, err
		}

		return m.get(ctx, tenantID, lotID)
	}

	if err := m.apply(ctx, lot, requested, true); err != nil {
		return nil, err
	}

	return m.get(ctx, tenantID, lotID)
}

// OnOfferCreated moves a draft or open lot to offers_received. Losing the
// race to another writer is fine: the lot has moved on already.
func (m *StateMachine) OnOfferCreated(ctx context.Context, tenantID, lotID uuid.UUID) error {
	lot, err := m.get(ctx, tenantID, lotID)
	if err != nil {
		return err
	}

	if !lot.Status.AcceptsFirstOffer() {
		return nil
	}

	err = m.apply(ctx, lot, value.LotStatusOffersReceived, true)
	if err != nil && failure.Code(err) != errcodes.LotStatusChanged {
		return err
	}

	return nil
}

// RecordPurchaseOrder stores an uploaded PO. The first PO on a lot that is
// not yet on sale starts the sale.
func (m *StateMachine) RecordPurchaseOrder(ctx context.Context, po entity.PurchaseOrder) (*entity.Lot, error) {
	po.DocumentURL = strings.TrimSpace(po.DocumentURL)
	if po.DocumentURL == "" {
		return nil, failure.NewInvalidArgumentError(
			"document url is empty",
			failure.WithCode(errcodes.InvalidDocument),
			failure.WithDescription("Purchase order document is required"),
		)
	}

	lot, err := m.get(ctx, po.TenantID, po.LotID)
	if err != nil {
		return nil, err
	}

	if lot.Status == value.LotStatusClosed {
		return nil, denied(lot.Status, value.LotStatusSaleInProgress, "lot is closed")
	}

	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}

	if po.UploadedAt.IsZero() {
		po.UploadedAt = m.now().UTC()
	}

	count, err := m.pos.Create(ctx, &po)
	if err != nil {
		return nil, fmt.Errorf("pos.Create: %w", err)
	}

	logger(ctx).Info("purchase order recorded",
		slog.String(logx.FieldLotID, lot.ID.String()),
		slog.Int("po_count", count),
	)

	if count > 0 && preSale(lot.Status) {
		err := m.apply(ctx, lot, value.LotStatusSaleInProgress, true)
		if err != nil && failure.Code(err) != errcodes.LotStatusChanged {
			return nil, err
		}
	}

	return m.get(ctx, po.TenantID, po.LotID)
}

func (m *StateMachine) SetExpectedPOCount(ctx context.Context, tenantID, lotID uuid.UUID, count int) (*entity.Lot, error) {
	if count < 0 {
		return nil, failure.NewInvalidArgumentError(
			fmt.Sprintf("expected po count %d is negative", count),
			failure.WithCode(errcodes.InvalidPOCount),
			failure.WithDescription("Expected PO count must not be negative"),
		)
	}

	lot, err := m.get(ctx, tenantID, lotID)
	if err != nil {
		return nil, err
	}

	if lot.Status == value.LotStatusClosed {
		return nil, denied(lot.Status, lot.Status, "lot is closed")
	}

	if err := m.lots.SetExpectedPOCount(ctx, tenantID, lotID, count); err != nil {
		return nil, domain.NotFound(fmt.Errorf("lots.SetExpectedPOCount: %w", err), errcodes.LotNotFound, "Lot not found")
	}

	return m.get(ctx, tenantID, lotID)
}

func (m *StateMachine) get(ctx context.Context, tenantID, lotID uuid.UUID) (*entity.Lot, error) {
	lot, err := m.lots.GetByID(ctx, tenantID, lotID)
	if err != nil {
		return nil, domain.NotFound(fmt.Errorf("lots.GetByID: %w", err), errcodes.LotNotFound, "Lot not found")
	}

	return lot, nil
}

func (m *StateMachine) apply(ctx context.Context, lot *entity.Lot, next value.LotStatus, stamp bool) error {
	ok, err := m.lots.CompareAndSetStatus(ctx, lot.TenantID, lot.ID, lot.Status, next, m.now().UTC(), stamp)
	if err != nil {
		return fmt.Errorf("lots.CompareAndSetStatus: %w", err)
	}

	if !ok {
		return failure.NewConflictError(
			fmt.Sprintf("lot %s is no longer %s", lot.ID, lot.Status),
			failure.WithCode(errcodes.LotStatusChanged),
			failure.WithDescription("Lot status was changed concurrently, retry the request"),
		)
	}

	if lot.Status == next {
		return nil
	}

	logger(ctx).Info("lot status changed",
		slog.String(logx.FieldLotID, lot.ID.String()),
		slog.String("from", lot.Status.String()),
		slog.String("to", next.String()),
	)

	if m.observer != nil {
		m.observer.ObserveTransition(lot.Status.String(), next.String())
	}

	m.notify(ctx, lot, next)

	return nil
}

func (m *StateMachine) notify(ctx context.Context, lot *entity.Lot, next value.LotStatus) {
	if m.notifier == nil {
		return
	}

	title, ok := notificationTitles[next]
	if !ok {
		return
	}

	n := entity.Notification{
		TenantID: lot.TenantID,
		LotID:    lot.ID,
		Kind:     "lot_" + next.String(),
		Title:    title,
		Body:     fmt.Sprintf("%s: %s", lot.Title, title),
	}

	if err := m.notifier.Notify(ctx, n); err != nil {
		logger(ctx).Warn("lot notification failed",
			slog.String(logx.FieldLotID, lot.ID.String()),
			logx.Error(err),
		)
	}
}

var notificationTitles = map[value.LotStatus]string{ //nolint:gochecknoglobals
	value.LotStatusOffersReceived:  "New offers received",
	value.LotStatusSaleInProgress:  "Sale in progress",
	value.LotStatusProcessing:      "Orders are being processed",
	value.LotStatusOrderProcessing: "Orders are being processed",
	value.LotStatusSold:            "Lot sold",
}
