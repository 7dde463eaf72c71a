package lot

import (
	"fmt"
	"time"

	"git.appkode.ru/pub/go/failure"

	"lotmarket/internal/domain/entity"
	"lotmarket/internal/domain/value"
	"lotmarket/pkg/errcodes"
)

// CheckTransition validates a requested status against the lot's current
// state. A closed lot accepts nothing, not even closed again.
func CheckTransition(lot entity.Lot, to value.LotStatus) error {
	from := lot.Status

	switch {
	case from == value.LotStatusClosed:
		return denied(from, to, "lot is closed")
	case to == from, to == value.LotStatusClosed:
		return nil
	}

	switch to {
	case value.LotStatusOpen:
		if from != value.LotStatusDraft {
			return denied(from, to, "only a draft lot can be opened")
		}
	case value.LotStatusOffersReceived:
		if !from.AcceptsFirstOffer() {
			return denied(from, to, "offers are received only by draft or open lots")
		}
	case value.LotStatusSaleInProgress:
		if !preSale(from) {
			return denied(from, to, "sale already started")
		}
	case value.LotStatusProcessing, value.LotStatusOrderProcessing:
		if from != value.LotStatusSaleInProgress {
			return denied(from, to, "processing starts only from sale_in_progress")
		}

		if lot.ExpectedPOCount <= 0 {
			return denied(from, to, "expected po count is not set")
		}

		if lot.POCount < lot.ExpectedPOCount {
			return denied(from, to, fmt.Sprintf("%d of %d purchase orders uploaded", lot.POCount, lot.ExpectedPOCount))
		}
	case value.LotStatusSold:
		if !from.IsProcessing() {
			return denied(from, to, "only a processing lot can be sold")
		}
	default:
		return denied(from, to, "transition is not allowed")
	}

	return nil
}

func preSale(s value.LotStatus) bool {
	return s == value.LotStatusDraft || s == value.LotStatusOpen || s == value.LotStatusOffersReceived
}

func denied(from, to value.LotStatus, reason string) error {
	return failure.NewConflictError(
		fmt.Sprintf("lot transition %s -> %s denied: %s", from, to, reason),
		failure.WithCode(errcodes.TransitionDenied),
		failure.WithDescription(fmt.Sprintf("Cannot move lot from %s to %s: %s", from, to, reason)),
	)
}

// phaseStamp returns the timestamp recorded for reaching status, nil for
// statuses without one.
func phaseStamp(lot *entity.Lot, status value.LotStatus) *time.Time {
	switch status {
	case value.LotStatusOffersReceived:
		return lot.OffersReceivedAt
	case value.LotStatusSaleInProgress:
		return lot.SaleInProgressAt
	case value.LotStatusProcessing:
		return lot.ProcessingAt
	case value.LotStatusOrderProcessing:
		return lot.OrderProcessingAt
	case value.LotStatusSold:
		return lot.SoldAt
	case value.LotStatusClosed:
		return lot.ClosedAt
	default:
		return &lot.UpdatedAt
	}
}
