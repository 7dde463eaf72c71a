package value

import "fmt"

type LotStatus string

const (
	LotStatusDraft           LotStatus = "draft"
	LotStatusOpen            LotStatus = "open"
	LotStatusOffersReceived  LotStatus = "offers_received"
	LotStatusSaleInProgress  LotStatus = "sale_in_progress"
	LotStatusProcessing      LotStatus = "processing"
	LotStatusOrderProcessing LotStatus = "order_processing"
	LotStatusSold            LotStatus = "sold"
	LotStatusClosed          LotStatus = "closed"
)

func (s LotStatus) String() string {
	return string(s)
}

// IsProcessing покрывает оба написания фазы обработки после продажи.
func (s LotStatus) IsProcessing() bool {
	return s == LotStatusProcessing || s == LotStatusOrderProcessing
}

// AcceptsFirstOffer сообщает, переводит ли новое предложение лот в offers_received.
func (s LotStatus) AcceptsFirstOffer() bool {
	return s == LotStatusDraft || s == LotStatusOpen
}

func ParseLotStatus(s string) (LotStatus, error) {
	switch status := LotStatus(s); status {
	case LotStatusDraft, LotStatusOpen, LotStatusOffersReceived, LotStatusSaleInProgress,
		LotStatusProcessing, LotStatusOrderProcessing, LotStatusSold, LotStatusClosed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown lot status %q", s)
	}
}
