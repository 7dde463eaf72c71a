package entity

import "github.com/google/uuid"

type Deal struct {
	ID       uuid.UUID `json:"id"`
	TenantID uuid.UUID `json:"tenant_id"`
	Title    string    `json:"title"`
	Currency string    `json:"currency"`
}

// DealThread связывает ключ темы [DL-XXXXXX] с конкретной сделкой.
type DealThread struct {
	ID         uuid.UUID `json:"id"`
	TenantID   uuid.UUID `json:"tenant_id"`
	DealID     uuid.UUID `json:"deal_id"`
	SubjectKey string    `json:"subject_key"`
	Currency   string    `json:"currency"`
}

// LotEmailBatch одна рассылка по лоту. BatchKey вшит в тему каждого письма,
// по нему находятся ответы.
type LotEmailBatch struct {
	ID       uuid.UUID  `json:"id"`
	TenantID uuid.UUID  `json:"tenant_id"`
	LotID    uuid.UUID  `json:"lot_id"`
	RoundID  *uuid.UUID `json:"round_id,omitempty"`
	BatchKey string     `json:"batch_key"`
	Currency string     `json:"currency"`
}
