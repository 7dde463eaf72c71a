package entity

import (
	"time"

	"github.com/google/uuid"
)

type Sender struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// InboundMessage ответ, забранный из ящика продавца.
type InboundMessage struct {
	ID          string    `json:"id"`
	Subject     string    `json:"subject"`
	ReceivedAt  time.Time `json:"received_at"`
	Sender      Sender    `json:"sender"`
	HTMLBody    string    `json:"html_body"`
	TextPreview string    `json:"text_preview"`
}

type MailboxCredential struct {
	TenantID       uuid.UUID
	UserID         string
	MailboxAddress string
	RefreshToken   string
	AccessToken    string
	ExpiresAt      time.Time
}
