package domain

import "time"

// ChairPurchasedEvent is published after a successful purchase request.
type ChairPurchasedEvent struct {
	ChairID     int64     `json:"chair_id"`
	Email       string    `json:"email"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// EstateDocumentRequestedEvent is published after a document request.
type EstateDocumentRequestedEvent struct {
	EstateID    int64     `json:"estate_id"`
	Email       string    `json:"email"`
	RequestedAt time.Time `json:"requested_at"`
}
