package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification log statuses.
const (
	StatusPending  = "pending"
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusReceived = "received"
)

// SentToUnconfigured is recorded as the destination when no external
// system is configured and the notification is only stored locally.
const SentToUnconfigured = "No configurado"

// SentToIncomingWebhook marks log rows created by the webhook receiver.
const SentToIncomingWebhook = "incoming_webhook"

// NotificationLog represents one delivery attempt (outbound) or one
// received webhook event (inbound).
//
// Outbound rows are created as "pending" and updated once when the attempt
// result is known; a retry mutates the existing row, it never creates a new
// one. Inbound rows are created as "received" and never mutated again.
type NotificationLog struct {
	ID         uuid.UUID `json:"id"`         // unique identifier for the log row
	Type       string    `json:"type"`       // e.g. "vtv_expired", "webhook_received"
	EntityType string    `json:"entityType"` // "vehicle", "user" or "external"
	EntityID   string    `json:"entityId"`   // id of the related entity
	Message    string    `json:"message"`    // human-readable alert message
	SentTo     string    `json:"sentTo"`     // destination descriptor
	Status     string    `json:"status"`     // pending, sent, failed or received
	Response   string    `json:"response"`   // free-form diagnostic text
	RetryCount int       `json:"retryCount"` // failed delivery attempts so far
	SentAt     time.Time `json:"sentAt"`     // creation timestamp
}

// Stats holds aggregate counts over the notification log.
type Stats struct {
	Total   int `json:"total"`
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}
