package domain

import "time"

// NotificationKind distinguishes transient confirmations from the persistent contrast warning.
type NotificationKind string

const (
	NotificationConfirmation NotificationKind = "confirmation"
	NotificationWarning      NotificationKind = "warning"
)

// Notification is a short user-facing message. Warnings have a zero ExpiresAt.
type Notification struct {
	Message    string           `json:"message"`
	SequenceID uint64           `json:"sequence_id"`
	Kind       NotificationKind `json:"kind"`
	ExpiresAt  time.Time        `json:"expires_at"`
}
