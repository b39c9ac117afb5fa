package models

type NotificationKind string

const (
	NotificationNotFound NotificationKind = "not_found"
	NotificationError    NotificationKind = "error"
)

// Notification is a transient, user-visible message.
type Notification struct {
	Kind        NotificationKind `json:"kind" example:"not_found"`
	Title       string           `json:"title" example:"City not found"`
	Description string           `json:"description"`
}
