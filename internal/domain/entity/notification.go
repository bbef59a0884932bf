package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "info"
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification aviso para un usuario; desaparece sola al llegar a ExpiresAt.
type Notification struct {
	ID          string
	UserID      string
	Kind        string
	Title       string
	Description string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

// Active informa si el aviso sigue visible en now.
func (n *Notification) Active(now time.Time) bool {
	return now.Before(n.ExpiresAt)
}
