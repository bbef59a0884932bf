package repository

import (
	"context"
	"time"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// NotificationRepository feed de avisos por usuario.
type NotificationRepository interface {
	Push(ctx context.Context, n *entity.Notification) error
	// ListActive devuelve los avisos no vencidos en now, del más reciente al más antiguo.
	ListActive(ctx context.Context, userID string, now time.Time) ([]*entity.Notification, error)
}
