package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo feed de avisos por usuario.
type NotificationRepo struct {
	mu     sync.Mutex
	byUser map[string][]*entity.Notification
}

// NewNotificationRepository construye el feed vacío.
func NewNotificationRepository() *NotificationRepo {
	return &NotificationRepo{byUser: make(map[string][]*entity.Notification)}
}

func (r *NotificationRepo) Push(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *n
	r.byUser[n.UserID] = append(r.byUser[n.UserID], &cp)
	return nil
}

// ListActive además descarta del feed los avisos ya vencidos.
func (r *NotificationRepo) ListActive(_ context.Context, userID string, now time.Time) ([]*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	feed := r.byUser[userID]
	kept := feed[:0]
	for _, n := range feed {
		if n.Active(now) {
			kept = append(kept, n)
		}
	}
	r.byUser[userID] = kept

	out := make([]*entity.Notification, 0, len(kept))
	for i := len(kept) - 1; i >= 0; i-- {
		cp := *kept[i]
		out = append(out, &cp)
	}
	return out, nil
}
