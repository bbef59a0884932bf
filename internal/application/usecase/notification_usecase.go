package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var _ ports.Notifier = (*NotificationUseCase)(nil)

// NotificationUseCase feed de avisos con auto-descarte.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewNotificationUseCase construye el caso de uso. now nil usa time.Now.
func NewNotificationUseCase(repo repository.NotificationRepository, ttl time.Duration, now func() time.Time) *NotificationUseCase {
	if now == nil {
		now = time.Now
	}
	return &NotificationUseCase{repo: repo, ttl: ttl, now: now}
}

// Notify publica un aviso que vence tras el TTL configurado.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, kind, title, description string) error {
	if userID == "" {
		return nil
	}
	now := uc.now()
	n := &entity.Notification{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		ExpiresAt:   now.Add(uc.ttl),
	}
	if err := uc.repo.Push(ctx, n); err != nil {
		return fmt.Errorf("notificación: %w", err)
	}
	return nil
}

// List devuelve los avisos vigentes del usuario, del más reciente al más antiguo.
func (uc *NotificationUseCase) List(ctx context.Context, userID string) ([]dto.NotificationResponse, error) {
	list, err := uc.repo.ListActive(ctx, userID, uc.now())
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		out = append(out, dto.NotificationResponse{
			ID:          n.ID,
			Kind:        n.Kind,
			Title:       n.Title,
			Description: n.Description,
			CreatedAt:   n.CreatedAt,
			ExpiresAt:   n.ExpiresAt,
		})
	}
	return out, nil
}
