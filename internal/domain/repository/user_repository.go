package repository

import (
	"context"
	"time"

	"github.com/jhoicas/epi-console/internal/domain/entity"
)

// UserRepository define el puerto de la lista de acceso (cuentas habilitadas).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// FindByEmail devuelve (nil, nil) si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// RevokedTokenRepository guarda los IDs (jti) de los tokens cerrados con logout hasta que expiran.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
