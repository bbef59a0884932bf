package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
)

var (
	_ repository.UserRepository         = (*UserRepo)(nil)
	_ repository.RevokedTokenRepository = (*RevokedTokenRepo)(nil)
)

// UserRepo lista de acceso en memoria.
type UserRepo struct {
	t *table[entity.User]
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{t: newTable("user",
		func(u *entity.User) string { return u.ID },
		func(u *entity.User) *entity.User { cp := *u; return &cp },
	)}
}

func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	return r.t.insert(user)
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.t.get(id), nil
}

// FindByEmail compara el email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = strings.TrimSpace(email)
	return r.t.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

// RevokedTokenRepo conjunto de jti revocados. Las entradas vencidas se purgan al revocar.
type RevokedTokenRepo struct {
	mu    sync.Mutex
	ids   map[string]time.Time
	nowFn func() time.Time
}

// NewRevokedTokenRepository construye el conjunto vacío. nowFn nil usa time.Now.
func NewRevokedTokenRepository(nowFn func() time.Time) *RevokedTokenRepo {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &RevokedTokenRepo{ids: make(map[string]time.Time), nowFn: nowFn}
}

func (r *RevokedTokenRepo) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.nowFn()
	for id, exp := range r.ids {
		if !now.Before(exp) {
			delete(r.ids, id)
		}
	}
	r.ids[tokenID] = expiresAt
	return nil
}

func (r *RevokedTokenRepo) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[tokenID]
	return ok, nil
}
