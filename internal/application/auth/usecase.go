// Package auth resuelve la identidad: login contra la lista de acceso, emisión del token
// con las capacidades del rol, reconstrucción de la sesión en cada petición y logout.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/ports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/internal/domain/repository"
	"github.com/jhoicas/epi-console/pkg/jwt"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// LoginPath ruta pública a la que vuelve el usuario sin sesión.
const LoginPath = "/login"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	revokedRepo repository.RevokedTokenRepository
	notifier    ports.Notifier
	jwtCfg      JWTConfig
	log         *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revokedRepo repository.RevokedTokenRepository, notifier ports.Notifier, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, revokedRepo: revokedRepo, notifier: notifier, jwtCfg: jwtCfg, log: log.Named("auth")}
}

// Login verifica email/password contra la lista de acceso y emite el token de la sesión.
// Email desconocido y password incorrecta devuelven el mismo error.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Info().Str("email", in.Email).Msg("login rechazado: email desconocido")
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		uc.log.Info().Str("user_id", user.ID).Msg("login rechazado: password incorrecta")
		return nil, domain.ErrUnauthorized
	}

	caps := entity.CapabilitiesForRole(user.Role)
	token, err := jwt.Generate(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes, jwt.Subject{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		CompanyID:    user.CompanyID,
		CompanyName:  user.CompanyName,
		Capabilities: capabilityStrings(caps),
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	sess := &entity.Session{
		TokenID:      token.ID,
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         user.Role,
		CompanyID:    user.CompanyID,
		CompanyName:  user.CompanyName,
		Capabilities: caps,
		ExpiresAt:    token.ExpiresAt,
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("sesión iniciada")
	usecase.Notify(ctx, uc.notifier, uc.log, user.ID, entity.NotificationSuccess,
		"Login bem-sucedido", fmt.Sprintf("Bem-vindo, %s!", user.Name))
	return &dto.LoginResponse{
		Token:    token.Value,
		Session:  ToSessionResponse(sess),
		Redirect: entity.LandingPath(user.Role),
	}, nil
}

// Authenticate valida el token y reconstruye la sesión. Un token revocado por logout no es válido.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	revoked, err := uc.revokedRepo.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, fmt.Errorf("%w: sesión cerrada", domain.ErrUnauthorized)
	}
	return SessionFromClaims(claims), nil
}

// Logout revoca el token de la sesión hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, sess *entity.Session) (*dto.LogoutResponse, error) {
	if sess == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := uc.revokedRepo.Revoke(ctx, sess.TokenID, sess.ExpiresAt); err != nil {
		return nil, fmt.Errorf("logout: %w", err)
	}
	uc.log.Info().Str("user_id", sess.UserID).Msg("sesión cerrada")
	usecase.Notify(ctx, uc.notifier, uc.log, sess.UserID, entity.NotificationInfo,
		"Logout realizado", "Você saiu do sistema com sucesso.")
	return &dto.LogoutResponse{Redirect: LoginPath}, nil
}

// SessionFromClaims reconstruye la sesión a partir de los claims del token.
func SessionFromClaims(c *jwt.Claims) *entity.Session {
	caps := make([]entity.Capability, 0, len(c.Capabilities))
	for _, s := range c.Capabilities {
		caps = append(caps, entity.Capability(s))
	}
	sess := &entity.Session{
		TokenID:      c.ID,
		UserID:       c.UserID,
		Name:         c.Name,
		Email:        c.Email,
		Role:         c.Role,
		CompanyID:    c.CompanyID,
		CompanyName:  c.CompanyName,
		Capabilities: caps,
	}
	if c.ExpiresAt != nil {
		sess.ExpiresAt = c.ExpiresAt.Time
	}
	return sess
}

// ToSessionResponse convierte la sesión al DTO expuesto al cliente.
func ToSessionResponse(s *entity.Session) dto.SessionResponse {
	return dto.SessionResponse{
		UserID:       s.UserID,
		Name:         s.Name,
		Initial:      entity.Initial(s.Name),
		Email:        s.Email,
		Role:         s.Role,
		CompanyID:    s.CompanyID,
		CompanyName:  s.CompanyName,
		Capabilities: capabilityStrings(s.Capabilities),
		ExpiresAt:    s.ExpiresAt.UTC().Truncate(time.Second),
	}
}

func capabilityStrings(caps []entity.Capability) []string {
	out := make([]string, 0, len(caps))
	for _, c := range caps {
		out = append(out, string(c))
	}
	return out
}
