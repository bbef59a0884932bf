package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims incluye los claims estándar JWT más los campos propios de la sesión.
// Las capacidades se resuelven una sola vez en el login y viajan en el token,
// así el middleware autoriza sin volver a mirar el rol.
type Claims struct {
	jwt.RegisteredClaims
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         string   `json:"role"` // "admin" | "manager"
	CompanyID    string   `json:"company_id,omitempty"`
	CompanyName  string   `json:"company_name,omitempty"`
	Capabilities []string `json:"caps"`
}

// Subject datos de la sesión que se firman en el token.
type Subject struct {
	UserID       string
	Name         string
	Email        string
	Role         string
	CompanyID    string
	CompanyName  string
	Capabilities []string
}

// Token resultado de Generate: el token firmado, su ID (jti) y su expiración.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// Generate genera un token JWT firmado (HS256) para el sujeto indicado.
func Generate(secret, issuer string, expMinutes int, sub Subject) (*Token, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	exp := now.Add(time.Duration(expMinutes) * time.Minute)
	id := uuid.NewString()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UserID:       sub.UserID,
		Name:         sub.Name,
		Email:        sub.Email,
		Role:         sub.Role,
		CompanyID:    sub.CompanyID,
		CompanyName:  sub.CompanyName,
		Capabilities: sub.Capabilities,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("jwt: firmar token: %w", err)
	}
	return &Token{Value: signed, ID: id, ExpiresAt: exp}, nil
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
