package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse datos de la sesión expuestos al cliente.
type SessionResponse struct {
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Initial      string    `json:"initial"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CompanyID    string    `json:"company_id,omitempty"`
	CompanyName  string    `json:"company_name,omitempty"`
	Capabilities []string  `json:"capabilities"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// LoginResponse token JWT, sesión y ruta inicial según el rol.
type LoginResponse struct {
	Token    string          `json:"token"`
	Session  SessionResponse `json:"session"`
	Redirect string          `json:"redirect"`
}

// LogoutResponse indica a dónde volver tras cerrar la sesión.
type LogoutResponse struct {
	Redirect string `json:"redirect"`
}
