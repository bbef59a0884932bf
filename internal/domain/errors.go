package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidTransition  = errors.New("transición de estado no permitida")
	ErrConfirmationActive = errors.New("ya existe una confirmación biométrica en curso")
	ErrEmptyProcess       = errors.New("el proceso no tiene EPIs")
	ErrScanFailed         = errors.New("lectura biométrica fallida")
	ErrInactive           = errors.New("el registro está inactivo")
)
