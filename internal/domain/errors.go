package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnauthorized   = errors.New("no autorizado")
	ErrForbidden      = errors.New("acceso denegado")
	ErrSessionExpired = errors.New("sesión expirada")

	// Errores de configuración: fatales al arrancar, nunca en tiempo de petición.
	ErrMissingBaseURL = errors.New("API_BASE_URL no configurado")
	ErrInvalidBaseURL = errors.New("API_BASE_URL debe ser una URL absoluta http(s)")
)
