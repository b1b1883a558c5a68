package dto

import "strings"

// Valores por defecto de paginación cuando no hay configuración explícita.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchRequest parámetros de un listado: término libre, página y tamaño.
// Un término vacío (o solo espacios) selecciona el endpoint de listado completo.
type SearchRequest struct {
	Term     string `query:"term"`
	Page     int    `query:"page"`
	PageSize int    `query:"pageSize"`
}

// WithDefaults aplica valores por defecto: página mínima 1 y tamaño entre 1 y maxSize.
func (r SearchRequest) WithDefaults(defaultSize, maxSize int) SearchRequest {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if maxSize <= 0 {
		maxSize = MaxPageSize
	}
	if r.Page < 1 {
		r.Page = 1
	}
	if r.PageSize < 1 {
		r.PageSize = defaultSize
	}
	if r.PageSize > maxSize {
		r.PageSize = maxSize
	}
	return r
}

// HasTerm indica si la petición es una búsqueda (término no vacío tras recortar).
func (r SearchRequest) HasTerm() bool {
	return strings.TrimSpace(r.Term) != ""
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}
