package dto

// PageInfo metadatos de una página.
type PageInfo struct {
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
	TotalPages  int `json:"totalPages"`
}

// TotalPagesFor calcula ceil(totalItems/pageSize); 0 si pageSize no es positivo.
func TotalPagesFor(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize != 0 {
		pages++
	}
	return pages
}

// Page una página de un listado. Items conserva el orden del servidor.
type Page[T any] struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	Items      []T      `json:"items"`
	Pagination PageInfo `json:"pagination"`
}

// FailedPage construye una página fallida: sin items, con la página y el
// tamaño pedidos y totales en cero.
func FailedPage[T any](req SearchRequest, message string) Page[T] {
	if message == "" {
		message = MsgOperationFailed
	}
	return Page[T]{
		Success: false,
		Message: message,
		Items:   []T{},
		Pagination: PageInfo{
			CurrentPage: req.Page,
			PageSize:    req.PageSize,
		},
	}
}
