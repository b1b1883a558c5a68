package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// Mensajes de fallo del resolver de páginas.
const (
	MsgErrorInResponse = "Error in response"
	MsgCouldNotProcess = "Could not process results"
)

// pageWire forma de página en el cable. Los items llegan en "items" o en "data".
type pageWire struct {
	Success    *bool           `json:"success"`
	Message    string          `json:"message"`
	Items      json.RawMessage `json:"items"`
	Data       json.RawMessage `json:"data"`
	Pagination *dto.PageInfo   `json:"pagination"`
}

// FetchPage resuelve una petición de listado/búsqueda contra los endpoints de
// la entidad y devuelve siempre una página bien formada: los fallos esperados
// (HTTP, cuerpo malformado, transporte) se expresan con Success=false.
// Se hace un único intento por llamada.
func FetchPage[T any](ctx context.Context, c *Client, auth Auth, req dto.SearchRequest, b Binding) dto.Page[T] {
	req = req.WithDefaults(c.defaultPageSize, c.maxPageSize)
	path, query, shape := b.resolvePage(req)

	resp, err := c.do(ctx, auth, http.MethodGet, path, query, nil)
	if err != nil {
		return dto.FailedPage[T](req, connectionError(err))
	}
	if !isSuccessStatus(resp.Status) {
		c.logRejected(path, resp.Status, resp.Body, "listado rechazado por la API")
		return dto.FailedPage[T](req, fmt.Sprintf("Error retrieving %s: %d", b.Entity, resp.Status))
	}

	var page dto.Page[T]
	switch shape {
	case ShapeEnveloped:
		page = unwrapEnvelopedPage[T](resp.Body, req)
	default:
		page = decodeDirectPage[T](resp.Body, req)
	}
	if !page.Success {
		c.logRejected(path, resp.Status, resp.Body, "página no procesable")
		return page
	}

	if size := page.Pagination.PageSize; len(page.Items) > size {
		c.log.Warn().
			Str("path", path).
			Int("items", len(page.Items)).
			Int("page_size", size).
			Msg("la API devolvió más items que el tamaño de página")
		page.Items = page.Items[:size]
	}
	return page
}

// unwrapEnvelopedPage desempaqueta {success, message, data: página}. El flag
// exterior manda: si el envelope reporta éxito la página resultante es exitosa.
func unwrapEnvelopedPage[T any](body []byte, req dto.SearchRequest) dto.Page[T] {
	env, ok := parseEnvelope(body)
	if !ok || !env.HasSuccess || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = MsgErrorInResponse
		}
		return dto.FailedPage[T](req, msg)
	}
	if env.Data == nil {
		return dto.FailedPage[T](req, MsgCouldNotProcess)
	}
	wire, ok := decodePageWire(env.Data)
	if !ok {
		return dto.FailedPage[T](req, MsgCouldNotProcess)
	}
	page, ok := buildPage[T](wire, req)
	if !ok {
		return dto.FailedPage[T](req, MsgCouldNotProcess)
	}
	page.Success = true
	page.Message = env.Message
	return page
}

// decodeDirectPage interpreta el cuerpo como la página misma.
func decodeDirectPage[T any](body []byte, req dto.SearchRequest) dto.Page[T] {
	wire, ok := decodePageWire(body)
	if !ok {
		return dto.FailedPage[T](req, MsgCouldNotProcess)
	}
	if wire.Success == nil || !*wire.Success {
		msg := wire.Message
		if msg == "" {
			msg = MsgErrorInResponse
		}
		return dto.FailedPage[T](req, msg)
	}
	page, ok := buildPage[T](wire, req)
	if !ok {
		return dto.FailedPage[T](req, MsgCouldNotProcess)
	}
	page.Success = true
	page.Message = wire.Message
	return page
}

func decodePageWire(raw []byte) (pageWire, bool) {
	var wire pageWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return pageWire{}, false
	}
	return wire, true
}

// buildPage decodifica los items y completa la paginación. Los valores del
// servidor se toman tal cual; solo se calculan los que faltan.
func buildPage[T any](wire pageWire, req dto.SearchRequest) (dto.Page[T], bool) {
	rawItems := wire.Items
	// items ausente o null: los registros pueden venir en data.
	if (rawItems == nil || isNull(rawItems)) && wire.Data != nil && !isNull(wire.Data) {
		rawItems = wire.Data
	}
	if rawItems == nil {
		return dto.Page[T]{}, false
	}

	items := []T{}
	if !isNull(rawItems) {
		if err := json.Unmarshal(rawItems, &items); err != nil {
			return dto.Page[T]{}, false
		}
		if items == nil {
			items = []T{}
		}
	}

	var info dto.PageInfo
	if wire.Pagination != nil {
		info = *wire.Pagination
	} else {
		info.TotalItems = len(items)
	}
	if info.CurrentPage < 1 {
		info.CurrentPage = req.Page
	}
	if info.PageSize < 1 {
		info.PageSize = req.PageSize
	}
	if info.TotalItems < 0 {
		info.TotalItems = 0
	}
	if info.TotalPages <= 0 {
		info.TotalPages = dto.TotalPagesFor(info.TotalItems, info.PageSize)
	}

	return dto.Page[T]{Items: items, Pagination: info}, true
}
