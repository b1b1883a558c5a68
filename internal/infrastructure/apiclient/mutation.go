package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// MsgInvalidPayload fallo al serializar el payload de una mutación.
const MsgInvalidPayload = "Invalid request payload"

// Send ejecuta una llamada con envelope {success, message, data} y la pasa por
// Normalize. Un 204 sin cuerpo es éxito; cualquier otro 2xx con cuerpo no
// interpretable es fallo (regla estricta, igual para todas las entidades).
func (c *Client) Send(ctx context.Context, auth Auth, method, path string, query url.Values, payload any) dto.OperationResult {
	resp, err := c.do(ctx, auth, method, path, query, payload)
	if err != nil {
		if isMarshalError(err) {
			c.log.Error().Err(err).Str("path", path).Msg("payload no serializable")
			return dto.Failed(MsgInvalidPayload)
		}
		return dto.Failed(connectionError(err))
	}
	if resp.Status == http.StatusNoContent {
		return dto.OperationResult{Success: true, Message: dto.MsgOperationSuccessful}
	}
	result := Normalize(resp.Status, resp.Body)
	if !result.Success {
		c.logRejected(path, resp.Status, resp.Body, "operación rechazada por la API")
	}
	return result
}

// Create POST /<Entity>/Create con el payload en JSON.
func (c *Client) Create(ctx context.Context, auth Auth, b Binding, payload any) dto.OperationResult {
	return c.Send(ctx, auth, http.MethodPost, b.CreatePath, nil, payload)
}

// Edit PUT /<Entity>/Edit con el payload en JSON (el ID va dentro del payload).
func (c *Client) Edit(ctx context.Context, auth Auth, b Binding, payload any) dto.OperationResult {
	return c.Send(ctx, auth, http.MethodPut, b.EditPath, nil, payload)
}

// Delete DELETE /<Entity>/Delete?id=<id>.
func (c *Client) Delete(ctx context.Context, auth Auth, b Binding, id int) dto.OperationResult {
	return c.Send(ctx, auth, http.MethodDelete, b.DeletePath, encodeQuery(idQuery{ID: id}), nil)
}

// Get GET /<Entity>/GetById?id=<id>. El registro llega opaco en Data.
func (c *Client) Get(ctx context.Context, auth Auth, b Binding, id int) dto.OperationResult {
	return c.Send(ctx, auth, http.MethodGet, b.GetPath, encodeQuery(idQuery{ID: id}), nil)
}
