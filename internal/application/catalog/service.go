package catalog

import (
	"context"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
)

// Form restricción de los formularios de alta/edición: permiten fijar el ID
// del registro a editar sin mutar el valor original.
type Form[F any] interface {
	WithID(id int) F
}

// Service operaciones de una entidad contra la API de backend. Es una capa
// delgada sobre el cliente: no agrega reglas de negocio propias.
type Service[T any, F Form[F]] struct {
	api     *apiclient.Client
	binding apiclient.Binding
}

// New construye el servicio de una entidad a partir de su binding.
func New[T any, F Form[F]](api *apiclient.Client, binding apiclient.Binding) *Service[T, F] {
	return &Service[T, F]{api: api, binding: binding}
}

// Entity nombre de la entidad (para rutas y mensajes).
func (s *Service[T, F]) Entity() string {
	return s.binding.Entity
}

// Page lista o busca según el término de la petición.
func (s *Service[T, F]) Page(ctx context.Context, auth apiclient.Auth, req dto.SearchRequest) dto.Page[T] {
	return apiclient.FetchPage[T](ctx, s.api, auth, req, s.binding)
}

// Get obtiene un registro por ID. Si la API responde con éxito pero el payload
// no tiene la forma de T, el resultado se degrada a fallo.
func (s *Service[T, F]) Get(ctx context.Context, auth apiclient.Auth, id int) (T, dto.OperationResult) {
	var zero T
	result := s.api.Get(ctx, auth, s.binding, id)
	if !result.Success {
		return zero, result
	}
	item, ok := dto.DecodeData[T](result)
	if !ok {
		return zero, dto.Failed(apiclient.MsgCouldNotProcess)
	}
	return item, result
}

// Create da de alta el registro; el ID del formulario se ignora.
func (s *Service[T, F]) Create(ctx context.Context, auth apiclient.Auth, form F) dto.OperationResult {
	return s.api.Create(ctx, auth, s.binding, form.WithID(0))
}

// Edit actualiza el registro id con los datos del formulario.
func (s *Service[T, F]) Edit(ctx context.Context, auth apiclient.Auth, id int, form F) dto.OperationResult {
	return s.api.Edit(ctx, auth, s.binding, form.WithID(id))
}

// Delete elimina el registro id.
func (s *Service[T, F]) Delete(ctx context.Context, auth apiclient.Auth, id int) dto.OperationResult {
	return s.api.Delete(ctx, auth, s.binding, id)
}
