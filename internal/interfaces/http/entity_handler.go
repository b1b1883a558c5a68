package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biblioteca-web/internal/application/catalog"
	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// itemResponse vista de un registro individual.
type itemResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Item    *T     `json:"item,omitempty"`
}

// EntityHandler maneja las peticiones HTTP de una entidad del catálogo.
// Los resultados de la API se devuelven tal cual: el cliente decide por el flag success.
type EntityHandler[T any, F catalog.Form[F]] struct {
	svc      *catalog.Service[T, F]
	validate *validator.Validate
}

// NewEntityHandler construye el handler.
func NewEntityHandler[T any, F catalog.Form[F]](svc *catalog.Service[T, F], v *validator.Validate) *EntityHandler[T, F] {
	return &EntityHandler[T, F]{svc: svc, validate: v}
}

// List godoc
// @Summary      Listar o buscar registros
// @Tags         catalog
// @Produce      json
// @Param        term      query  string  false  "Término de búsqueda"
// @Param        page      query  int     false  "Página"            default(1)
// @Param        pageSize  query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.Page[any]
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{entity} [get]
func (h *EntityHandler[T, F]) List(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	return c.JSON(h.svc.Page(c.UserContext(), apiAuth(c), req))
}

// Get obtiene un registro por ID.
func (h *EntityHandler[T, F]) Get(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	item, result := h.svc.Get(c.UserContext(), apiAuth(c), id)
	out := itemResponse[T]{Success: result.Success, Message: result.Message}
	if result.Success {
		out.Item = &item
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Success      201  {object}  dto.OperationResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{entity} [post]
func (h *EntityHandler[T, F]) Create(c *fiber.Ctx) error {
	var form F
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	form = form.WithID(0)
	if errResp, failed := h.check(form); failed {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	result := h.svc.Create(c.UserContext(), apiAuth(c), form)
	if result.Success {
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	return c.JSON(result)
}

// Edit godoc
// @Summary      Editar registro
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        id  path  int  true  "ID del registro"
// @Success      200  {object}  dto.OperationResult
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /{entity}/{id} [put]
func (h *EntityHandler[T, F]) Edit(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	var form F
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	form = form.WithID(id)
	if errResp, failed := h.check(form); failed {
		return c.Status(fiber.StatusBadRequest).JSON(errResp)
	}
	return c.JSON(h.svc.Edit(c.UserContext(), apiAuth(c), id, form))
}

// Delete elimina un registro.
func (h *EntityHandler[T, F]) Delete(c *fiber.Ctx) error {
	id, ok := pathID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
	}
	return c.JSON(h.svc.Delete(c.UserContext(), apiAuth(c), id))
}

func (h *EntityHandler[T, F]) check(form F) (dto.ErrorResponse, bool) {
	err := h.validate.Struct(form)
	if err == nil {
		return dto.ErrorResponse{}, false
	}
	if fields := validationFields(err); fields != nil {
		return dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields}, true
	}
	return dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()}, true
}

func pathID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
