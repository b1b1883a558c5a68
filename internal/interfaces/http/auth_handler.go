package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/biblioteca-web/internal/application/auth"
	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// identityResponse vista de la identidad tras login o en /me.
type identityResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *dto.Identity `json:"user,omitempty"`
}

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc       *auth.AuthUseCase
	store    *session.Store
	validate *validator.Validate
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, store *session.Store, v *validator.Validate) *AuthHandler {
	return &AuthHandler{uc: uc, store: store, validate: v}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  identityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.OperationResult
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos", Fields: validationFields(err)})
	}

	s, result := h.uc.Login(c.UserContext(), GetRequestID(c), in)
	if !result.Success {
		return c.Status(fiber.StatusUnauthorized).JSON(result)
	}

	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION_ERROR", Message: "no se pudo crear la sesión"})
	}
	// Nueva ID de sesión en cada login.
	if err := sess.Regenerate(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION_ERROR", Message: "no se pudo crear la sesión"})
	}
	sess.Set(sessionTokenKey, s.Token)
	if err := sess.Save(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION_ERROR", Message: "no se pudo guardar la sesión"})
	}
	return c.JSON(identityResponse{Success: true, Message: result.Message, User: &s.Identity})
}

// Logout destruye la sesión actual. Es idempotente.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(dto.OperationResult{Success: true, Message: "Logged out"})
}

// Me devuelve la identidad de la sesión (después de RequireSession).
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	id := GetIdentity(c)
	return c.JSON(identityResponse{Success: true, User: &id})
}
