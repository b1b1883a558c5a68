package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/biblioteca-web/internal/application/auth"
	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
)

// Locals keys para token, identidad y request id en Fiber.
const (
	LocalToken     = "api_token"
	LocalIdentity  = "identity"
	LocalRequestID = "requestid"

	sessionTokenKey = "token"
)

// SessionOptions configuración de la cookie de sesión.
type SessionOptions struct {
	CookieName string
	Expiration time.Duration
	Secure     bool
}

// NewSessionStore crea el store de sesiones en memoria. La sesión solo guarda
// el token de la API; la identidad se reconstruye desde sus claims.
func NewSessionStore(opts SessionOptions) *session.Store {
	name := opts.CookieName
	if name == "" {
		name = "biblioteca_session"
	}
	return session.New(session.Config{
		Expiration:     opts.Expiration,
		KeyLookup:      "cookie:" + name,
		CookieSecure:   opts.Secure,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
}

// RequireSession exige una sesión con token válido. Si el token expiró la
// sesión se destruye y se responde 401.
func RequireSession(store *session.Store, uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SESSION_ERROR", Message: "no se pudo leer la sesión"})
		}
		token, _ := sess.Get(sessionTokenKey).(string)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_SESSION", Message: "inicie sesión"})
		}
		restored, err := uc.Restore(token)
		if err != nil {
			_ = sess.Destroy()
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "sesión expirada o inválida"})
		}
		c.Locals(LocalToken, restored.Token)
		c.Locals(LocalIdentity, restored.Identity)
		return c.Next()
	}
}

// RequireRole autoriza solo a los roles indicados. Debe usarse DESPUÉS de RequireSession.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetIdentity(c).Role
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, allowed := range roles {
			if strings.EqualFold(role, allowed) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetToken devuelve el token de la API (después de RequireSession).
func GetToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalToken).(string)
	return s
}

// GetIdentity devuelve la identidad del usuario (después de RequireSession).
func GetIdentity(c *fiber.Ctx) dto.Identity {
	id, _ := c.Locals(LocalIdentity).(dto.Identity)
	return id
}

// GetRequestID devuelve el request id asignado por el middleware requestid.
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// apiAuth contexto de llamada a la API para esta petición.
func apiAuth(c *fiber.Ctx) apiclient.Auth {
	return apiclient.Auth{Token: GetToken(c), RequestID: GetRequestID(c)}
}
