package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/biblioteca-web/internal/application/auth"
	"github.com/jhoicas/biblioteca-web/internal/application/catalog"
	"github.com/jhoicas/biblioteca-web/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Services *catalog.Services
	AuthUC   *auth.AuthUseCase
	Sessions *session.Store
	Validate *validator.Validate
}

// Router registra las rutas del front end.
func Router(app *fiber.App, deps RouterDeps) {
	v := deps.Validate
	if v == nil {
		v = NewValidator()
	}
	requireSession := RequireSession(deps.Sessions, deps.AuthUC)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Sessions, v)
	app.Post("/login", authHandler.Login)
	app.Post("/logout", authHandler.Logout)
	app.Get("/me", requireSession, authHandler.Me)

	// Catálogo: lectura con sesión, escritura para administración y bibliotecarios.
	editors := RequireRole(entity.RoleAdmin, entity.RoleLibrarian)
	admins := RequireRole(entity.RoleAdmin)

	s := deps.Services
	mountEntity(app, s.Authors, v, requireSession, editors)
	mountEntity(app, s.Editorials, v, requireSession, editors)
	mountEntity(app, s.Genres, v, requireSession, editors)
	mountEntity(app, s.Sections, v, requireSession, editors)
	mountEntity(app, s.Books, v, requireSession, editors)
	// Cualquier usuario con sesión puede reservar; la API aplica sus propias reglas.
	mountEntity(app, s.Reservations, v, requireSession)
	mountEntity(app, s.Users, v, requireSession, admins)
	mountEntity(app, s.Roles, v, requireSession, admins)
}

// mountEntity registra GET/POST/PUT/DELETE de una entidad bajo /<entity>.
// guards se aplican solo a las rutas de escritura.
func mountEntity[T any, F catalog.Form[F]](r fiber.Router, svc *catalog.Service[T, F], v *validator.Validate, requireSession fiber.Handler, guards ...fiber.Handler) {
	h := NewEntityHandler(svc, v)
	g := r.Group("/"+svc.Entity(), requireSession)

	g.Get("/", h.List)
	g.Get("/:id", h.Get)
	g.Post("/", withGuards(guards, h.Create)...)
	g.Put("/:id", withGuards(guards, h.Edit)...)
	g.Delete("/:id", withGuards(guards, h.Delete)...)
}

func withGuards(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}
