package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/biblioteca-web/internal/application/auth"
	"github.com/jhoicas/biblioteca-web/internal/application/catalog"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
	httpRouter "github.com/jhoicas/biblioteca-web/internal/interfaces/http"
	"github.com/jhoicas/biblioteca-web/pkg/config"
	"github.com/jhoicas/biblioteca-web/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando aplicación")

	api, err := apiclient.New(apiclient.Config{
		BaseURL:         cfg.API.BaseURL,
		Timeout:         cfg.API.Timeout(),
		DefaultPageSize: cfg.API.DefaultPageSize,
		MaxPageSize:     cfg.API.MaxPageSize,
		Logger:          log.Zerolog(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("cliente de la API")
	}

	services := catalog.NewServices(api)
	authUC := auth.NewAuthUseCase(api, cfg.JWT.Secret)
	sessions := httpRouter.NewSessionStore(httpRouter.SessionOptions{
		CookieName: cfg.Session.CookieName,
		Expiration: cfg.Session.Expiration(),
		Secure:     cfg.Session.CookieSecure,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		// La API puede tardar hasta su timeout; la respuesta no debe cortarse antes.
		WriteTimeout: cfg.API.Timeout() + 5*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs (solo si existe el archivo generado)
	if _, err := os.Stat(cfg.Docs.Path); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.Path,
			Path:     "docs",
			Title:    "Biblioteca Web",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Services: services,
		AuthUC:   authUC,
		Sessions: sessions,
		Validate: httpRouter.NewValidator(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
