package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/biblioteca-web/internal/domain"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	API     APIConfig
	Session SessionConfig
	JWT     JWTConfig
	Docs    DocsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig acceso a la API REST de backend.
type APIConfig struct {
	BaseURL         string // obligatorio, URL absoluta http(s)
	TimeoutSeconds  int
	DefaultPageSize int
	MaxPageSize     int
}

// Timeout devuelve el timeout por llamada como time.Duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// SessionConfig cookie de sesión que guarda el token de la API.
type SessionConfig struct {
	CookieName        string
	ExpirationMinutes int
	CookieSecure      bool
}

// Expiration devuelve la duración de la sesión.
func (c SessionConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationMinutes) * time.Minute
}

// JWTConfig verificación de los tokens emitidos por la API.
// Con Secret vacío los claims se leen sin verificar la firma (la API es quien valida).
type JWTConfig struct {
	Secret string
}

// DocsConfig documentación Swagger opcional.
type DocsConfig struct {
	Path string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Falla si API_BASE_URL falta o no es una URL absoluta.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "biblioteca-web"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		API: APIConfig{
			BaseURL:         getString(v, "API_BASE_URL", ""),
			TimeoutSeconds:  getInt(v, "API_TIMEOUT_SECONDS", 30),
			DefaultPageSize: getInt(v, "API_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getInt(v, "API_MAX_PAGE_SIZE", 100),
		},
		Session: SessionConfig{
			CookieName:        getString(v, "SESSION_COOKIE_NAME", "biblioteca_session"),
			ExpirationMinutes: getInt(v, "SESSION_EXPIRATION_MINUTES", 60),
			CookieSecure:      getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
		},
		Docs: DocsConfig{
			Path: getString(v, "DOCS_PATH", "./docs/swagger.json"),
		},
	}

	if err := cfg.API.validate(); err != nil {
		return nil, err
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Session.ExpirationMinutes <= 0 {
		cfg.Session.ExpirationMinutes = 60
	}
	return cfg, nil
}

func (c APIConfig) validate() error {
	raw := strings.TrimSpace(c.BaseURL)
	if raw == "" {
		return domain.ErrMissingBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", domain.ErrInvalidBaseURL, raw)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
