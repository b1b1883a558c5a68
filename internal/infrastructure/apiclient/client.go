package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/domain"
)

const (
	// DefaultTimeout timeout de red por llamada a la API de backend.
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes límite de lectura del cuerpo de respuesta.
	maxBodyBytes = 4 << 20
	// maxLoggedBody cantidad de bytes del cuerpo crudo que se registran en el log.
	maxLoggedBody = 512

	headerRequestID = "X-Request-ID"
)

// Config opciones del cliente de la API de backend.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	DefaultPageSize int
	MaxPageSize     int
	Logger          zerolog.Logger
	// HTTPClient opcional; si es nil se crea uno con Timeout.
	HTTPClient *http.Client
}

// Auth contexto inmutable de una llamada: token de sesión y correlación.
// Se pasa explícitamente en cada llamada; el cliente no guarda estado por usuario.
type Auth struct {
	Token     string
	RequestID string
}

// Client cliente HTTP hacia la API REST de la biblioteca.
// Es seguro para uso concurrente: no muta cabeceras compartidas.
type Client struct {
	baseURL         *url.URL
	httpClient      *http.Client
	defaultPageSize int
	maxPageSize     int
	log             zerolog.Logger
}

// rawResponse respuesta HTTP ya leída.
type rawResponse struct {
	Status int
	Body   []byte
}

// New construye el cliente. Una URL base ausente o relativa es un error de
// configuración y debe abortar el arranque.
func New(cfg Config) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	defaultSize := cfg.DefaultPageSize
	if defaultSize <= 0 {
		defaultSize = dto.DefaultPageSize
	}
	maxSize := cfg.MaxPageSize
	if maxSize <= 0 {
		maxSize = dto.MaxPageSize
	}
	return &Client{
		baseURL:         base,
		httpClient:      hc,
		defaultPageSize: defaultSize,
		maxPageSize:     maxSize,
		log:             cfg.Logger.With().Str("component", "apiclient").Logger(),
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrMissingBaseURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.ErrInvalidBaseURL
	}
	return u, nil
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// resolve construye la URL final a partir de la ruta del endpoint y los query params.
func (c *Client) resolve(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()
	return u.String()
}

// do ejecuta una única petición (sin reintentos) y lee el cuerpo completo.
// Solo devuelve error para fallos de transporte o payloads que no se pueden serializar.
func (c *Client) do(ctx context.Context, auth Auth, method, path string, query url.Values, payload any) (rawResponse, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return rawResponse{}, &payloadError{err: err}
		}
		body = bytes.NewReader(b)
	}

	target := c.resolve(path, query)
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return rawResponse{}, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(auth.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := auth.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(headerRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("elapsed", time.Since(start)).
			Msg("llamada a la API fallida")
		return rawResponse{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Msg("leer respuesta de la API")
		return rawResponse{}, err
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(start)).
		Msg("llamada a la API")

	return rawResponse{Status: resp.StatusCode, Body: raw}, nil
}

// logRejected registra una respuesta no exitosa con el cuerpo truncado.
// El cuerpo crudo solo va al log, nunca al usuario.
func (c *Client) logRejected(path string, status int, body []byte, message string) {
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody]
	}
	c.log.Warn().
		Str("path", path).
		Int("status", status).
		Str("body", string(body)).
		Msg(message)
}

// payloadError el payload no se pudo serializar; es un error del llamador,
// no de transporte.
type payloadError struct {
	err error
}

func (e *payloadError) Error() string { return "serializar payload: " + e.err.Error() }
func (e *payloadError) Unwrap() error { return e.err }

func isMarshalError(err error) bool {
	var pe *payloadError
	return errors.As(err, &pe)
}

func isSuccessStatus(status int) bool {
	return status >= 200 && status <= 299
}

func connectionError(err error) string {
	return "Connection error: " + err.Error()
}
