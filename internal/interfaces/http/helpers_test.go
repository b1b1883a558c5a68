package http_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biblioteca-web/internal/application/auth"
	"github.com/jhoicas/biblioteca-web/internal/application/catalog"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
	apphttp "github.com/jhoicas/biblioteca-web/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/biblioteca-web/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "biblioteca-api-test"
	testExpMin    = 60
)

// upstream API de backend falsa: respuestas por path y registro de peticiones.
type upstream struct {
	mu        sync.Mutex
	role      string
	responses map[string]string
	calls     []string
	auths     []string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.calls = append(u.calls, r.Method+" "+r.URL.Path)
	u.auths = append(u.auths, r.Header.Get("Authorization"))

	w.Header().Set("Content-Type", "application/json")
	if r.URL.Path == "/Auth/Login" {
		tok, _ := pkgjwt.Generate(testJWTSecret, "7", "ana", "ana@biblioteca.test", u.role, testIssuer, testExpMin)
		_, _ = fmt.Fprintf(w, `{"success":true,"message":"Bienvenido","data":{"token":%q}}`, tok)
		return
	}
	body, ok := u.responses[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"title":"Not Found"}`))
		return
	}
	_, _ = w.Write([]byte(body))
}

func (u *upstream) lastCall() (string, string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.calls) == 0 {
		return "", ""
	}
	i := len(u.calls) - 1
	return u.calls[i], u.auths[i]
}

// buildTestApp arma el front end completo contra una API falsa. role es el rol
// que tendrá el token emitido en el login.
func buildTestApp(t *testing.T, role string, responses map[string]string) (*fiber.App, *upstream) {
	t.Helper()
	up := &upstream{role: role, responses: responses}
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)

	api, err := apiclient.New(apiclient.Config{BaseURL: srv.URL, Timeout: 2 * time.Second, Logger: zerolog.Nop()})
	require.NoError(t, err)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Services: catalog.NewServices(api),
		AuthUC:   auth.NewAuthUseCase(api, testJWTSecret),
		Sessions: apphttp.NewSessionStore(apphttp.SessionOptions{Expiration: time.Hour}),
	})
	return app, up
}

// login inicia sesión y devuelve la cookie de sesión.
func login(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp := doRequest(t, app, http.MethodPost, "/login", `{"email":"ana@biblioteca.test","password":"secreta123"}`, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, ck := range resp.Cookies() {
		if ck.Name == "biblioteca_session" {
			return ck
		}
	}
	t.Fatal("el login no devolvió cookie de sesión")
	return nil
}

// doRequest lanza una petición contra la app. body vacío = sin cuerpo.
func doRequest(t *testing.T, app *fiber.App, method, target, body string, cookie *http.Cookie) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}
