package apiclient_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
)

// fakeAPI servidor de la API de backend para tests: responde con status/body
// fijos y guarda las peticiones recibidas.
type fakeAPI struct {
	mu       sync.Mutex
	requests []*http.Request
	bodies   []string
	status   int
	body     string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buf, _ := io.ReadAll(r.Body)
	f.mu.Lock()
	f.requests = append(f.requests, r.Clone(r.Context()))
	f.bodies = append(f.bodies, string(buf))
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (f *fakeAPI) last(t *testing.T) (*http.Request, string) {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "la API no recibió peticiones")
	i := len(f.requests) - 1
	return f.requests[i], f.bodies[i]
}

// newTestClient levanta la API falsa y un cliente apuntando a ella.
func newTestClient(t *testing.T, status int, body string) (*apiclient.Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{status: status, body: body}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	c, err := apiclient.New(apiclient.Config{
		BaseURL: srv.URL + "/api",
		Timeout: 2 * time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	return c, api
}

// deadClient cliente apuntando a un puerto sin servidor (connection refused).
func deadClient(t *testing.T) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := apiclient.New(apiclient.Config{
		BaseURL: url,
		Timeout: time.Second,
		Logger:  zerolog.Nop(),
	})
	require.NoError(t, err)
	return c
}
