package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biblioteca-web/internal/domain/entity"
)

const bookCreated = `{"success":true,"message":"Libro creado","data":{"id":12}}`

// ──────────────────────────────────────────────────────────────────────────────
// Tests de sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaSesionYDevuelveIdentidad(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleLibrarian, nil)
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodGet, "/me", "", ck)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "la respuesta debe incluir user")
	assert.Equal(t, "7", user["id"])
	assert.Equal(t, entity.RoleLibrarian, user["role"])
}

func TestLogin_SinEmail_Retorna400(t *testing.T) {
	app, up := buildTestApp(t, entity.RoleAdmin, nil)

	resp := doRequest(t, app, http.MethodPost, "/login", `{"password":"x"}`, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION", body["code"])
	call, _ := up.lastCall()
	assert.Empty(t, call, "credenciales inválidas no deben llegar a la API")
}

func TestSinSesion_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin, nil)

	resp := doRequest(t, app, http.MethodGet, "/authors", "", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_SESSION", decode(t, resp)["code"])
}

func TestLogout_InvalidaLaSesion(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleAdmin, nil)
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodPost, "/logout", "", ck)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/me", "", ck)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole sobre las rutas de escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_BibliotecarioCreaLibro(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleLibrarian, map[string]string{"/Book/Create": bookCreated})
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodPost, "/books", `{"title":"Ficciones","isbn":"9789875666474","publishedYear":1944,"copies":3,"authorId":1,"editorialId":2,"genreId":3,"sectionId":4}`, ck)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRequireRole_LectorBloqueadoEnEscritura(t *testing.T) {
	app, up := buildTestApp(t, entity.RoleReader, map[string]string{"/Book/Create": bookCreated})
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodDelete, "/books/3", "", ck)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", decode(t, resp)["code"])
	call, _ := up.lastCall()
	assert.Equal(t, "POST /Auth/Login", call, "la API no debe recibir el borrado")
}

func TestRequireRole_BibliotecarioNoGestionaUsuarios(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleLibrarian, nil)
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodDelete, "/users/3", "", ck)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRole_TokenSinRol_Retorna401(t *testing.T) {
	app, _ := buildTestApp(t, "", nil)
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodDelete, "/authors/3", "", ck)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_ROLE", decode(t, resp)["code"])
}

func TestRequireRole_LectorPuedeReservar(t *testing.T) {
	app, _ := buildTestApp(t, entity.RoleReader, map[string]string{
		"/Reservation/Create": `{"success":true,"message":"Reserva registrada"}`,
	})
	ck := login(t, app)

	resp := doRequest(t, app, http.MethodPost, "/reservations", `{"userId":7,"bookId":12}`, ck)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Reserva registrada", decode(t, resp)["message"])
}
