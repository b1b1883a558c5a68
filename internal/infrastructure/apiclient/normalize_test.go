package apiclient_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
	"github.com/jhoicas/biblioteca-web/internal/infrastructure/apiclient"
)

func TestNormalize_ErroresHTTP(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message de la API", 500, `{"message":"db down"}`, "db down"},
		{"cuerpo vacío", 500, ``, "Server error (HTTP 500)"},
		{"clave en mayúsculas", 400, `{"Message":"nombre requerido"}`, "nombre requerido"},
		{"problem details usa title", 400, `{"title":"One or more validation errors occurred.","status":400}`, "One or more validation errors occurred."},
		{"message vacío cae a title", 409, `{"message":"","title":"Conflicto"}`, "Conflicto"},
		{"no es JSON", 502, `<html>Bad Gateway</html>`, "Server error (HTTP 502)"},
		{"JSON no objeto", 404, `"not found"`, "Server error (HTTP 404)"},
		{"message no string", 500, `{"message":42}`, "Server error (HTTP 500)"},
		{"no encontrado", 404, `{"message":"not found"}`, "not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := apiclient.Normalize(tc.status, []byte(tc.body))
			assert.False(t, got.Success)
			assert.Equal(t, tc.message, got.Message)
			assert.Nil(t, got.Data)
		})
	}
}

func TestNormalize_Respuestas2xx(t *testing.T) {
	t.Run("éxito con data", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"success":true,"message":"Autor creado","data":{"id":7}}`))
		assert.True(t, got.Success)
		assert.Equal(t, "Autor creado", got.Message)
		assert.JSONEq(t, `{"id":7}`, string(got.Data))
	})

	t.Run("éxito sin message usa valor por defecto", func(t *testing.T) {
		got := apiclient.Normalize(201, []byte(`{"success":true}`))
		assert.True(t, got.Success)
		assert.Equal(t, dto.MsgOperationSuccessful, got.Message)
		assert.False(t, got.HasData())
	})

	t.Run("fallo sin message usa valor por defecto", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"success":false}`))
		assert.False(t, got.Success)
		assert.Equal(t, dto.MsgOperationFailed, got.Message)
	})

	t.Run("success ausente es fallo", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"message":"hecho"}`))
		assert.False(t, got.Success)
		assert.Equal(t, "hecho", got.Message)
	})

	t.Run("success no booleano es fallo", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"success":"true"}`))
		assert.False(t, got.Success)
		assert.Equal(t, dto.MsgOperationFailed, got.Message)
	})

	t.Run("data null se descarta", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"success":true,"data":null}`))
		assert.Nil(t, got.Data)
	})

	t.Run("claves sin distinguir mayúsculas", func(t *testing.T) {
		got := apiclient.Normalize(200, []byte(`{"Success":true,"Message":"ok","Data":[1,2]}`))
		assert.True(t, got.Success)
		assert.Equal(t, "ok", got.Message)
		assert.JSONEq(t, `[1,2]`, string(got.Data))
	})
}

// Cuerpos malformados nunca propagan error: siempre success=false.
func TestNormalize_CuerposMalformados(t *testing.T) {
	bodies := []string{``, `{"success":tr`, `[1,2,3]`, `true`, `null`, `"texto"`, `{{}`}
	for _, body := range bodies {
		got := apiclient.Normalize(200, []byte(body))
		assert.False(t, got.Success, "body %q", body)
		assert.Equal(t, dto.MsgInvalidFormat, got.Message, "body %q", body)
	}
}

func TestNormalize_EsDeterminista(t *testing.T) {
	body := []byte(`{"success":true,"message":"ok","data":{"a":1}}`)
	first := apiclient.Normalize(200, body)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, apiclient.Normalize(200, body))
	}
}

func TestNormalize_VariantesDeMayusculas_ResultadoEstable(t *testing.T) {
	errBody := []byte(`{"Message":"a","MESSAGE":"b","mEssage":"c"}`)
	okBody := []byte(`{"Success":false,"SUCCESS":true,"Message":"x","MESSAGE":"y"}`)

	for i := 0; i < 200; i++ {
		r := apiclient.Normalize(500, errBody)
		assert.Equal(t, "b", r.Message, "gana la variante menor en orden de bytes")

		r = apiclient.Normalize(200, okBody)
		assert.True(t, r.Success)
		assert.Equal(t, "y", r.Message)
	}
}
