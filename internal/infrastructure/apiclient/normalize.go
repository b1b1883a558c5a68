package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/biblioteca-web/internal/application/dto"
)

// envelope campos reconocidos del wrapper {success, message, data}.
// Cada campo se lee por separado para tolerar tipos inesperados en los demás.
type envelope struct {
	Success    bool
	HasSuccess bool // presente y booleano
	Message    string
	Title      string
	Data       json.RawMessage // nil si está ausente o es null
}

// parseEnvelope interpreta body como objeto JSON. Devuelve false si el cuerpo
// no es JSON válido o no es un objeto; nunca propaga el error de parseo.
func parseEnvelope(body []byte) (envelope, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return envelope{}, false
	}

	var env envelope
	if raw, ok := lookupField(fields, "success"); ok {
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil && !isNull(raw) {
			env.Success = b
			env.HasSuccess = true
		}
	}
	env.Message = stringField(fields, "message")
	env.Title = stringField(fields, "title")
	if raw, ok := lookupField(fields, "data"); ok && !isNull(raw) {
		env.Data = raw
	}
	return env, true
}

// lookupField busca una clave sin distinguir mayúsculas; la coincidencia exacta
// tiene prioridad. Con varias variantes de la clave gana la menor en orden
// de bytes, así el resultado no depende del orden de iteración del map.
func lookupField(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	if raw, ok := fields[key]; ok {
		return raw, true
	}
	match, found := "", false
	for k := range fields {
		if strings.EqualFold(k, key) && (!found || k < match) {
			match, found = k, true
		}
	}
	if !found {
		return nil, false
	}
	return fields[match], true
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := lookupField(fields, key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// Normalize convierte una respuesta HTTP (código + cuerpo) en exactamente un
// OperationResult, sin importar la forma del JSON. Es una función pura.
func Normalize(statusCode int, body []byte) dto.OperationResult {
	if !isSuccessStatus(statusCode) {
		return dto.Failed(errorMessage(statusCode, body))
	}

	env, ok := parseEnvelope(body)
	if !ok {
		return dto.Failed(dto.MsgInvalidFormat)
	}

	message := env.Message
	if message == "" {
		if env.Success {
			message = dto.MsgOperationSuccessful
		} else {
			message = dto.MsgOperationFailed
		}
	}
	return dto.OperationResult{
		Success: env.Success,
		Message: message,
		Data:    env.Data,
	}
}

// errorMessage extrae el mejor mensaje de una respuesta no-2xx:
// message, luego title (problem details), luego uno sintetizado.
func errorMessage(statusCode int, body []byte) string {
	if env, ok := parseEnvelope(body); ok {
		if env.Message != "" {
			return env.Message
		}
		if env.Title != "" {
			return env.Title
		}
	}
	return fmt.Sprintf("Server error (HTTP %d)", statusCode)
}
