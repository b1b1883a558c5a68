package dto

import (
	"bytes"
	"encoding/json"
)

// Mensajes de respaldo cuando la API no envía uno.
const (
	MsgOperationSuccessful = "Operation successful"
	MsgOperationFailed     = "Operation failed"
	MsgInvalidFormat       = "Invalid response format"
)

// OperationResult resultado normalizado de una llamada a la API de backend.
// Data es un valor JSON opaco: quien necesite un tipo concreto debe
// decodificarlo explícitamente con DecodeData.
type OperationResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Failed construye un resultado fallido. Un mensaje vacío se reemplaza por
// MsgOperationFailed para que success=false siempre lleve mensaje.
func Failed(message string) OperationResult {
	if message == "" {
		message = MsgOperationFailed
	}
	return OperationResult{Success: false, Message: message}
}

// HasData indica si el resultado trae un payload distinto de null.
func (r OperationResult) HasData() bool {
	trimmed := bytes.TrimSpace(r.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// DecodeData decodifica el payload opaco en T. Devuelve false si no hay
// payload o si no tiene la forma esperada.
func DecodeData[T any](r OperationResult) (T, bool) {
	var out T
	if !r.HasData() {
		return out, false
	}
	if err := json.Unmarshal(r.Data, &out); err != nil {
		return out, false
	}
	return out, true
}
