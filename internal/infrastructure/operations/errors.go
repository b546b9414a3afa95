package operations

import (
	"errors"
	"fmt"
)

var (
	// ErrUpstream lo cumple todo *UpstreamError (usar errors.Is).
	ErrUpstream = errors.New("operaciones: respuesta HTTP no exitosa")
	// ErrMalformedPayload el cuerpo de una respuesta 2xx no es un sobre JSON válido.
	ErrMalformedPayload = errors.New("operaciones: respuesta con formato inválido")
)

// UpstreamError respuesta no 2xx de la API de operaciones. Incluye un fallo de
// autenticación (401/403): no hay un tipo de error aparte para eso.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("operaciones: HTTP %d: %s", e.StatusCode, e.Body)
}

// Is permite errors.Is(err, ErrUpstream).
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
