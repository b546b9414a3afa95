package dto

// Valores de status/comment que usa el API en sus sobres.
const (
	StatusOK      = "200"
	CommentOK     = "OK"
	CommentNoData = "Sin datos"
)

// Envelope sobre genérico de respuesta: lo devuelve el API de clientes y también
// la API de operaciones externa, con los mismos nombres de campo JSON.
type Envelope[T any] struct {
	Status    string `json:"status"`
	Comment   string `json:"comment"`
	SessionID string `json:"sessionId"`
	Data      []T    `json:"data"`
}

// NewEnvelope arma un sobre exitoso. data nil se convierte en slice vacío.
func NewEnvelope[T any](sessionID string, data []T) Envelope[T] {
	if data == nil {
		data = []T{}
	}
	comment := CommentOK
	if len(data) == 0 {
		comment = CommentNoData
	}
	return Envelope[T]{
		Status:    StatusOK,
		Comment:   comment,
		SessionID: sessionID,
		Data:      data,
	}
}
