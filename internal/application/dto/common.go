package dto

// Valores por defecto de paginación para listados v2.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// PageRequest paginación para listados (query ?page=&pageSize=).
type PageRequest struct {
	Page     int `query:"page" validate:"min=0,max=1000000"`
	PageSize int `query:"pageSize" validate:"min=0,max=100"`
}

// Normalize aplica valores por defecto si Page/PageSize son cero o están fuera de rango.
func (p *PageRequest) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details []ValidationIssue `json:"details,omitempty"`
}

// ValidationIssue detalle por campo de un error de validación.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
