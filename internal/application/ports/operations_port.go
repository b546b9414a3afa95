package ports

import (
	"context"
	"time"

	"github.com/arquetipo/clientes-api/internal/application/dto"
)

// OperationsAPI define el puerto de salida hacia la API externa de operaciones
// financieras (tasas de cambio y feriados legales).
// Las implementaciones garantizan que Data nunca es nil en una respuesta exitosa.
type OperationsAPI interface {
	GetExchangeRate(ctx context.Context, date time.Time, currencyCode string) (dto.Envelope[dto.ExchangeRateItem], error)
	GetLegalHolidays(ctx context.Context, from, to time.Time) (dto.Envelope[dto.LegalHolidayItem], error)
}
