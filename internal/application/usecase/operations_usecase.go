package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arquetipo/clientes-api/internal/application/dto"
	"github.com/arquetipo/clientes-api/internal/application/ports"
	"github.com/arquetipo/clientes-api/internal/domain"
)

// maxHolidayRange rango máximo aceptado para la consulta de feriados.
const maxHolidayRange = 366 * 24 * time.Hour

// OperationsUseCase expone tasas de cambio y feriados legales de la API de operaciones.
// Aplica un timeout por llamada además del que tenga el contexto del request.
type OperationsUseCase struct {
	api     ports.OperationsAPI
	timeout time.Duration
}

// NewOperationsUseCase construye el caso de uso inyectando el puerto OperationsAPI.
func NewOperationsUseCase(api ports.OperationsAPI, timeout time.Duration) *OperationsUseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OperationsUseCase{api: api, timeout: timeout}
}

// ExchangeRate valida la moneda y delega en la API externa.
func (uc *OperationsUseCase) ExchangeRate(ctx context.Context, date time.Time, currencyCode string) (dto.Envelope[dto.ExchangeRateItem], error) {
	code := strings.ToUpper(strings.TrimSpace(currencyCode))
	if code == "" {
		return dto.Envelope[dto.ExchangeRateItem]{}, fmt.Errorf("currencyCode es obligatorio: %w", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	env, err := uc.api.GetExchangeRate(ctx, date, code)
	if err != nil {
		return dto.Envelope[dto.ExchangeRateItem]{}, fmt.Errorf("tasa de cambio: %w", err)
	}
	return env, nil
}

// LegalHolidays valida el rango (from <= to, máximo un año) y delega en la API externa.
func (uc *OperationsUseCase) LegalHolidays(ctx context.Context, from, to time.Time) (dto.Envelope[dto.LegalHolidayItem], error) {
	if to.Before(from) {
		return dto.Envelope[dto.LegalHolidayItem]{}, fmt.Errorf("toDate anterior a fromDate: %w", domain.ErrInvalidInput)
	}
	if to.Sub(from) > maxHolidayRange {
		return dto.Envelope[dto.LegalHolidayItem]{}, fmt.Errorf("rango de fechas mayor a un año: %w", domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	env, err := uc.api.GetLegalHolidays(ctx, from, to)
	if err != nil {
		return dto.Envelope[dto.LegalHolidayItem]{}, fmt.Errorf("feriados legales: %w", err)
	}
	return env, nil
}
