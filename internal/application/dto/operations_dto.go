package dto

import "github.com/shopspring/decimal"

// ExchangeRateItem tasa de cambio devuelta por la API de operaciones.
// Date llega con el formato del proveedor (dd-MM-yyyy).
type ExchangeRateItem struct {
	Rate decimal.Decimal `json:"rate"`
	Date string          `json:"date"`
}

// LegalHolidayItem feriado legal devuelto por la API de operaciones.
type LegalHolidayItem struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// ExchangeRateQuery query de GET /api/v1/operations/exchange-rate.
type ExchangeRateQuery struct {
	Date         string `query:"date" validate:"required,datetime=2006-01-02"`
	CurrencyCode string `query:"currencyCode" validate:"required,min=2,max=5"`
}

// LegalHolidaysQuery query de GET /api/v1/operations/legal-holidays.
type LegalHolidaysQuery struct {
	FromDate string `query:"fromDate" validate:"required,datetime=2006-01-02"`
	ToDate   string `query:"toDate" validate:"required,datetime=2006-01-02"`
}
