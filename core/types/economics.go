// Package types - Economic context
package types

import "github.com/shopspring/decimal"

// Currency represents a currency code
type Currency string

const (
	CurrencyGEL Currency = "GEL"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// EconomicContext carries the prices and FX rate for one evaluation.
// Operating costs accrue in the energy currency; equipment is quoted in the
// capital currency and converted through FXRate.
type EconomicContext struct {
	// ElectricityPrice is the unit price in energy currency per kWh
	ElectricityPrice decimal.Decimal `json:"electricity_price"`

	// FXRate converts capital currency to energy currency
	FXRate decimal.Decimal `json:"fx_rate"`

	// EnergyCurrency is the currency operating costs are expressed in
	EnergyCurrency Currency `json:"energy_currency"`

	// CapitalCurrency is the currency equipment prices are quoted in
	CapitalCurrency Currency `json:"capital_currency"`
}
