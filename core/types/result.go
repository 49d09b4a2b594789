// Package types - Evaluation results
package types

import "github.com/shopspring/decimal"

// EnergyEstimate is the annual energy figure for one option
type EnergyEstimate struct {
	// Method is the estimation method actually used
	Method Method `json:"method"`

	// AnnualKWh is the estimated annual electrical consumption
	AnnualKWh float64 `json:"annual_kwh"`

	// AverageDrawKW is the implied average electrical draw during operation
	AverageDrawKW float64 `json:"average_draw_kw"`
}

// OptionSummary is the complete cost and energy picture for one option
type OptionSummary struct {
	// Label identifies the option
	Label string `json:"label"`

	// Estimate is the annual energy estimate
	Estimate EnergyEstimate `json:"estimate"`

	// AnnualCost is the annual electricity cost in energy currency
	AnnualCost decimal.Decimal `json:"annual_cost"`

	// TotalCapital is the converted capital cost for all units in energy currency
	TotalCapital decimal.Decimal `json:"total_capital"`
}

// PaybackPeriod holds the payback figures when payback is achievable
type PaybackPeriod struct {
	// Years is the payback period in years
	Years float64 `json:"years"`

	// CalendarMonths counts real elapsed months, non-operating months included
	CalendarMonths float64 `json:"calendar_months"`

	// OperatingMonths counts only months the plant runs and accrues savings
	OperatingMonths float64 `json:"operating_months"`
}

// ComparisonResult compares the higher-efficiency option against the lower one
type ComparisonResult struct {
	// AnnualSavings is lower.AnnualCost - higher.AnnualCost; positive means
	// the higher-efficiency option is cheaper to run
	AnnualSavings decimal.Decimal `json:"annual_savings"`

	// AnnualSavingsKWh is the annual energy saving
	AnnualSavingsKWh float64 `json:"annual_savings_kwh"`

	// IncrementalCapital is higher.TotalCapital - lower.TotalCapital; positive
	// means the higher-efficiency option costs more upfront
	IncrementalCapital decimal.Decimal `json:"incremental_capital"`

	// Payback is nil when savings or incremental capital is non-positive,
	// meaning no payback is achievable under current inputs. Distinct from an
	// immediate payback, which would be a zero-valued period.
	Payback *PaybackPeriod `json:"payback,omitempty"`
}

// Scenario is the complete typed input for one evaluation
type Scenario struct {
	// Plant describes the chiller plant
	Plant PlantConfiguration `json:"plant"`

	// Economics carries prices and the FX rate
	Economics EconomicContext `json:"economics"`

	// Method is the requested estimation method
	Method MethodChoice `json:"method"`

	// Higher is the higher-efficiency option
	Higher EquipmentOption `json:"higher"`

	// Lower is the lower-efficiency option
	Lower EquipmentOption `json:"lower"`
}
