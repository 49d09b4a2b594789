// Package engine orchestrates the evaluation of a scenario: one energy and
// cost summary per equipment option, then the payback comparison.
// The engine trusts its inputs; range clamping belongs to the boundary
// adapters and no error paths exist in the calculation itself.
package engine

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"chiller-payback/core/energy"
	"chiller-payback/core/types"
	"chiller-payback/internal/logging"
)

// Result is the complete outcome of one scenario evaluation
type Result struct {
	// TotalCapacityKW is the total installed cooling capacity
	TotalCapacityKW float64 `json:"total_capacity_kw"`

	// AverageCoolingKW is the average cooling load during operating months
	AverageCoolingKW float64 `json:"average_cooling_kw"`

	// OperatingHours is the annual operating hours
	OperatingHours float64 `json:"operating_hours"`

	// Currency is the currency all money figures are expressed in
	Currency types.Currency `json:"currency"`

	// Higher is the higher-efficiency option summary
	Higher types.OptionSummary `json:"higher"`

	// Lower is the lower-efficiency option summary
	Lower types.OptionSummary `json:"lower"`

	// Comparison is the savings and payback comparison
	Comparison types.ComparisonResult `json:"comparison"`
}

// Engine evaluates scenarios. It carries the part-load bin profile policy.
type Engine struct {
	bins energy.BinProfile
}

// New creates an engine with the given bin profile
func New(bins energy.BinProfile) *Engine {
	return &Engine{bins: bins}
}

// NewDefault creates an engine with the default bin profile
func NewDefault() *Engine {
	return New(energy.DefaultBinProfile())
}

// Evaluate produces the complete cost/energy summary for one equipment option
func (e *Engine) Evaluate(opt types.EquipmentOption, choice types.MethodChoice, plant types.PlantConfiguration, econ types.EconomicContext) types.OptionSummary {
	est := energy.Estimate(
		choice,
		opt.Efficiency,
		plant.TotalCapacityKW(),
		plant.AverageCoolingKW(),
		plant.OperatingHours(),
		e.bins,
	)

	annualCost := decimal.NewFromFloat(est.AnnualKWh).Mul(econ.ElectricityPrice)
	totalCapital := opt.PricePerChiller.
		Mul(decimal.NewFromInt(int64(plant.Chillers))).
		Mul(econ.FXRate)

	return types.OptionSummary{
		Label:        opt.Label,
		Estimate:     est,
		AnnualCost:   annualCost,
		TotalCapital: totalCapital,
	}
}

// Compare derives savings and payback from the two option summaries.
// Savings are framed as "what choosing the higher-efficiency option saves":
// positive AnnualSavings means it is cheaper to run, positive
// IncrementalCapital means it costs more upfront.
func Compare(higher, lower types.OptionSummary, operatingMonths int) types.ComparisonResult {
	result := types.ComparisonResult{
		AnnualSavings:      lower.AnnualCost.Sub(higher.AnnualCost),
		AnnualSavingsKWh:   lower.Estimate.AnnualKWh - higher.Estimate.AnnualKWh,
		IncrementalCapital: higher.TotalCapital.Sub(lower.TotalCapital),
	}

	// Payback is only defined when there are savings to recover a real extra
	// spend. Otherwise it stays nil: "no payback achievable", not zero.
	if result.AnnualSavings.IsPositive() && result.IncrementalCapital.IsPositive() && operatingMonths > 0 {
		years, _ := result.IncrementalCapital.Div(result.AnnualSavings).Float64()
		result.Payback = &types.PaybackPeriod{
			Years:           years,
			CalendarMonths:  years * 12,
			OperatingMonths: years * float64(operatingMonths),
		}
	}

	return result
}

// Run evaluates a complete scenario
func (e *Engine) Run(s *types.Scenario) *Result {
	higher := e.Evaluate(s.Higher, s.Method, s.Plant, s.Economics)
	lower := e.Evaluate(s.Lower, s.Method, s.Plant, s.Economics)

	logging.Debug("evaluated options",
		zap.String("higher_method", higher.Estimate.Method.String()),
		zap.String("lower_method", lower.Estimate.Method.String()),
		zap.Float64("higher_kwh", higher.Estimate.AnnualKWh),
		zap.Float64("lower_kwh", lower.Estimate.AnnualKWh),
	)

	return &Result{
		TotalCapacityKW:  s.Plant.TotalCapacityKW(),
		AverageCoolingKW: s.Plant.AverageCoolingKW(),
		OperatingHours:   s.Plant.OperatingHours(),
		Currency:         s.Economics.EnergyCurrency,
		Higher:           higher,
		Lower:            lower,
		Comparison:       Compare(higher, lower, s.Plant.OperatingMonths),
	}
}
