// Package scenario is the boundary adapter between raw numeric inputs and the
// typed data model. Raw inputs use the zero-sentinel convention for optional
// ratings and may be out of range; this package clamps them onto the
// documented ranges and converts sentinels into explicit Rating values.
// Core packages never see raw inputs.
package scenario

import (
	"github.com/shopspring/decimal"

	"chiller-payback/core/types"
	"chiller-payback/internal/errors"
)

// Input ranges, taken from the original collection layer's widget bounds.
const (
	minChillers = 1
	maxChillers = 10

	minCapacityKW = 50.0
	maxCapacityKW = 50000.0

	minLoadFactor = 0.01
	maxLoadFactor = 1.0

	minMonths = 1
	maxMonths = 12

	minDaysPerMonth     = 25
	maxDaysPerMonth     = 31
	defaultDaysPerMonth = 30

	minElectricityPrice = 0.0001
	maxElectricityPrice = 5.0

	minFXRate = 0.01
	maxFXRate = 20.0

	minCapital = 0.0
	maxCapital = 2000000.0

	minFullEER = 0.1
	maxEER     = 20.0
)

// RawPlant is the unclamped plant input
type RawPlant struct {
	Chillers             int     `json:"chillers"`
	CapacityPerChillerKW float64 `json:"capacity_per_chiller_kw"`
	LoadFactor           float64 `json:"load_factor"`
	OperatingMonths      int     `json:"operating_months"`
	DaysPerMonth         int     `json:"days_per_month"`
}

// RawEconomics is the unclamped economic input
type RawEconomics struct {
	ElectricityPrice float64 `json:"electricity_price"`
	FXRate           float64 `json:"fx_rate"`
}

// RawOption is one equipment option with zero-sentinel optional ratings
type RawOption struct {
	PricePerChiller float64 `json:"price_per_chiller"`
	FullLoadEER     float64 `json:"eer_full"`
	IPLV            float64 `json:"iplv"`
	EER75           float64 `json:"eer_75"`
	EER50           float64 `json:"eer_50"`
	EER25           float64 `json:"eer_25"`
}

// Raw is a complete unclamped scenario
type Raw struct {
	Plant     RawPlant     `json:"plant"`
	Economics RawEconomics `json:"economics"`
	Method    string       `json:"method"`
	Higher    RawOption    `json:"higher"`
	Lower     RawOption    `json:"lower"`
}

// Normalize clamps a raw scenario onto the valid ranges and produces the
// typed scenario the engine consumes.
func Normalize(raw *Raw, energyCur, capitalCur types.Currency) (*types.Scenario, error) {
	method, err := ParseMethodChoice(raw.Method)
	if err != nil {
		return nil, err
	}

	days := raw.Plant.DaysPerMonth
	if days == 0 {
		days = defaultDaysPerMonth
	}

	return &types.Scenario{
		Plant: types.PlantConfiguration{
			Chillers:             clampInt(raw.Plant.Chillers, minChillers, maxChillers),
			CapacityPerChillerKW: clamp(raw.Plant.CapacityPerChillerKW, minCapacityKW, maxCapacityKW),
			LoadFactor:           clamp(raw.Plant.LoadFactor, minLoadFactor, maxLoadFactor),
			OperatingMonths:      clampInt(raw.Plant.OperatingMonths, minMonths, maxMonths),
			DaysPerMonth:         clampInt(days, minDaysPerMonth, maxDaysPerMonth),
		},
		Economics: types.EconomicContext{
			ElectricityPrice: decimal.NewFromFloat(clamp(raw.Economics.ElectricityPrice, minElectricityPrice, maxElectricityPrice)),
			FXRate:           decimal.NewFromFloat(clamp(raw.Economics.FXRate, minFXRate, maxFXRate)),
			EnergyCurrency:   energyCur,
			CapitalCurrency:  capitalCur,
		},
		Method: method,
		Higher: normalizeOption("higher", raw.Higher),
		Lower:  normalizeOption("lower", raw.Lower),
	}, nil
}

// ParseMethodChoice maps a raw method string onto a MethodChoice.
// Empty means auto.
func ParseMethodChoice(s string) (types.MethodChoice, error) {
	switch s {
	case "", "auto":
		return types.ChoiceAuto, nil
	case "iplv", "iplv-only":
		return types.ChoiceIPLVOnly, nil
	case "part-load", "partload":
		return types.ChoicePartLoad, nil
	default:
		return "", errors.Newf(errors.TypeInput, "unknown method %q (want auto, iplv or part-load)", s)
	}
}

func normalizeOption(label string, raw RawOption) types.EquipmentOption {
	return types.EquipmentOption{
		Label:           label,
		PricePerChiller: decimal.NewFromFloat(clamp(raw.PricePerChiller, minCapital, maxCapital)),
		Efficiency: types.EfficiencyProfile{
			FullLoadEER: clamp(raw.FullLoadEER, minFullEER, maxEER),
			IPLV:        optionalRating(raw.IPLV),
			EER75:       optionalRating(raw.EER75),
			EER50:       optionalRating(raw.EER50),
			EER25:       optionalRating(raw.EER25),
		},
	}
}

// optionalRating converts a zero-sentinel input into a Rating
func optionalRating(v float64) types.Rating {
	if v <= 0 {
		return types.Rating{}
	}
	return types.RatingOf(clamp(v, 0, maxEER))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
