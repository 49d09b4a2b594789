// Package types - Equipment efficiency model
package types

import "github.com/shopspring/decimal"

// Rating is an optional efficiency figure. The zero-sentinel convention used
// by raw numeric inputs is confined to the boundary adapters; core logic only
// sees Rating values.
type Rating struct {
	// Value is the efficiency figure
	Value float64 `json:"value"`

	// Valid indicates the figure was supplied
	Valid bool `json:"valid"`
}

// RatingOf returns a supplied rating
func RatingOf(v float64) Rating {
	return Rating{Value: v, Valid: true}
}

// Available reports whether the rating is usable: supplied and strictly positive
func (r Rating) Available() bool {
	return r.Valid && r.Value > 0
}

// EfficiencyProfile holds the efficiency ratings supplied for one equipment
// option. FullLoadEER is required; the rest are optional.
type EfficiencyProfile struct {
	// FullLoadEER is the full-load (100%) efficiency rating
	FullLoadEER float64 `json:"full_load_eer"`

	// IPLV is the optional seasonal part-load rating
	IPLV Rating `json:"iplv"`

	// EER75 is the optional rating at 75% load
	EER75 Rating `json:"eer_75"`

	// EER50 is the optional rating at 50% load
	EER50 Rating `json:"eer_50"`

	// EER25 is the optional rating at 25% load
	EER25 Rating `json:"eer_25"`
}

// FullLoadAvailable reports whether the full-load rating is usable
func (p EfficiencyProfile) FullLoadAvailable() bool {
	return p.FullLoadEER > 0
}

// IPLVAvailable reports whether the IPLV rating is usable
func (p EfficiencyProfile) IPLVAvailable() bool {
	return p.IPLV.Available()
}

// PartLoadAvailable reports whether the 4-point method is usable.
// All four points are required; partial sets are not usable.
func (p EfficiencyProfile) PartLoadAvailable() bool {
	return p.FullLoadAvailable() &&
		p.EER75.Available() &&
		p.EER50.Available() &&
		p.EER25.Available()
}

// EquipmentOption is one competing chiller model
type EquipmentOption struct {
	// Label is a human-readable label ("higher", "lower")
	Label string `json:"label"`

	// PricePerChiller is the capital price of one unit in capital currency
	PricePerChiller decimal.Decimal `json:"price_per_chiller"`

	// Efficiency holds the option's efficiency ratings
	Efficiency EfficiencyProfile `json:"efficiency"`
}
