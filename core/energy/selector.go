// Package energy implements energy method selection and annual energy
// estimation for a chiller plant option.
//
// Method selection degrades gracefully: missing optional ratings never raise
// an error, they fall through to the next method in the chain
// (part-load -> IPLV -> full-load).
package energy

import (
	"chiller-payback/core/types"
)

// Params carries the efficiency figures for the selected method.
// Only the fields relevant to the method are populated.
type Params struct {
	// FullLoadEER is set for the full-load and part-load methods
	FullLoadEER float64 `json:"full_load_eer,omitempty"`

	// IPLV is set for the IPLV method
	IPLV float64 `json:"iplv,omitempty"`

	// EER75, EER50 and EER25 are set for the part-load method
	EER75 float64 `json:"eer_75,omitempty"`
	EER50 float64 `json:"eer_50,omitempty"`
	EER25 float64 `json:"eer_25,omitempty"`
}

// Select decides which estimation method to use for a profile.
//
// Decision table (requested choice x availability):
//
//	part-load requested: part-load if all four points available,
//	                     else IPLV if available, else full-load.
//	iplv requested:      IPLV if available, else full-load.
//	auto:                most granular available data wins.
func Select(choice types.MethodChoice, profile types.EfficiencyProfile) (types.Method, Params) {
	switch choice {
	case types.ChoicePartLoad:
		if profile.PartLoadAvailable() {
			return types.MethodPartLoad, partLoadParams(profile)
		}
		if profile.IPLVAvailable() {
			return types.MethodIPLV, Params{IPLV: profile.IPLV.Value}
		}
		return types.MethodFullLoad, Params{FullLoadEER: profile.FullLoadEER}

	case types.ChoiceIPLVOnly:
		if profile.IPLVAvailable() {
			return types.MethodIPLV, Params{IPLV: profile.IPLV.Value}
		}
		return types.MethodFullLoad, Params{FullLoadEER: profile.FullLoadEER}

	default:
		// auto
		if profile.PartLoadAvailable() {
			return types.MethodPartLoad, partLoadParams(profile)
		}
		if profile.IPLVAvailable() {
			return types.MethodIPLV, Params{IPLV: profile.IPLV.Value}
		}
		return types.MethodFullLoad, Params{FullLoadEER: profile.FullLoadEER}
	}
}

func partLoadParams(profile types.EfficiencyProfile) Params {
	return Params{
		FullLoadEER: profile.FullLoadEER,
		EER75:       profile.EER75.Value,
		EER50:       profile.EER50.Value,
		EER25:       profile.EER25.Value,
	}
}
