// Package energy - Annual energy estimation
package energy

import (
	"chiller-payback/core/types"
)

// AnnualFullLoadKWh estimates annual energy from the full-load EER alone.
// Simplest and least accurate; used as the last resort in the fallback chain.
func AnnualFullLoadKWh(loadKW, hours, eer float64) float64 {
	return (loadKW / eer) * hours
}

// AnnualIPLVKWh estimates annual energy treating IPLV as a single effective
// seasonal efficiency rating substituting for EER.
func AnnualIPLVKWh(loadKW, hours, iplv float64) float64 {
	return (loadKW / iplv) * hours
}

// AnnualPartLoadKWh estimates annual energy across four discrete load bins at
// 100/75/50/25% of installed capacity, weighted by the bin profile.
//
// The nominal bin loads are scaled by a single factor so their weighted
// average equals the actual average cooling load. This keeps the 4-point
// method consistent with the single-number load factor the simpler methods
// use, at the cost of not modeling how load factor maps to time-at-each-bin.
func AnnualPartLoadKWh(capacityKW, loadKW, hours float64, p Params, bins BinProfile) float64 {
	load100 := capacityKW * 1.00
	load75 := capacityKW * 0.75
	load50 := capacityKW * 0.50
	load25 := capacityKW * 0.25

	avgFromBins := bins.Weight100*load100 +
		bins.Weight75*load75 +
		bins.Weight50*load50 +
		bins.Weight25*load25

	// Guard the division; capacity is guaranteed positive upstream so this
	// only matters for degenerate inputs.
	scale := 1.0
	if avgFromBins > 0 {
		scale = loadKW / avgFromBins
	}

	load100 *= scale
	load75 *= scale
	load50 *= scale
	load25 *= scale

	kwh := 0.0
	kwh += (load100 / p.FullLoadEER) * (hours * bins.Weight100)
	kwh += (load75 / p.EER75) * (hours * bins.Weight75)
	kwh += (load50 / p.EER50) * (hours * bins.Weight50)
	kwh += (load25 / p.EER25) * (hours * bins.Weight25)
	return kwh
}

// AverageDrawKW derives the average electrical draw from an annual figure.
// Returns 0 when hours is 0; input constraints keep hours positive in practice.
func AverageDrawKW(kwh, hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	return kwh / hours
}

// Estimate selects a method for the profile and produces the complete energy
// estimate for one option.
func Estimate(choice types.MethodChoice, profile types.EfficiencyProfile, capacityKW, loadKW, hours float64, bins BinProfile) types.EnergyEstimate {
	method, params := Select(choice, profile)

	var kwh float64
	switch method {
	case types.MethodPartLoad:
		kwh = AnnualPartLoadKWh(capacityKW, loadKW, hours, params, bins)
	case types.MethodIPLV:
		kwh = AnnualIPLVKWh(loadKW, hours, params.IPLV)
	default:
		kwh = AnnualFullLoadKWh(loadKW, hours, params.FullLoadEER)
	}

	return types.EnergyEstimate{
		Method:        method,
		AnnualKWh:     kwh,
		AverageDrawKW: AverageDrawKW(kwh, hours),
	}
}
