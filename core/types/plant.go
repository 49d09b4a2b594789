// Package types defines the chiller-payback data model.
// All entities are transient value structures recomputed on every evaluation;
// nothing here carries identity beyond a single calculation run.
package types

// PlantConfiguration describes the chiller plant being evaluated
type PlantConfiguration struct {
	// Chillers is the number of chiller units
	Chillers int `json:"chillers"`

	// CapacityPerChillerKW is the cooling capacity of one unit in kW
	CapacityPerChillerKW float64 `json:"capacity_per_chiller_kw"`

	// LoadFactor is the average load fraction during operating months (0,1]
	LoadFactor float64 `json:"load_factor"`

	// OperatingMonths is the number of cooling months per year (1-12)
	OperatingMonths int `json:"operating_months"`

	// DaysPerMonth is the assumed days per operating month (25-31)
	DaysPerMonth int `json:"days_per_month"`
}

// TotalCapacityKW returns the total installed cooling capacity
func (p PlantConfiguration) TotalCapacityKW() float64 {
	return float64(p.Chillers) * p.CapacityPerChillerKW
}

// AverageCoolingKW returns the average cooling load during operating months.
// Bounded by installed capacity since LoadFactor <= 1.
func (p PlantConfiguration) AverageCoolingKW() float64 {
	return p.TotalCapacityKW() * p.LoadFactor
}

// OperatingHours returns the annual operating hours (months * days * 24)
func (p PlantConfiguration) OperatingHours() float64 {
	return float64(p.OperatingMonths) * float64(p.DaysPerMonth) * 24
}
