package hcl

import (
	"testing"

	"chiller-payback/internal/errors"
)

const sampleScenario = `
plant {
  chillers             = 1
  capacity_per_chiller = 1000
  load_factor          = 0.35
  operating_months     = 5
  days_per_month       = 30
}

economics {
  electricity_price = 0.30
  fx_rate           = 3.16
}

method = "auto"

option "higher" {
  price_per_chiller = 137000
  eer_full          = 3.3
  eer_75            = 3.5
  eer_50            = 3.8
  eer_25            = 3.0
}

option "lower" {
  price_per_chiller = 115000
  eer_full          = 2.7
  iplv              = 3.1
}
`

func TestScanSampleScenario(t *testing.T) {
	raw, err := NewScanner().Scan([]byte(sampleScenario), "scenario.hcl")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if raw.Plant.Chillers != 1 || raw.Plant.CapacityPerChillerKW != 1000 {
		t.Errorf("plant = %+v", raw.Plant)
	}
	if raw.Plant.LoadFactor != 0.35 || raw.Plant.OperatingMonths != 5 || raw.Plant.DaysPerMonth != 30 {
		t.Errorf("plant = %+v", raw.Plant)
	}
	if raw.Economics.ElectricityPrice != 0.30 || raw.Economics.FXRate != 3.16 {
		t.Errorf("economics = %+v", raw.Economics)
	}
	if raw.Method != "auto" {
		t.Errorf("method = %q, want auto", raw.Method)
	}
	if raw.Higher.PricePerChiller != 137000 || raw.Higher.FullLoadEER != 3.3 {
		t.Errorf("higher = %+v", raw.Higher)
	}
	if raw.Higher.EER75 != 3.5 || raw.Higher.EER50 != 3.8 || raw.Higher.EER25 != 3.0 {
		t.Errorf("higher part-load points = %+v", raw.Higher)
	}
	if raw.Higher.IPLV != 0 {
		t.Errorf("higher IPLV = %v, want zero sentinel", raw.Higher.IPLV)
	}
	if raw.Lower.IPLV != 3.1 || raw.Lower.FullLoadEER != 2.7 {
		t.Errorf("lower = %+v", raw.Lower)
	}
}

func TestScanMissingBlocks(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ``},
		{"no economics", `
plant {
  chillers             = 1
  capacity_per_chiller = 1000
  load_factor          = 0.35
  operating_months     = 5
}
option "higher" {
  price_per_chiller = 1
  eer_full          = 3.3
}
option "lower" {
  price_per_chiller = 1
  eer_full          = 2.7
}
`},
		{"only one option", `
plant {
  chillers             = 1
  capacity_per_chiller = 1000
  load_factor          = 0.35
  operating_months     = 5
}
economics {
  electricity_price = 0.30
  fx_rate           = 3.16
}
option "higher" {
  price_per_chiller = 1
  eer_full          = 3.3
}
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewScanner().Scan([]byte(tc.src), tc.name+".hcl")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.IsType(err, errors.TypeScenario) {
				t.Errorf("expected SCENARIO_ERROR, got %v", err)
			}
		})
	}
}

func TestScanUnknownOptionRole(t *testing.T) {
	src := sampleScenario + `
option "middle" {
  price_per_chiller = 1
  eer_full          = 3.0
}
`
	_, err := NewScanner().Scan([]byte(src), "scenario.hcl")
	if err == nil {
		t.Fatal("expected an error for unknown option role")
	}
	if !errors.IsType(err, errors.TypeScenario) {
		t.Errorf("expected SCENARIO_ERROR, got %v", err)
	}
}

func TestScanMalformedSource(t *testing.T) {
	_, err := NewScanner().Scan([]byte(`plant { chillers = `), "broken.hcl")
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("expected PARSING_ERROR, got %v", err)
	}
}

func TestScanRejectsUnknownAttributes(t *testing.T) {
	src := sampleScenario + "\nwarranty_years = 5\n"
	_, err := NewScanner().Scan([]byte(src), "scenario.hcl")
	if err == nil {
		t.Fatal("expected an error for unknown attribute")
	}
}

func TestScanNonNumericAttribute(t *testing.T) {
	src := `
plant {
  chillers             = "one"
  capacity_per_chiller = 1000
  load_factor          = 0.35
  operating_months     = 5
}
economics {
  electricity_price = 0.30
  fx_rate           = 3.16
}
option "higher" {
  price_per_chiller = 1
  eer_full          = 3.3
}
option "lower" {
  price_per_chiller = 1
  eer_full          = 2.7
}
`
	_, err := NewScanner().Scan([]byte(src), "scenario.hcl")
	if err == nil {
		t.Fatal("expected an error for non-numeric attribute")
	}
	if !errors.IsType(err, errors.TypeScenario) {
		t.Errorf("expected SCENARIO_ERROR, got %v", err)
	}
}
