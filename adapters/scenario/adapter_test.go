package scenario

import (
	"testing"

	"chiller-payback/core/types"
	"chiller-payback/internal/errors"
)

func validRaw() *Raw {
	return &Raw{
		Plant: RawPlant{
			Chillers:             1,
			CapacityPerChillerKW: 1000,
			LoadFactor:           0.35,
			OperatingMonths:      5,
			DaysPerMonth:         30,
		},
		Economics: RawEconomics{
			ElectricityPrice: 0.30,
			FXRate:           3.16,
		},
		Method: "auto",
		Higher: RawOption{PricePerChiller: 137000, FullLoadEER: 3.3},
		Lower:  RawOption{PricePerChiller: 115000, FullLoadEER: 2.7},
	}
}

func TestNormalizeValidScenario(t *testing.T) {
	s, err := Normalize(validRaw(), types.CurrencyGEL, types.CurrencyEUR)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if s.Plant.Chillers != 1 || s.Plant.CapacityPerChillerKW != 1000 {
		t.Errorf("plant not preserved: %+v", s.Plant)
	}
	if s.Method != types.ChoiceAuto {
		t.Errorf("method = %q, want auto", s.Method)
	}
	if s.Economics.EnergyCurrency != types.CurrencyGEL || s.Economics.CapitalCurrency != types.CurrencyEUR {
		t.Errorf("currencies not applied: %+v", s.Economics)
	}
	if s.Higher.Label != "higher" || s.Lower.Label != "lower" {
		t.Errorf("labels = %q / %q", s.Higher.Label, s.Lower.Label)
	}
}

func TestNormalizeClampsRanges(t *testing.T) {
	raw := validRaw()
	raw.Plant.Chillers = 50
	raw.Plant.CapacityPerChillerKW = 10
	raw.Plant.LoadFactor = 1.7
	raw.Plant.OperatingMonths = 14
	raw.Plant.DaysPerMonth = 40
	raw.Economics.ElectricityPrice = -1
	raw.Economics.FXRate = 100
	raw.Higher.FullLoadEER = 0
	raw.Lower.PricePerChiller = 5e6

	s, err := Normalize(raw, types.CurrencyGEL, types.CurrencyEUR)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	if s.Plant.Chillers != 10 {
		t.Errorf("Chillers = %d, want 10", s.Plant.Chillers)
	}
	if s.Plant.CapacityPerChillerKW != 50 {
		t.Errorf("CapacityPerChillerKW = %v, want 50", s.Plant.CapacityPerChillerKW)
	}
	if s.Plant.LoadFactor != 1.0 {
		t.Errorf("LoadFactor = %v, want 1.0", s.Plant.LoadFactor)
	}
	if s.Plant.OperatingMonths != 12 {
		t.Errorf("OperatingMonths = %d, want 12", s.Plant.OperatingMonths)
	}
	if s.Plant.DaysPerMonth != 31 {
		t.Errorf("DaysPerMonth = %d, want 31", s.Plant.DaysPerMonth)
	}
	if got, _ := s.Economics.ElectricityPrice.Float64(); got != 0.0001 {
		t.Errorf("ElectricityPrice = %v, want 0.0001", got)
	}
	if got, _ := s.Economics.FXRate.Float64(); got != 20 {
		t.Errorf("FXRate = %v, want 20", got)
	}
	// A zero full-load EER clamps to the range minimum so the core never
	// divides by zero.
	if s.Higher.Efficiency.FullLoadEER != 0.1 {
		t.Errorf("FullLoadEER = %v, want 0.1", s.Higher.Efficiency.FullLoadEER)
	}
	if got, _ := s.Lower.PricePerChiller.Float64(); got != 2000000 {
		t.Errorf("PricePerChiller = %v, want 2000000", got)
	}
}

func TestNormalizeDefaultsDaysPerMonth(t *testing.T) {
	raw := validRaw()
	raw.Plant.DaysPerMonth = 0

	s, err := Normalize(raw, types.CurrencyGEL, types.CurrencyEUR)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if s.Plant.DaysPerMonth != 30 {
		t.Errorf("DaysPerMonth = %d, want default 30", s.Plant.DaysPerMonth)
	}
}

func TestNormalizeZeroSentinels(t *testing.T) {
	raw := validRaw()
	raw.Higher.IPLV = 0
	raw.Higher.EER75 = 3.5
	raw.Higher.EER50 = 0
	raw.Higher.EER25 = 3.0

	s, err := Normalize(raw, types.CurrencyGEL, types.CurrencyEUR)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	eff := s.Higher.Efficiency
	if eff.IPLV.Available() {
		t.Error("zero IPLV should be absent")
	}
	if !eff.EER75.Available() || eff.EER75.Value != 3.5 {
		t.Errorf("EER75 = %+v, want available 3.5", eff.EER75)
	}
	if eff.EER50.Available() {
		t.Error("zero EER50 should be absent")
	}
	if eff.PartLoadAvailable() {
		t.Error("partial point set must not be part-load available")
	}
}

func TestParseMethodChoice(t *testing.T) {
	cases := []struct {
		in   string
		want types.MethodChoice
	}{
		{"", types.ChoiceAuto},
		{"auto", types.ChoiceAuto},
		{"iplv", types.ChoiceIPLVOnly},
		{"iplv-only", types.ChoiceIPLVOnly},
		{"part-load", types.ChoicePartLoad},
		{"partload", types.ChoicePartLoad},
	}
	for _, tc := range cases {
		got, err := ParseMethodChoice(tc.in)
		if err != nil {
			t.Errorf("ParseMethodChoice(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMethodChoice(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if _, err := ParseMethodChoice("nonsense"); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected INPUT_ERROR for unknown method, got %v", err)
	}
}
