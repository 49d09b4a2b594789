package energy

import (
	"math"
	"testing"

	"chiller-payback/core/types"
)

const (
	// 1000 kW plant at 0.35 load factor, 5 months x 30 days x 24 h
	testCapacityKW = 1000.0
	testLoadKW     = 350.0
	testHours      = 3600.0
)

func TestAnnualFullLoadKWh(t *testing.T) {
	got := AnnualFullLoadKWh(testLoadKW, testHours, 3.3)
	want := 381818.18
	if math.Abs(got-want) > 0.01 {
		t.Errorf("AnnualFullLoadKWh = %.2f, want %.2f", got, want)
	}
}

func TestAnnualIPLVKWh(t *testing.T) {
	got := AnnualIPLVKWh(testLoadKW, testHours, 4.2)
	want := (testLoadKW / 4.2) * testHours
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("AnnualIPLVKWh = %v, want %v", got, want)
	}
}

func TestAnnualPartLoadKWh(t *testing.T) {
	params := Params{FullLoadEER: 3.3, EER75: 3.5, EER50: 3.8, EER25: 3.0}
	got := AnnualPartLoadKWh(testCapacityKW, testLoadKW, testHours, params, DefaultBinProfile())

	// Nominal weighted bin average = 0.01*1000 + 0.42*750 + 0.45*500 + 0.12*250 = 580 kW.
	// Scale = 350/580; scaled bins / EERs weighted by hours give:
	want := 352454.2155
	if math.Abs(got-want) > 0.01 {
		t.Errorf("AnnualPartLoadKWh = %.4f, want %.4f", got, want)
	}
}

func TestDefaultBinWeightsSumToOne(t *testing.T) {
	bins := DefaultBinProfile()
	if bins.Sum() != 1.0 {
		t.Errorf("default bin weights sum to %v, want exactly 1.0", bins.Sum())
	}
	if err := bins.Validate(); err != nil {
		t.Errorf("default bin profile failed validation: %v", err)
	}
}

func TestBinProfileValidate(t *testing.T) {
	bad := BinProfile{Weight100: 0.5, Weight75: 0.5, Weight50: 0.5, Weight25: 0.5}
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for weights summing to 2.0")
	}

	negative := BinProfile{Weight100: -0.1, Weight75: 0.5, Weight50: 0.4, Weight25: 0.2}
	if err := negative.Validate(); err == nil {
		t.Error("expected validation error for negative weight")
	}
}

// With a uniform EER across all bins, the part-load estimate collapses to
// load/eer*hours. That only holds if the weighted average of the scaled bin
// loads equals the input average load, so this pins the scaling invariant.
func TestPartLoadScalingPreservesAverageLoad(t *testing.T) {
	cases := []struct {
		capacityKW float64
		loadKW     float64
	}{
		{1000, 350},
		{1000, 1000},
		{1000, 10},
		{50, 25},
		{50000, 17500},
		{2500, 2499.99},
	}

	for _, tc := range cases {
		eer := 3.1
		params := Params{FullLoadEER: eer, EER75: eer, EER50: eer, EER25: eer}

		partLoad := AnnualPartLoadKWh(tc.capacityKW, tc.loadKW, testHours, params, DefaultBinProfile())
		fullLoad := AnnualFullLoadKWh(tc.loadKW, testHours, eer)

		if math.Abs(partLoad-fullLoad) > 1e-6*fullLoad {
			t.Errorf("capacity=%v load=%v: part-load %.6f != full-load %.6f under uniform EER",
				tc.capacityKW, tc.loadKW, partLoad, fullLoad)
		}
	}
}

// Zero capacity is not a supported scenario but the divide guard must keep
// the math finite.
func TestPartLoadZeroCapacityGuard(t *testing.T) {
	params := Params{FullLoadEER: 3.3, EER75: 3.5, EER50: 3.8, EER25: 3.0}
	got := AnnualPartLoadKWh(0, 0, testHours, params, DefaultBinProfile())
	if got != 0 {
		t.Errorf("AnnualPartLoadKWh with zero capacity = %v, want 0", got)
	}
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("AnnualPartLoadKWh with zero capacity is not finite: %v", got)
	}
}

func TestAverageDrawKW(t *testing.T) {
	if got := AverageDrawKW(381818.18, testHours); math.Abs(got-106.06) > 0.01 {
		t.Errorf("AverageDrawKW = %v, want ~106.06", got)
	}
	if got := AverageDrawKW(381818.18, 0); got != 0 {
		t.Errorf("AverageDrawKW with zero hours = %v, want 0", got)
	}
}

func TestEstimateDispatch(t *testing.T) {
	profile := types.EfficiencyProfile{
		FullLoadEER: 3.3,
		EER75:       types.RatingOf(3.5),
		EER50:       types.RatingOf(3.8),
		EER25:       types.RatingOf(3.0),
	}

	est := Estimate(types.ChoiceAuto, profile, testCapacityKW, testLoadKW, testHours, DefaultBinProfile())
	if est.Method != types.MethodPartLoad {
		t.Fatalf("method = %q, want part-load", est.Method)
	}
	if math.Abs(est.AnnualKWh-352454.2155) > 0.01 {
		t.Errorf("AnnualKWh = %.4f, want 352454.2155", est.AnnualKWh)
	}
	if math.Abs(est.AverageDrawKW-est.AnnualKWh/testHours) > 1e-9 {
		t.Errorf("AverageDrawKW = %v, want kWh/hours", est.AverageDrawKW)
	}

	est = Estimate(types.ChoiceAuto, types.EfficiencyProfile{FullLoadEER: 3.3}, testCapacityKW, testLoadKW, testHours, DefaultBinProfile())
	if est.Method != types.MethodFullLoad {
		t.Fatalf("method = %q, want full-load", est.Method)
	}
	if math.Abs(est.AnnualKWh-381818.18) > 0.01 {
		t.Errorf("AnnualKWh = %.2f, want 381818.18", est.AnnualKWh)
	}
}
