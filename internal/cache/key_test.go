package cache

import (
	"strings"
	"testing"

	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

func vanParameters() forecast.Parameters {
	return forecast.Parameters{
		UnitCount:                 10,
		UnitValue:                 65000,
		AnnualInterestRatePercent: 6.8,
		TermPeriods:               60,
		DepreciationModel:         depreciation.Monthly,
		DepreciationRatePercent:   1.0,
	}
}

func TestKeyIsStable(t *testing.T) {
	a := Key(vanParameters())
	b := Key(vanParameters())
	if a != b {
		t.Errorf("Key() not stable: %s vs %s", a, b)
	}
	if !strings.HasPrefix(a, keyVersion+"-") {
		t.Errorf("Key() = %s, expected %s- prefix", a, keyVersion)
	}
}

func TestKeyDistinguishesEveryField(t *testing.T) {
	base := Key(vanParameters())

	tests := []struct {
		name   string
		mutate func(*forecast.Parameters)
	}{
		{"UnitCount", func(p *forecast.Parameters) { p.UnitCount = 11 }},
		{"UnitValue", func(p *forecast.Parameters) { p.UnitValue = 65000.01 }},
		{"AnnualInterestRatePercent", func(p *forecast.Parameters) { p.AnnualInterestRatePercent = 6.9 }},
		{"TermPeriods", func(p *forecast.Parameters) { p.TermPeriods = 48 }},
		{"DepreciationModel", func(p *forecast.Parameters) { p.DepreciationModel = depreciation.HeavyUse }},
		{"DepreciationRatePercent", func(p *forecast.Parameters) { p.DepreciationRatePercent = 1.1 }},
	}

	seen := map[string]string{base: "base"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := vanParameters()
			tt.mutate(&params)
			key := Key(params)
			if other, dup := seen[key]; dup {
				t.Errorf("Key() for %s collides with %s", tt.name, other)
			}
			seen[key] = tt.name
		})
	}
}

func TestKeyDoesNotConfuseSwappedValues(t *testing.T) {
	a := vanParameters()
	a.AnnualInterestRatePercent = 5
	a.DepreciationRatePercent = 1

	b := vanParameters()
	b.AnnualInterestRatePercent = 1
	b.DepreciationRatePercent = 5

	if Key(a) == Key(b) {
		t.Error("Key() ignores field positions")
	}
}
