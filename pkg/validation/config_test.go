package validation

import (
	"strings"
	"testing"

	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

func typicalFleet(name string) FleetConfig {
	return FleetConfig{
		Name:                      name,
		Active:                    true,
		StartDate:                 "2025-01",
		UnitCount:                 10,
		UnitValue:                 65000,
		AnnualInterestRatePercent: 6.8,
		TermPeriods:               60,
		DepreciationModel:         depreciation.Monthly,
		DepreciationRatePercent:   1.0,
	}
}

func TestValidateFleetRanges(t *testing.T) {
	tests := []struct {
		name            string
		mutate          func(*FleetConfig)
		expectWarnCount int
	}{
		{"Typical fleet", func(f *FleetConfig) {}, 0},
		{"Too many units", func(f *FleetConfig) { f.UnitCount = 500 }, 1},
		{"Cheap vehicle", func(f *FleetConfig) { f.UnitValue = 20000 }, 1},
		{"Long term", func(f *FleetConfig) { f.TermPeriods = 84 }, 1},
		{"Zero interest", func(f *FleetConfig) { f.AnnualInterestRatePercent = 0 }, 1},
		{"Steep monthly depreciation", func(f *FleetConfig) { f.DepreciationRatePercent = 4 }, 1},
		{"Annual rate within annual bound", func(f *FleetConfig) {
			f.DepreciationModel = depreciation.Annual
			f.DepreciationRatePercent = 15
		}, 0},
		{"Annual rate above annual bound", func(f *FleetConfig) {
			f.DepreciationModel = depreciation.Annual
			f.DepreciationRatePercent = 45
		}, 1},
		{"Everything out of range", func(f *FleetConfig) {
			f.UnitCount = 0
			f.UnitValue = 1
			f.TermPeriods = 12
			f.AnnualInterestRatePercent = 12
			f.DepreciationModel = depreciation.HeavyUse
			f.DepreciationRatePercent = 5
		}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fleet := typicalFleet("fleet")
			tt.mutate(&fleet)

			warnings := ValidateFleetRanges(fleet)
			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateFleetRanges() returned %d warnings, expected %d: %v",
					len(warnings), tt.expectWarnCount, warnings)
			}
		})
	}
}

func TestConfigValidator_ValidateAll(t *testing.T) {
	tests := []struct {
		name            string
		validator       ConfigValidator
		expectWarnCount int
	}{
		{
			name:            "Valid configuration",
			validator:       ConfigValidator{Fleets: []FleetConfig{typicalFleet("a"), typicalFleet("b")}},
			expectWarnCount: 0,
		},
		{
			name:            "Duplicate fleet names",
			validator:       ConfigValidator{Fleets: []FleetConfig{typicalFleet("a"), typicalFleet("a")}},
			expectWarnCount: 1,
		},
		{
			name: "Bad start date",
			validator: ConfigValidator{Fleets: []FleetConfig{func() FleetConfig {
				f := typicalFleet("a")
				f.StartDate = "January"
				return f
			}()}},
			expectWarnCount: 1,
		},
		{
			name:            "Empty configuration",
			validator:       ConfigValidator{},
			expectWarnCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.validator.ValidateAll()

			if len(warnings) != tt.expectWarnCount {
				t.Errorf("ValidateAll() returned %d warnings, expected %d: %v",
					len(warnings), tt.expectWarnCount, warnings)
			}
		})
	}
}

func TestConfigValidator_InactiveFleets(t *testing.T) {
	inactive := typicalFleet("ignored")
	inactive.Active = false
	inactive.UnitCount = 1000

	validator := ConfigValidator{Fleets: []FleetConfig{typicalFleet("active"), inactive}}
	warnings := validator.ValidateAll()

	if len(warnings) != 0 {
		t.Errorf("expected no warnings from inactive fleet, got %v", warnings)
	}

	validator = ConfigValidator{Fleets: []FleetConfig{inactive}}
	warnings = validator.ValidateAll()
	if len(warnings) != 1 || !strings.Contains(warnings[0], "No active fleets") {
		t.Errorf("expected only the no-active-fleets warning, got %v", warnings)
	}
}
