package validation

import (
	"fmt"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/datetime"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

// FleetConfig is the subset of a fleet definition checked for warnings.
type FleetConfig struct {
	Name                      string
	Active                    bool
	StartDate                 string
	UnitCount                 int
	UnitValue                 float64
	AnnualInterestRatePercent float64
	TermPeriods               int
	DepreciationModel         depreciation.Model
	DepreciationRatePercent   float64
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Fleets []FleetConfig
}

// ValidateAll validates every active fleet and returns warnings. Warnings
// never block a forecast; hard errors are left to the engine.
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	active := 0
	seen := make(map[string]struct{})
	for _, fleet := range cv.Fleets {
		if !fleet.Active {
			continue
		}
		active++

		if _, dup := seen[fleet.Name]; dup {
			warnings = append(warnings, fmt.Sprintf("Fleet name '%s' is used more than once", fleet.Name))
		}
		seen[fleet.Name] = struct{}{}

		if err := datetime.ValidateDate(fleet.StartDate); err != nil {
			warnings = append(warnings, fmt.Sprintf("Fleet '%s' start date ignored: %v", fleet.Name, err))
		}
		warnings = append(warnings, ValidateFleetRanges(fleet)...)
	}

	if active == 0 {
		warnings = append(warnings, "No active fleets configured")
	}

	return warnings
}

// ValidateFleetRanges compares a fleet against the ranges offered by the
// calculator's input controls.
func ValidateFleetRanges(fleet FleetConfig) []string {
	var warnings []string

	if fleet.UnitCount < constants.MinUnitCount || fleet.UnitCount > constants.MaxUnitCount {
		warnings = append(warnings, fmt.Sprintf("Fleet '%s' unit count %d outside typical range [%d, %d]",
			fleet.Name, fleet.UnitCount, constants.MinUnitCount, constants.MaxUnitCount))
	}
	if fleet.UnitValue < constants.MinUnitValue || fleet.UnitValue > constants.MaxUnitValue {
		warnings = append(warnings, fmt.Sprintf("Fleet '%s' unit value %.2f outside typical range [%.0f, %.0f]",
			fleet.Name, fleet.UnitValue, constants.MinUnitValue, constants.MaxUnitValue))
	}
	if fleet.TermPeriods < constants.MinTermPeriods || fleet.TermPeriods > constants.MaxTermPeriods {
		warnings = append(warnings, fmt.Sprintf("Fleet '%s' term %d months outside typical range [%d, %d]",
			fleet.Name, fleet.TermPeriods, constants.MinTermPeriods, constants.MaxTermPeriods))
	}
	if fleet.AnnualInterestRatePercent < constants.MinAnnualInterestRate ||
		fleet.AnnualInterestRatePercent > constants.MaxAnnualInterestRate {
		warnings = append(warnings, fmt.Sprintf("Fleet '%s' interest rate %.2f%% outside typical range [%.1f%%, %.1f%%]",
			fleet.Name, fleet.AnnualInterestRatePercent, constants.MinAnnualInterestRate, constants.MaxAnnualInterestRate))
	}

	maxRate := MaxDepreciationRate(fleet.DepreciationModel)
	if fleet.DepreciationRatePercent > maxRate {
		warnings = append(warnings, fmt.Sprintf("Fleet '%s' %s depreciation rate %.2f%% above typical maximum %.1f%%",
			fleet.Name, fleet.DepreciationModel, fleet.DepreciationRatePercent, maxRate))
	}

	return warnings
}

// MaxDepreciationRate returns the largest rate the calculator offers for a
// depreciation model.
func MaxDepreciationRate(model depreciation.Model) float64 {
	switch model {
	case depreciation.Annual:
		return constants.MaxAnnualDepreciationRate
	case depreciation.HeavyUse:
		return constants.MaxHeavyUseDepreciationRate
	default:
		return constants.MaxMonthlyDepreciationRate
	}
}
