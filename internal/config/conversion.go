package config

import (
	"fmt"

	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

// ToParameters converts the fleet's engine inputs into forecast.Parameters.
func (f Fleet) ToParameters() (forecast.Parameters, error) {
	model, err := depreciation.ParseModel(f.DepreciationModel)
	if err != nil {
		return forecast.Parameters{}, fmt.Errorf("fleet %s: %w", f.Name, err)
	}

	return forecast.Parameters{
		UnitCount:                 f.UnitCount,
		UnitValue:                 f.UnitValue,
		AnnualInterestRatePercent: f.AnnualInterestRatePercent,
		TermPeriods:               f.TermPeriods,
		DepreciationModel:         model,
		DepreciationRatePercent:   f.DepreciationRatePercent,
	}, nil
}

// ToFleet converts a configured fleet into a forecast.Fleet.
func (f Fleet) ToFleet() (forecast.Fleet, error) {
	params, err := f.ToParameters()
	if err != nil {
		return forecast.Fleet{}, err
	}

	return forecast.Fleet{
		Name:       f.Name,
		Active:     f.Active,
		StartDate:  f.StartDate,
		Parameters: params,
	}, nil
}

// ForecastFleets converts every configured fleet. Inactive fleets are kept so
// the runner can report them as skipped, and an unknown depreciation model
// only fails the conversion when the fleet is active.
func (c *Configuration) ForecastFleets() ([]forecast.Fleet, error) {
	fleets := make([]forecast.Fleet, 0, len(c.Fleets))
	for _, fleet := range c.Fleets {
		converted, err := fleet.ToFleet()
		if err != nil {
			if fleet.Active {
				return nil, err
			}
			converted = forecast.Fleet{Name: fleet.Name, StartDate: fleet.StartDate}
		}
		fleets = append(fleets, converted)
	}
	return fleets, nil
}
