// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/fleet-forecast/internal/forecast"
)

// FindForecast finds a fleet forecast by name in the results slice.
// Returns a pointer to the forecast if found, nil otherwise.
func FindForecast(results []forecast.Forecast, name string) *forecast.Forecast {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// RecordAt returns the schedule record for period of the named fleet, and
// false when the fleet or period is missing.
func RecordAt(results []forecast.Forecast, name string, period int) (forecast.PeriodRecord, bool) {
	found := FindForecast(results, name)
	if found == nil || period < 0 || period >= len(found.Result.Schedule) {
		return forecast.PeriodRecord{}, false
	}
	return found.Result.Schedule[period], true
}
