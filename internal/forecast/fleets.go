package forecast

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Computer produces a Result for a parameter set. The engine satisfies it
// directly; caching layers wrap it.
type Computer interface {
	Compute(ctx context.Context, params Parameters) (Result, error)
}

// Engine computes schedules without any memoization.
type Engine struct{}

// Compute implements Computer.
func (Engine) Compute(_ context.Context, params Parameters) (Result, error) {
	return ComputeSchedule(params)
}

// Fleet is one named parameter set to forecast.
type Fleet struct {
	Name       string
	Active     bool
	StartDate  string
	Parameters Parameters
}

// Forecast holds all information related to a specific fleet forecast.
type Forecast struct {
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	Result    Result `json:"result"`
}

// GetForecast computes the Forecasts for all active Fleets in order. A nil
// computer falls back to the bare Engine.
func GetForecast(ctx context.Context, logger *zap.Logger, computer Computer, fleets []Fleet) ([]Forecast, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if computer == nil {
		computer = Engine{}
	}

	var results []Forecast
	for _, fleet := range fleets {
		if !fleet.Active {
			logger.Debug(fmt.Sprintf("skipping fleet %s because it is inactive", fleet.Name),
				zap.String("op", "forecast.GetForecast"),
			)
			continue
		}
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := computer.Compute(ctx, fleet.Parameters)
		if err != nil {
			return results, fmt.Errorf("fleet %s: %w", fleet.Name, err)
		}

		logger.Debug(fmt.Sprintf("computed %d periods for fleet %s", len(result.Schedule), fleet.Name),
			zap.String("op", "forecast.GetForecast"),
			zap.Int("units", fleet.Parameters.UnitCount),
			zap.String("model", fleet.Parameters.DepreciationModel.String()),
			zap.Float64("payment", result.Summary.TotalPeriodPayment),
		)

		results = append(results, Forecast{
			Name:      fleet.Name,
			StartDate: fleet.StartDate,
			Result:    result,
		})
	}

	return results, nil
}
