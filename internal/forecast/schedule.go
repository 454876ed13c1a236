package forecast

import (
	"fmt"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
	"github.com/iwvelando/fleet-forecast/pkg/loans"
	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
)

// ScheduleLength returns the number of records produced for a term: the
// initial snapshot, one record per loan period and the trailing periods.
func ScheduleLength(termPeriods int) int {
	return termPeriods + constants.TrailingPeriods + 1
}

// GenerateSchedule walks the fleet forward one period at a time using the
// given fixed payment. Running state stays at full precision; only the
// emitted records are rounded. Equity is the rounded asset value minus the
// rounded balance rather than the rounded difference, so every record
// satisfies Equity == AssetValue - LoanBalance exactly.
func GenerateSchedule(params Parameters, payment float64) (Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	depreciator, err := depreciation.New(params.DepreciationModel, params.DepreciationRatePercent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}

	base := params.Principal()
	currentValue := base
	remainingBalance := base

	schedule := make(Schedule, 0, ScheduleLength(params.TermPeriods))
	schedule = append(schedule, PeriodRecord{
		Period:        0,
		AssetValue:    mathutil.RoundWhole(currentValue),
		LoanBalance:   mathutil.RoundWhole(remainingBalance),
		Equity:        0,
		PeriodPayment: payment,
	})

	lastPeriod := params.TermPeriods + constants.TrailingPeriods
	for period := 1; period <= lastPeriod; period++ {
		// Depreciation lands before the payment of the same period.
		currentValue = depreciator.Next(period, currentValue, base)

		if period <= params.TermPeriods && remainingBalance > 0 {
			remainingBalance = loans.ApplyPayment(remainingBalance, payment, params.AnnualInterestRatePercent).RemainingPrincipal
		}

		assetValue := mathutil.RoundWhole(currentValue)
		loanBalance := mathutil.RoundWhole(remainingBalance)
		schedule = append(schedule, PeriodRecord{
			Period:        period,
			AssetValue:    assetValue,
			LoanBalance:   loanBalance,
			Equity:        assetValue - loanBalance,
			PeriodPayment: payment,
		})
	}

	return schedule, nil
}
