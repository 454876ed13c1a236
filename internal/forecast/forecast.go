// Package forecast defines the data structures related to a fleet forecast and
// includes the engine that turns financing parameters into a month-by-month
// schedule of asset value, loan balance and equity.
package forecast

import (
	"errors"
	"fmt"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
	"github.com/iwvelando/fleet-forecast/pkg/loans"
	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
)

// ErrInvalidParameter is returned when a parameter set falls outside the
// engine's domain. No schedule is produced alongside it.
var ErrInvalidParameter = errors.New("invalid parameter")

// Parameters is the complete, immutable input to one schedule computation.
type Parameters struct {
	UnitCount                 int                `json:"unitCount" yaml:"unitCount"`
	UnitValue                 float64            `json:"unitValue" yaml:"unitValue"`
	AnnualInterestRatePercent float64            `json:"annualInterestRatePercent" yaml:"annualInterestRatePercent"`
	TermPeriods               int                `json:"termPeriods" yaml:"termPeriods"`
	DepreciationModel         depreciation.Model `json:"depreciationModel" yaml:"depreciationModel"`
	DepreciationRatePercent   float64            `json:"depreciationRatePercent" yaml:"depreciationRatePercent"`
}

// Principal is the aggregate amount financed across all units.
func (p Parameters) Principal() float64 {
	return float64(p.UnitCount) * p.UnitValue
}

// Validate checks every field against the engine's domain.
func (p Parameters) Validate() error {
	switch {
	case p.TermPeriods <= 0:
		return fmt.Errorf("%w: termPeriods must be positive, got %d", ErrInvalidParameter, p.TermPeriods)
	case p.TermPeriods > constants.MaxEngineTermPeriods:
		return fmt.Errorf("%w: termPeriods must be at most %d, got %d",
			ErrInvalidParameter, constants.MaxEngineTermPeriods, p.TermPeriods)
	case p.UnitCount < 1:
		return fmt.Errorf("%w: unitCount must be at least 1, got %d", ErrInvalidParameter, p.UnitCount)
	case !mathutil.IsFinite(p.UnitValue) || p.UnitValue <= 0:
		return fmt.Errorf("%w: unitValue must be positive, got %v", ErrInvalidParameter, p.UnitValue)
	case !mathutil.IsFinite(p.Principal()):
		return fmt.Errorf("%w: principal of %d units at %v overflows", ErrInvalidParameter, p.UnitCount, p.UnitValue)
	case !mathutil.IsFinite(p.AnnualInterestRatePercent) || p.AnnualInterestRatePercent < 0:
		return fmt.Errorf("%w: annualInterestRatePercent must not be negative, got %v",
			ErrInvalidParameter, p.AnnualInterestRatePercent)
	case !p.DepreciationModel.Valid():
		return fmt.Errorf("%w: %v", ErrInvalidParameter, depreciation.ErrUnknownModel)
	case !mathutil.IsFinite(p.DepreciationRatePercent) || p.DepreciationRatePercent < 0:
		return fmt.Errorf("%w: depreciationRatePercent must not be negative, got %v",
			ErrInvalidParameter, p.DepreciationRatePercent)
	case p.DepreciationRatePercent > depreciation.MaxRatePercent(p.DepreciationModel):
		return fmt.Errorf("%w: depreciationRatePercent must be at most %v for the %s model, got %v",
			ErrInvalidParameter, depreciation.MaxRatePercent(p.DepreciationModel), p.DepreciationModel, p.DepreciationRatePercent)
	}
	return nil
}

// PeriodRecord is one snapshot of the fleet at the end of a period. Currency
// fields are rounded to whole units except PeriodPayment.
type PeriodRecord struct {
	Period        int     `json:"period"`
	AssetValue    float64 `json:"assetValue"`
	LoanBalance   float64 `json:"loanBalance"`
	Equity        float64 `json:"equity"`
	PeriodPayment float64 `json:"periodPayment"`
}

// Schedule is the ordered list of records indexed by period.
type Schedule []PeriodRecord

// At returns the record for period, or a zero record carrying the period
// index when it is out of range.
func (s Schedule) At(period int) PeriodRecord {
	if period < 0 || period >= len(s) {
		return PeriodRecord{Period: period}
	}
	return s[period]
}

// Result bundles a schedule with its summary and the parameters that
// produced it.
type Result struct {
	Parameters Parameters `json:"parameters"`
	Schedule   Schedule   `json:"schedule"`
	Summary    Summary    `json:"summary"`
}

// Clone returns a copy of r that shares no storage with it.
func (r Result) Clone() Result {
	if r.Schedule != nil {
		r.Schedule = append(Schedule(nil), r.Schedule...)
	}
	return r
}

// ComputeSchedule is the engine entry point: it validates params, computes the
// fixed payment once, generates the schedule and extracts its summary.
func ComputeSchedule(params Parameters) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}

	payment, err := loans.ComputePayment(params.Principal(), params.AnnualInterestRatePercent, params.TermPeriods)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if !mathutil.IsFinite(payment) {
		return Result{}, fmt.Errorf("%w: payment overflows for principal %v at %v%%",
			ErrInvalidParameter, params.Principal(), params.AnnualInterestRatePercent)
	}

	schedule, err := GenerateSchedule(params, payment)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Parameters: params,
		Schedule:   schedule,
		Summary:    ExtractSummary(params, payment, schedule),
	}, nil
}
