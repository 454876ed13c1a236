// Package depreciation models how a vehicle's value decays from one monthly
// period to the next.
package depreciation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
)

// Model selects one of the supported depreciation strategies.
type Model int

const (
	// Monthly compounds the rate on the running value every period.
	Monthly Model = iota
	// Annual recomputes the value from the base using fractional years.
	Annual
	// HeavyUse compounds like Monthly with a front-loaded rate multiplier.
	HeavyUse
)

// ErrUnknownModel is returned when a model name or value is not recognised.
var ErrUnknownModel = errors.New("unknown depreciation model")

// String returns the canonical configuration name of the model.
func (m Model) String() string {
	switch m {
	case Monthly:
		return "monthly"
	case Annual:
		return "annual"
	case HeavyUse:
		return "heavy-use"
	default:
		return fmt.Sprintf("Model(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared models.
func (m Model) Valid() bool {
	return m == Monthly || m == Annual || m == HeavyUse
}

// ParseModel converts a configuration string into a Model. Matching ignores
// case, surrounding whitespace, and the separator used in "heavy-use".
func ParseModel(name string) (Model, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "", "_", "", " ", "").Replace(normalized)
	switch normalized {
	case "monthly":
		return Monthly, nil
	case "annual", "yearly":
		return Annual, nil
	case "heavyuse":
		return HeavyUse, nil
	default:
		return Monthly, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
}

// MarshalText encodes the model by name so JSON and YAML stay readable.
func (m Model) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText decodes a model name.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Depreciator advances an asset value by one elapsed period. period is the
// 1-based index of the period being applied, current is the running value and
// base is the untouched starting value.
type Depreciator interface {
	Next(period int, current, base float64) float64
}

// New returns the handler for model with the given rate in percent. The
// returned Depreciator is meant to be selected once per schedule.
func New(model Model, ratePercent float64) (Depreciator, error) {
	switch model {
	case Monthly:
		return monthlyDepreciator{factor: 1 - mathutil.PercentToFraction(ratePercent)}, nil
	case Annual:
		return annualDepreciator{factor: 1 - mathutil.PercentToFraction(ratePercent)}, nil
	case HeavyUse:
		return heavyUseDepreciator{rate: ratePercent}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, int(model))
	}
}

type monthlyDepreciator struct {
	factor float64
}

func (d monthlyDepreciator) Next(_ int, current, _ float64) float64 {
	return current * d.factor
}

// annualDepreciator ignores the running value entirely and derives each
// period from the base, so it never compounds period over period.
type annualDepreciator struct {
	factor float64
}

func (d annualDepreciator) Next(period int, _, base float64) float64 {
	return base * math.Pow(d.factor, float64(period)/constants.MonthsPerYear)
}

type heavyUseDepreciator struct {
	rate float64
}

func (d heavyUseDepreciator) Next(period int, current, _ float64) float64 {
	effective := d.rate * HeavyUseMultiplier(period)
	return current * (1 - mathutil.PercentToFraction(effective))
}

// MaxRatePercent returns the largest configured rate for model whose
// effective per-period rate never exceeds 100%.
func MaxRatePercent(model Model) float64 {
	if model == HeavyUse {
		return constants.MaxRatePercent / constants.HeavyUseLaunchMultiplier
	}
	return constants.MaxRatePercent
}

// HeavyUseMultiplier returns the rate multiplier applied in a given period of
// the heavy-use model.
func HeavyUseMultiplier(period int) float64 {
	switch {
	case period <= constants.HeavyUseLaunchLimit:
		return constants.HeavyUseLaunchMultiplier
	case period <= constants.HeavyUseFirstYearLimit:
		return constants.HeavyUseFirstYearMultiplier
	case period <= constants.HeavyUseSecondYearLimit:
		return constants.HeavyUseSecondYearMultiplier
	default:
		return 1
	}
}
