// Package cache memoizes engine results. A schedule is a pure function of its
// parameters, so any store holding a Result under Key(params) may answer for
// the engine.
package cache

import (
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/iwvelando/fleet-forecast/internal/forecast"
)

// keyVersion is bumped whenever the stored Result layout changes.
const keyVersion = "v1"

// Key returns a stable identifier for params. Floats contribute their exact
// bit patterns.
func Key(params forecast.Parameters) string {
	var b strings.Builder
	b.WriteString(keyVersion)
	for _, part := range []string{
		strconv.Itoa(params.UnitCount),
		floatBits(params.UnitValue),
		floatBits(params.AnnualInterestRatePercent),
		strconv.Itoa(params.TermPeriods),
		params.DepreciationModel.String(),
		floatBits(params.DepreciationRatePercent),
	} {
		b.WriteByte('|')
		b.WriteString(part)
	}
	return keyVersion + "-" + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

func floatBits(v float64) string {
	return strconv.FormatUint(math.Float64bits(v), 16)
}
