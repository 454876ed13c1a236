package forecast

import (
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/loans"
	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
)

// Summary holds the aggregate figures and milestones of a schedule.
type Summary struct {
	TotalAssetValue    float64    `json:"totalAssetValue"`
	TotalLoanAmount    float64    `json:"totalLoanAmount"`
	TotalPeriodPayment float64    `json:"totalPeriodPayment"`
	PaymentPerUnit     float64    `json:"paymentPerUnit"`
	TotalInterest      float64    `json:"totalInterest"`
	Milestones         Milestones `json:"milestones"`
}

// Milestones are values read at fixed points of the schedule, in aggregate
// and per unit. Periods that could not be found are reported as -1.
type Milestones struct {
	ValueAfterOneYear        float64 `json:"valueAfterOneYear"`
	ValueAfterOneYearPerUnit float64 `json:"valueAfterOneYearPerUnit"`
	BalanceAtTermEnd         float64 `json:"balanceAtTermEnd"`
	BalanceAtTermEndPerUnit  float64 `json:"balanceAtTermEndPerUnit"`
	EquityAtTermEnd          float64 `json:"equityAtTermEnd"`
	EquityAtTermEndPerUnit   float64 `json:"equityAtTermEndPerUnit"`
	PayoffPeriod             int     `json:"payoffPeriod"`
	BreakEvenPeriod          int     `json:"breakEvenPeriod"`
}

// ExtractSummary derives the summary for a schedule. Records missing from the
// schedule read as zero rather than failing.
func ExtractSummary(params Parameters, payment float64, schedule Schedule) Summary {
	units := float64(params.UnitCount)
	initial := schedule.At(0)
	oneYear := schedule.At(constants.MonthsPerYear)
	termEnd := schedule.At(params.TermPeriods)

	return Summary{
		TotalAssetValue:    initial.AssetValue,
		TotalLoanAmount:    initial.LoanBalance,
		TotalPeriodPayment: payment,
		PaymentPerUnit:     mathutil.SafeDivide(payment, units),
		TotalInterest:      totalInterest(params),
		Milestones: Milestones{
			ValueAfterOneYear:        oneYear.AssetValue,
			ValueAfterOneYearPerUnit: mathutil.SafeDivide(oneYear.AssetValue, units),
			BalanceAtTermEnd:         termEnd.LoanBalance,
			BalanceAtTermEndPerUnit:  mathutil.SafeDivide(termEnd.LoanBalance, units),
			EquityAtTermEnd:          termEnd.Equity,
			EquityAtTermEndPerUnit:   mathutil.SafeDivide(termEnd.Equity, units),
			PayoffPeriod:             payoffPeriod(schedule),
			BreakEvenPeriod:          breakEvenPeriod(schedule),
		},
	}
}

func totalInterest(params Parameters) float64 {
	total, err := loans.TotalInterest(params.Principal(), params.AnnualInterestRatePercent, params.TermPeriods)
	if err != nil {
		return 0
	}
	return total
}

func payoffPeriod(schedule Schedule) int {
	for _, record := range schedule {
		if record.Period > 0 && mathutil.IsZero(record.LoanBalance) {
			return record.Period
		}
	}
	return -1
}

func breakEvenPeriod(schedule Schedule) int {
	for _, record := range schedule {
		if record.Period > 0 && record.Equity >= 0 {
			return record.Period
		}
	}
	return -1
}
