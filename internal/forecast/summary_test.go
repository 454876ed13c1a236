package forecast

import (
	"math"
	"testing"

	"github.com/iwvelando/fleet-forecast/pkg/depreciation"
)

func TestExtractSummaryMilestones(t *testing.T) {
	params := scenarioA()
	params.UnitCount = 10

	result, err := ComputeSchedule(params)
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}
	milestones := result.Summary.Milestones

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"Value after one year", milestones.ValueAfterOneYear, 576150},
		{"Value after one year per unit", milestones.ValueAfterOneYearPerUnit, 57615},
		{"Balance at term end", milestones.BalanceAtTermEnd, 0},
		{"Balance at term end per unit", milestones.BalanceAtTermEndPerUnit, 0},
		{"Equity at term end", milestones.EquityAtTermEnd, 355652},
		{"Equity at term end per unit", milestones.EquityAtTermEndPerUnit, 35565.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-9 {
				t.Errorf("got %v, expected %v", tt.got, tt.expected)
			}
		})
	}

	if milestones.PayoffPeriod != 60 {
		t.Errorf("PayoffPeriod = %d, expected 60", milestones.PayoffPeriod)
	}
	if milestones.BreakEvenPeriod != 1 {
		t.Errorf("BreakEvenPeriod = %d, expected 1", milestones.BreakEvenPeriod)
	}
}

func TestExtractSummaryTotals(t *testing.T) {
	result, err := ComputeSchedule(scenarioA())
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}
	summary := result.Summary

	if summary.TotalAssetValue != 65000 || summary.TotalLoanAmount != 65000 {
		t.Errorf("totals = %v / %v, expected 65000 / 65000", summary.TotalAssetValue, summary.TotalLoanAmount)
	}
	if summary.PaymentPerUnit != summary.TotalPeriodPayment {
		t.Errorf("PaymentPerUnit = %v, expected %v for a single unit", summary.PaymentPerUnit, summary.TotalPeriodPayment)
	}
	expectedInterest := summary.TotalPeriodPayment*60 - 65000
	if math.Abs(summary.TotalInterest-expectedInterest) > 0.01 {
		t.Errorf("TotalInterest = %.2f, expected %.2f", summary.TotalInterest, expectedInterest)
	}
}

func TestExtractSummaryMissingRecordsReadAsZero(t *testing.T) {
	params := scenarioA()
	short := Schedule{
		{Period: 0, AssetValue: 65000, LoanBalance: 65000},
		{Period: 1, AssetValue: 64350, LoanBalance: 64087, Equity: 263},
	}

	summary := ExtractSummary(params, 1280.95, short)
	if summary.Milestones.ValueAfterOneYear != 0 {
		t.Errorf("ValueAfterOneYear = %v, expected 0", summary.Milestones.ValueAfterOneYear)
	}
	if summary.Milestones.BalanceAtTermEnd != 0 || summary.Milestones.EquityAtTermEnd != 0 {
		t.Errorf("term end milestones = %+v, expected zeros", summary.Milestones)
	}
	if summary.Milestones.PayoffPeriod != -1 {
		t.Errorf("PayoffPeriod = %d, expected -1", summary.Milestones.PayoffPeriod)
	}
	if summary.TotalAssetValue != 65000 {
		t.Errorf("TotalAssetValue = %v, expected 65000", summary.TotalAssetValue)
	}

	empty := ExtractSummary(params, 1280.95, nil)
	if empty.TotalAssetValue != 0 || empty.Milestones.BreakEvenPeriod != -1 {
		t.Errorf("summary of empty schedule = %+v", empty)
	}
}

func TestBreakEvenWithSteepDepreciation(t *testing.T) {
	params := scenarioA()
	params.DepreciationModel = depreciation.HeavyUse
	params.DepreciationRatePercent = 4

	result, err := ComputeSchedule(params)
	if err != nil {
		t.Fatalf("ComputeSchedule() error = %v", err)
	}

	breakEven := result.Summary.Milestones.BreakEvenPeriod
	if breakEven <= 1 {
		t.Fatalf("BreakEvenPeriod = %d, expected the fleet to start underwater", breakEven)
	}
	for _, record := range result.Schedule[1:breakEven] {
		if record.Equity >= 0 {
			t.Fatalf("period %d has equity %v before break-even period %d", record.Period, record.Equity, breakEven)
		}
	}
	if result.Schedule[breakEven].Equity < 0 {
		t.Errorf("equity at break-even period = %v", result.Schedule[breakEven].Equity)
	}
}

func TestScheduleAt(t *testing.T) {
	schedule := Schedule{{Period: 0, AssetValue: 10}}
	if got := schedule.At(0); got.AssetValue != 10 {
		t.Errorf("At(0) = %+v", got)
	}
	if got := schedule.At(5); got != (PeriodRecord{Period: 5}) {
		t.Errorf("At(5) = %+v, expected zero record", got)
	}
	if got := schedule.At(-1); got != (PeriodRecord{Period: -1}) {
		t.Errorf("At(-1) = %+v, expected zero record", got)
	}
}
