// Package output provides utilities for formatting and displaying forecast results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/fleet-forecast/internal/forecast"
	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/datetime"
	"github.com/iwvelando/fleet-forecast/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Write renders results in the named output format.
func Write(w io.Writer, outputFormat string, results []forecast.Forecast) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, results)
	case constants.OutputFormatCSV:
		return CsvFormat(w, results)
	case constants.OutputFormatJSON:
		return JSONFormat(w, results)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(w io.Writer, results []forecast.Forecast) error {
	p := message.NewPrinter(language.English)
	for i, result := range results {
		labels, err := datetime.PeriodLabels(result.StartDate, len(result.Result.Schedule))
		if err != nil {
			return fmt.Errorf("fleet %s: %w", result.Name, err)
		}

		params := result.Result.Parameters
		summary := result.Result.Summary
		milestones := summary.Milestones

		fmt.Fprintf(w, "--- Results for fleet %s ---\n", result.Name)
		fmt.Fprintf(w, "Units: %d x %s | Loan: %s at %s over %d months | Depreciation: %s %s\n",
			params.UnitCount, format.Currency(params.UnitValue), format.Currency(summary.TotalLoanAmount),
			format.Percent(params.AnnualInterestRatePercent), params.TermPeriods,
			params.DepreciationModel, format.Percent(params.DepreciationRatePercent))
		fmt.Fprintf(w, "Payment: %s per month (%s per unit) | Total interest: %s\n",
			format.Currency(summary.TotalPeriodPayment), format.Currency(summary.PaymentPerUnit),
			format.Currency(summary.TotalInterest))
		fmt.Fprintf(w, "Period  | Asset Value     | Loan Balance    | Equity\n")
		fmt.Fprintf(w, "______  | _______________ | _______________ | _______________\n")
		for j, record := range result.Result.Schedule {
			_, _ = p.Fprintf(w, "%-7s | $%-14.0f | $%-14.0f | $%.0f\n",
				labels[j], record.AssetValue, record.LoanBalance, record.Equity)
		}
		fmt.Fprintf(w, "Value after one year: %s (%s per unit)\n",
			format.WholeCurrency(milestones.ValueAfterOneYear), format.Currency(milestones.ValueAfterOneYearPerUnit))
		fmt.Fprintf(w, "Balance at term end: %s (%s per unit)\n",
			format.WholeCurrency(milestones.BalanceAtTermEnd), format.Currency(milestones.BalanceAtTermEndPerUnit))
		fmt.Fprintf(w, "Equity at term end: %s (%s per unit)\n",
			format.WholeCurrency(milestones.EquityAtTermEnd), format.Currency(milestones.EquityAtTermEndPerUnit))
		fmt.Fprintf(w, "Paid off: %s | Break-even: %s\n",
			periodLabel(labels, milestones.PayoffPeriod), periodLabel(labels, milestones.BreakEvenPeriod))
		if i < len(results)-1 {
			fmt.Fprintf(w, "\n")
		}
	}
	return nil
}

func periodLabel(labels []string, period int) string {
	if period < 0 || period >= len(labels) {
		return "never"
	}
	return labels[period]
}

// CsvFormat outputs in comma-separated value format, one row per fleet and
// period.
func CsvFormat(w io.Writer, results []forecast.Forecast) error {
	writer := csv.NewWriter(w)
	header := []string{"fleet", "period", "date", "asset value", "loan balance", "equity", "payment"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, result := range results {
		var labels []string
		if result.StartDate != "" {
			var err error
			labels, err = datetime.PeriodLabels(result.StartDate, len(result.Result.Schedule))
			if err != nil {
				return fmt.Errorf("fleet %s: %w", result.Name, err)
			}
		}

		for j, record := range result.Result.Schedule {
			date := ""
			if labels != nil {
				date = labels[j]
			}
			row := []string{
				result.Name,
				strconv.Itoa(record.Period),
				date,
				strconv.FormatFloat(record.AssetValue, 'f', 0, 64),
				strconv.FormatFloat(record.LoanBalance, 'f', 0, 64),
				strconv.FormatFloat(record.Equity, 'f', 0, 64),
				strconv.FormatFloat(record.PeriodPayment, 'f', 2, 64),
			}
			if err := writer.Write(row); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// CsvString renders results as CSV into a string.
func CsvString(results []forecast.Forecast) (string, error) {
	var buf bytes.Buffer
	if err := CsvFormat(&buf, results); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// JSONFormat outputs the full results, schedule and summary included, as
// indented JSON.
func JSONFormat(w io.Writer, results []forecast.Forecast) error {
	if results == nil {
		results = []forecast.Forecast{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}
