// Package datetime provides date and time utility functions.
package datetime

import (
	"fmt"
	"time"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for fleet start dates and is also
	// the output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ValidateDate checks that date is in DateTimeLayout form. Empty dates are
// accepted since fleet start dates are optional.
func ValidateDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(DateTimeLayout, date); err != nil {
		return fmt.Errorf("expected date in YYYY-MM format, got %q", date)
	}
	return nil
}

// PeriodLabels returns one label per period of a schedule with count
// records. With a start date the labels are calendar months offset from it,
// otherwise they are the bare period numbers.
func PeriodLabels(startDate string, count int) ([]string, error) {
	labels := make([]string, count)
	if startDate == "" {
		for i := range labels {
			labels[i] = fmt.Sprintf("%d", i)
		}
		return labels, nil
	}

	start, err := time.Parse(DateTimeLayout, startDate)
	if err != nil {
		return nil, err
	}
	for i := range labels {
		labels[i] = start.AddDate(0, i, 0).Format(DateTimeLayout)
	}
	return labels, nil
}
