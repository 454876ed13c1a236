// Package loans provides common loan processing utilities.
package loans

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/fleet-forecast/pkg/constants"
	"github.com/iwvelando/fleet-forecast/pkg/mathutil"
)

// ErrInvalidTerm is returned when a loan term is not a positive number of
// periods.
var ErrInvalidTerm = errors.New("loan term must be a positive number of periods")

// ErrNegativeRate is returned when an annual interest rate is below zero.
var ErrNegativeRate = errors.New("annual interest rate must not be negative")

// Payment holds the split of one period's fixed payment.
type Payment struct {
	Payment            float64
	Principal          float64
	Interest           float64
	RemainingPrincipal float64
}

// PeriodicRate converts an annual percentage rate into the monthly rate
// applied once per payment period.
func PeriodicRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// ComputePayment calculates the fixed monthly payment for a fully amortizing
// loan using the standard amortization formula. A zero rate pays the
// principal down in equal installments.
func ComputePayment(principal, annualInterestRate float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTerm, termMonths)
	}
	if annualInterestRate < 0 {
		return 0, fmt.Errorf("%w: got %.4f", ErrNegativeRate, annualInterestRate)
	}

	periodicInterestRate := PeriodicRate(annualInterestRate)
	if periodicInterestRate == 0 {
		return principal / float64(termMonths), nil
	}

	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return principal * periodicInterestRate * power / (power - 1.00), nil
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * PeriodicRate(annualInterestRate)
}

// ApplyPayment advances a balance by one period of the fixed payment. The
// remaining principal never drops below zero; when the final payment would
// overshoot, the principal portion is capped to the outstanding balance.
func ApplyPayment(remainingPrincipal, payment, annualInterestRate float64) Payment {
	interest := CalculateInterestPayment(remainingPrincipal, annualInterestRate)
	principal := payment - interest
	remaining := mathutil.Max(0, remainingPrincipal-principal)
	if remaining == 0 {
		principal = remainingPrincipal
	}
	return Payment{
		Payment:            payment,
		Principal:          principal,
		Interest:           interest,
		RemainingPrincipal: remaining,
	}
}

// TotalInterest sums the interest paid over the life of a loan by running
// the amortization recurrence to the end of its term.
func TotalInterest(principal, annualInterestRate float64, termMonths int) (float64, error) {
	payment, err := ComputePayment(principal, annualInterestRate, termMonths)
	if err != nil {
		return 0, err
	}

	total := 0.0
	balance := principal
	for month := 1; month <= termMonths && balance > 0; month++ {
		step := ApplyPayment(balance, payment, annualInterestRate)
		total += step.Interest
		balance = step.RemainingPrincipal
	}
	return total, nil
}
