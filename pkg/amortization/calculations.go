// Package amortization provides the annuity math behind loan quotes.
package amortization

import (
	"errors"
	"math"
)

const monthsPerYear = 12.0
const percentMultiplier = 100.0

var (
	ErrNonPositivePrincipal = errors.New("amortization: principal must be > 0")
	ErrNegativeRate         = errors.New("amortization: annual rate must be >= 0")
	ErrNonPositiveTerm      = errors.New("amortization: term must be a positive number of months")
)

// Quote holds the figures derived from a (principal, rate, term) triple.
// All values are unrounded; rounding happens at the presentation boundary only.
type Quote struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalRepayment float64 `json:"total_repayment"`
	TotalCost      float64 `json:"total_cost"`
}

// Checkpoint is a point-in-time snapshot of the repayment schedule, emitted
// every 12 months and on the final month. Consumed by the preview chart only.
type Checkpoint struct {
	Month            int     `json:"month"`
	PrincipalPaid    float64 `json:"principal_paid"`
	InterestPaid     float64 `json:"interest_paid"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// MonthlyRate converts a nominal annual rate in percent (e.g. 2.0) to the
// periodic monthly rate used by the annuity formula.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / (percentMultiplier * monthsPerYear)
}

// ComputeQuote calculates the constant monthly payment for a loan using the
// standard annuity formula, plus the totals derived from it. The zero-rate
// branch is handled explicitly: the formula's denominator vanishes at i == 0.
func ComputeQuote(principal, annualRatePercent float64, termMonths int) (Quote, error) {
	if principal <= 0 {
		return Quote{}, ErrNonPositivePrincipal
	}
	if annualRatePercent < 0 {
		return Quote{}, ErrNegativeRate
	}
	if termMonths <= 0 {
		return Quote{}, ErrNonPositiveTerm
	}

	n := float64(termMonths)
	i := MonthlyRate(annualRatePercent)

	var monthly float64
	if i == 0 {
		monthly = principal / n
	} else {
		power := math.Pow(1.0+i, n)
		monthly = principal * i * power / (power - 1.0)
	}

	total := monthly * n
	return Quote{
		MonthlyPayment: monthly,
		TotalRepayment: total,
		TotalCost:      total - principal,
	}, nil
}

// Schedule simulates the month-by-month repayment at the quoted payment and
// returns the yearly checkpoints plus the final month. After the last period
// the remaining balance is within a small epsilon of zero; cumulative
// principal paid is floored at 0 so a checkpoint never reports negative
// progress from float drift.
func Schedule(principal, annualRatePercent float64, termMonths int) ([]Checkpoint, error) {
	quote, err := ComputeQuote(principal, annualRatePercent, termMonths)
	if err != nil {
		return nil, err
	}

	i := MonthlyRate(annualRatePercent)
	balance := principal
	interestPaid := 0.0

	var out []Checkpoint
	for month := 1; month <= termMonths; month++ {
		interest := balance * i
		balance -= quote.MonthlyPayment - interest
		interestPaid += interest

		if month%int(monthsPerYear) == 0 || month == termMonths {
			out = append(out, Checkpoint{
				Month:            month,
				PrincipalPaid:    math.Max(principal-balance, 0),
				InterestPaid:     interestPaid,
				RemainingBalance: balance,
			})
		}
	}
	return out, nil
}
