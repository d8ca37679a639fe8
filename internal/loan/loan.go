package loan

import (
	"errors"
	"math"
)

// Bounds applied on top of the UI clamps; service-level validation is
// authoritative so headless callers get the same behavior.
const (
	MaxPrincipal  = 1_000_000_000.0
	MaxAnnualRate = 100.0
	MaxTermMonths = 600
)

var (
	ErrInvalidPrincipal = errors.New("principal must be between 0 and 1,000,000,000")
	ErrInvalidRate      = errors.New("annual rate must be between 0 and 100 percent")
	ErrInvalidTerm      = errors.New("term must be between 1 and 600 months")
)

// Input describes a loan quote request.
type Input struct {
	Principal  float64
	AnnualRate float64 // percent per year
	TermMonths int
}

// Result is a computed quote. All amounts are rounded to 2 decimals.
type Result struct {
	Monthly  float64
	Total    float64
	Interest float64
}

// ScheduleRow is one month of the amortization schedule.
type ScheduleRow struct {
	Month     int
	Payment   float64
	Principal float64
	Interest  float64
	Balance   float64
}

// Validate checks input bounds.
func (in Input) Validate() error {
	if in.Principal < 0 || in.Principal > MaxPrincipal || math.IsNaN(in.Principal) {
		return ErrInvalidPrincipal
	}
	if in.AnnualRate < 0 || in.AnnualRate > MaxAnnualRate || math.IsNaN(in.AnnualRate) {
		return ErrInvalidRate
	}
	if in.TermMonths < 1 || in.TermMonths > MaxTermMonths {
		return ErrInvalidTerm
	}
	return nil
}

// Calculate computes the equated monthly installment for the input.
// A zero rate degrades to straight principal division.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	n := float64(in.TermMonths)
	var monthly float64
	if in.AnnualRate == 0 {
		monthly = in.Principal / n
	} else {
		r := in.AnnualRate / 12 / 100
		monthly = in.Principal * r * math.Pow(1+r, n) / (math.Pow(1+r, n) - 1)
	}

	monthly = round2(monthly)
	total := round2(monthly * n)
	return Result{
		Monthly:  monthly,
		Total:    total,
		Interest: round2(total - in.Principal),
	}, nil
}

// Schedule returns up to months rows of the amortization table. Pass
// months <= 0 for the full term.
func Schedule(in Input, months int) ([]ScheduleRow, error) {
	res, err := Calculate(in)
	if err != nil {
		return nil, err
	}
	if months <= 0 || months > in.TermMonths {
		months = in.TermMonths
	}

	r := in.AnnualRate / 12 / 100
	balance := in.Principal
	out := make([]ScheduleRow, 0, months)
	for m := 1; m <= months; m++ {
		interest := round2(balance * r)
		principal := round2(res.Monthly - interest)
		if m == in.TermMonths || principal > balance {
			// last payment clears the remainder
			principal = round2(balance)
		}
		balance = round2(balance - principal)
		out = append(out, ScheduleRow{
			Month:     m,
			Payment:   round2(principal + interest),
			Principal: principal,
			Interest:  interest,
			Balance:   balance,
		})
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
