package projection

import (
	"math"

	"bankplan/pkg/core/assumption"
)

// Fractional-year interest exposure of a quarter's origination: a loan
// disbursed in Q1 earns for 7/8 of the origination year on average, Q4
// for 1/8.
var quarterExposure = [4]float64{7.0 / 8.0, 5.0 / 8.0, 3.0 / 8.0, 1.0 / 8.0}

// firstYearFactor blends the quarterly origination split against the
// fractional-year exposures. The origination-year average balance is the
// initial principal times this factor; an even 25/25/25/25 split yields
// exactly one half.
func firstYearFactor(alloc [4]float64) float64 {
	f := 0.0
	for q, share := range alloc {
		f += share / 100 * quarterExposure[q]
	}
	return f
}

// annuityPayment is the level payment that amortizes principal p over n
// periods at rate r. The annuity is sized once, at grace-end, on the
// vintage's original principal and stays fixed for the life of the loan;
// grace-period interest does not reduce the base. Documented behavior of
// the model, kept as-is.
func annuityPayment(p float64, r float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	if r == 0 {
		return p / float64(n)
	}
	cf := math.Pow(1+r, float64(n))
	return p * r * cf / (cf - 1)
}

// scheduledRepayment returns the principal due from one vintage in the
// year it reaches the given age, off a current balance. Age 0 is the
// origination year.
//
// Bullet: nothing until maturity, the full remaining balance at
// age == duration. French: nothing during the grace years, then the
// fixed annuity net of interest on the running balance, floored at zero
// and capped at the balance.
func scheduledRepayment(v *vintage, age int, balance float64, rate float64) float64 {
	switch v.Amortization {
	case assumption.AmortBullet:
		if age == v.Duration {
			return balance
		}
		return 0
	default: // french / amortizing
		if age < v.Grace || age >= v.Duration {
			return 0
		}
		principal := v.Payment - balance*rate
		if principal < 0 {
			return 0
		}
		if principal > balance {
			return balance
		}
		return principal
	}
}

// interestBase is the average balance interest accrues on for the year.
// In the origination year it is the initial principal scaled by the
// first-year factor; afterwards a bullet accrues on the full beginning
// balance while it exists, and an amortizing loan on the mean of the
// beginning and ending balances.
func interestBase(v *vintage, age int, beginning, ending, factor float64) float64 {
	if age == 0 {
		return v.Initial * factor
	}
	if v.Amortization == assumption.AmortBullet {
		return beginning
	}
	return (beginning + ending) / 2
}
