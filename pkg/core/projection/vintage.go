package projection

import (
	"bankplan/pkg/core/assumption"
)

// A vintage is one year's origination cohort of a credit product, aged
// year by year until it amortizes, defaults away or matures. Vintages
// live in a ledger owned by a single product evaluation; nothing outside
// that call ever sees them.

// principalFloor is the balance below which a vintage is considered
// fully repaid and dropped from iteration.
const principalFloor = 1e-9

type vintage struct {
	OriginYear   int
	Initial      float64
	Outstanding  float64
	Amortization assumption.AmortizationType
	Duration     int
	Grace        int
	Payment      float64 // fixed annuity, french only
	HasDefaulted bool
}

// vintageLedger is the arena of live cohorts for one product evaluation.
type vintageLedger struct {
	vintages []*vintage
}

// push creates the cohort for a year with non-zero origination. The
// french annuity is sized here, once, on the original principal over the
// post-grace periods.
func (l *vintageLedger) push(year int, amount float64, p *assumption.CreditParams, rate float64) {
	v := &vintage{
		OriginYear:   year,
		Initial:      amount,
		Outstanding:  amount,
		Amortization: p.Amortization,
		Duration:     p.Duration,
		Grace:        p.Grace,
	}
	if v.Amortization != assumption.AmortBullet {
		v.Payment = annuityPayment(amount, rate, p.Duration-p.Grace)
	}
	l.vintages = append(l.vintages, v)
}

// yearStep is the outcome of aging one vintage through one year.
// InterestBase is the average balance the year's interest accrues on;
// the evaluator turns it into income at the customer rate and funding
// expense at the FTP rate.
type yearStep struct {
	Defaulted    float64
	Repaid       float64
	InterestBase float64
}

// age moves one vintage through one projection year. Default erosion is
// applied before the scheduled repayment: the defaulted share leaves the
// performing balance and never amortizes again.
func (l *vintageLedger) age(v *vintage, year int, pd float64, rate float64, factor float64) yearStep {
	beginning := v.Outstanding
	defaulted := beginning * pd
	if defaulted > 0 {
		v.HasDefaulted = true
	}
	balance := beginning - defaulted

	age := year - v.OriginYear
	repaid := scheduledRepayment(v, age, balance, rate)
	ending := balance - repaid
	if ending < principalFloor {
		ending = 0
	}
	v.Outstanding = ending

	return yearStep{
		Defaulted:    defaulted,
		Repaid:       repaid,
		InterestBase: interestBase(v, age, balance, ending, factor),
	}
}

// live reports whether a vintage still participates in iteration: it
// retires once its balance is negligible or its age exceeds its duration.
func (l *vintageLedger) live(v *vintage, year int) bool {
	if v.Outstanding <= principalFloor {
		return false
	}
	return year-v.OriginYear <= v.Duration
}
