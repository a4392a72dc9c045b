package projection

import (
	"math"

	"bankplan/pkg/core/assumption"
)

// volumeAt reads a driver series. Years past the configured horizon
// originate nothing.
func volumeAt(vs []float64, year int) float64 {
	if year < len(vs) {
		return vs[year]
	}
	return 0
}

func newProductResult(name string, t assumption.ProductType) *ProductResult {
	return &ProductResult{
		Name:                name,
		Type:                t,
		PerformingAssets:    NewSeries(),
		NonPerformingAssets: NewSeries(),
		AvgPerformingAssets: NewSeries(),
		DepositStock:        NewSeries(),
		InterestIncome:      NewSeries(),
		InterestExpense:     NewSeries(),
		CommissionIncome:    NewSeries(),
		CommissionExpense:   NewSeries(),
		OtherIncome:         NewSeries(),
		OperatingCosts:      NewSeries(),
		LLP:                 NewSeries(),
		NetProfit:           NewSeries(),
		RWA:                 NewSeries(),
		AllocatedEquity:     NewSeries(),
		CET1Ratio:           NewSeries(),
		ROE:                 NewSeries(),
		NewVolumes:          NewSeries(),
		NumberOfLoans:       NewSeries(),
		CustomerBase:        NewSeries(),
	}
}

// creditRate is the customer rate as a decimal: spread over the macro
// fixed margin for fixed-rate products, spread over the reference rate
// otherwise.
func creditRate(p *assumption.CreditParams, m *assumption.Macro) float64 {
	if p.FixedRate {
		return (p.Spread + m.FixedMargin) / 100
	}
	return (m.ReferenceRate + p.Spread) / 100
}

// creditLGD derives loss-given-default from collateral economics for
// secured lending, or takes the flat unsecured input. The state
// guarantee is applied by the caller.
func creditLGD(p *assumption.CreditParams) float64 {
	if !p.Secured {
		return p.UnsecuredLGD / 100
	}
	ltv := p.LTV / 100
	if ltv <= 0 {
		return 0
	}
	recovered := (1 / ltv) * (1 - p.CollateralHaircut/100) * (1 - p.RecoveryCosts/100)
	return math.Max(0, 1-recovered)
}

// evaluateCredit runs the vintage ledger for one credit product and
// produces its full time series. Per year: push the new origination,
// erode every live vintage by the adjusted PD, amortize what survives,
// then read stock, NPL, interest, provisions and RWA off the ledger.
func evaluateCredit(name string, p *assumption.CreditParams, m *assumption.Macro) *ProductResult {
	r := newProductResult(name, assumption.TypeCredit)

	rate := creditRate(p, m)
	factor := firstYearFactor(m.QuarterlyAllocation)
	ftp := m.FTPRate()

	pd := p.DangerRate / 100
	if p.UTP {
		pd *= 2.5
	}

	// The guaranteed share contributes zero loss and zero RWA.
	uncovered := 1 - p.StateGuarantee/100
	lgd := creditLGD(p) * uncovered

	density := p.RWADensity / 100
	if p.UTP {
		density *= 1.5
	}
	density *= uncovered

	ledger := &vintageLedger{}
	npl := 0.0
	prevStock := 0.0
	for y := 0; y < Years; y++ {
		vol := volumeAt(p.Volumes, y)
		r.NewVolumes[y] = vol
		if vol > 0 {
			ledger.push(y, vol, p, rate)
		}

		var defaulted, base float64
		for _, v := range ledger.vintages {
			if !ledger.live(v, y) {
				continue
			}
			step := ledger.age(v, y, pd, rate, factor)
			defaulted += step.Defaulted
			base += step.InterestBase
		}

		stock := 0.0
		for _, v := range ledger.vintages {
			stock += v.Outstanding
		}
		npl += defaulted

		r.PerformingAssets[y] = stock
		r.NonPerformingAssets[y] = npl
		r.AvgPerformingAssets[y] = (prevStock + stock) / 2
		prevStock = stock

		r.InterestIncome[y] = base * rate
		r.InterestExpense[y] = -base * ftp
		r.CommissionIncome[y] = vol * p.CommissionRate / 100
		r.CommissionExpense[y] = -r.CommissionIncome[y] * m.CommissionExpenseRate / 100

		// Expected loss on the year's new business plus realized
		// defaults across the book, both expensed.
		r.LLP[y] = -(vol*pd*lgd + defaulted*lgd)

		// Defaulted stock stays on book at the 150% non-performing
		// weight until resolved.
		r.RWA[y] = stock*density + npl*1.5*uncovered

		if p.AvgLoanSize > 0 {
			r.NumberOfLoans[y] = math.Round(vol / p.AvgLoanSize)
		}
	}
	return r
}
