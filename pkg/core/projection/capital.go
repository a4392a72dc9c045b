package projection

import (
	"bankplan/pkg/core/assumption"
)

// buildCapital assembles the bank-wide RWA stack: credit RWA from the
// lending books, operational RWA from the product-level charges plus a
// bank-level percentage of total assets plus the central flat charge,
// and a market slot that is currently always zero.
func buildCapital(divisions map[string]*DivisionResult, central *CentralResult, m *assumption.Macro, totalAssets Series) Capital {
	c := Capital{
		RWACredit:      NewSeries(),
		RWAOperational: NewSeries(),
		RWAMarket:      NewSeries(),
		TotalRWA:       NewSeries(),
	}
	for _, k := range sortedKeys(divisions) {
		d := divisions[k]
		c.RWACredit.AddInto(d.RWACredit)
		for y := 0; y < Years; y++ {
			c.RWAOperational[y] += d.TotalRWA[y] - d.RWACredit[y]
		}
	}
	for y := 0; y < Years; y++ {
		c.RWAOperational[y] += totalAssets[y]*m.OperationalRWA/100 + central.TotalRWA[y]
		c.TotalRWA[y] = c.RWACredit[y] + c.RWAOperational[y] + c.RWAMarket[y]
	}
	return c
}

// allocateEquity distributes bank equity down two levels, proportionally
// to RWA: bank to divisions (and the central function), then division to
// products. The bank-level operational RWA charge is first topped up into
// each division's RWA by its asset share, so the division weights sum to
// the bank total and the allocation conserves equity exactly. A zero
// denominator yields a zero share and a zero ratio, never an error.
func allocateEquity(equity Series, bank Capital, divisions map[string]*DivisionResult, central *CentralResult, m *assumption.Macro, totalAssets Series) {
	keys := sortedKeys(divisions)

	for y := 0; y < Years; y++ {
		var divAssets float64
		for _, k := range keys {
			d := divisions[k]
			divAssets += d.PerformingAssets[y] + d.NonPerformingAssets[y]
		}
		if divAssets > 0 {
			bankOp := totalAssets[y] * m.OperationalRWA / 100
			for _, k := range keys {
				d := divisions[k]
				d.TotalRWA[y] += bankOp * (d.PerformingAssets[y] + d.NonPerformingAssets[y]) / divAssets
			}
		}

		bankRWA := bank.TotalRWA[y]
		if bankRWA <= 0 {
			continue
		}

		for _, k := range keys {
			d := divisions[k]
			d.AllocatedEquity[y] = equity[y] * d.TotalRWA[y] / bankRWA
			if d.TotalRWA[y] > 0 {
				d.CET1Ratio[y] = d.AllocatedEquity[y] / d.TotalRWA[y] * 100
			}

			var prodRWA float64
			prodKeys := sortedKeys(d.Products)
			for _, pk := range prodKeys {
				prodRWA += d.Products[pk].RWA[y]
			}
			for _, pk := range prodKeys {
				p := d.Products[pk]
				if prodRWA > 0 {
					p.AllocatedEquity[y] = d.AllocatedEquity[y] * p.RWA[y] / prodRWA
				}
				if p.RWA[y] > 0 {
					p.CET1Ratio[y] = p.AllocatedEquity[y] / p.RWA[y] * 100
				}
				if p.AllocatedEquity[y] > 0 {
					p.ROE[y] = p.NetProfit[y] / p.AllocatedEquity[y] * 100
				}
			}
		}

		central.AllocatedEquity[y] = equity[y] * central.TotalRWA[y] / bankRWA
		if central.TotalRWA[y] > 0 {
			central.CET1Ratio[y] = central.AllocatedEquity[y] / central.TotalRWA[y] * 100
		}
	}
}
