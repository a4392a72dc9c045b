package projection

import (
	"fmt"

	"bankplan/pkg/core/assumption"
)

// Compute runs the full ten-year projection for one assumption snapshot.
// It is a pure synchronous function: every product, division and the
// consolidation are recomputed from scratch on every call. A computation
// either fully succeeds or returns a single failure error; there are no
// partial results.
func Compute(set *assumption.Set) (res *Results, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = fmt.Errorf("projection failed: %v", r)
		}
	}()

	m := &set.Macro

	divisions := map[string]*DivisionResult{}
	for _, k := range sortedKeys(set.Divisions) {
		d, derr := evaluateDivision(k, set.Divisions[k], m, set.Personnel)
		if derr != nil {
			return nil, derr
		}
		divisions[k] = d
	}

	// Bank-level balance drivers for the treasury model.
	loans := NewSeries()
	deposits := NewSeries()
	performing := NewSeries()
	nonPerforming := NewSeries()
	for _, k := range sortedKeys(divisions) {
		d := divisions[k]
		performing.AddInto(d.PerformingAssets)
		nonPerforming.AddInto(d.NonPerformingAssets)
		deposits.AddInto(d.DepositStock)
	}
	for y := 0; y < Years; y++ {
		loans[y] = performing[y] + nonPerforming[y]
	}

	personnel := buildPersonnel(set)
	treasury := buildTreasury(set.Treasury, m, set.Personnel, loans, deposits)
	central := buildCentral(set.Central, m, set.Personnel)

	res = &Results{
		Divisions: divisions,
		Treasury:  *treasury,
		Central:   *central,
		Personnel: *personnel,
	}
	res.consolidate(m, performing, nonPerforming, deposits, treasury, central, personnel)

	res.Capital = buildCapital(divisions, central, m, res.BalanceSheet.TotalAssets)
	allocateEquity(res.BalanceSheet.Equity, res.Capital, divisions, central, m, res.BalanceSheet.TotalAssets)

	res.deriveKPIs()
	return res, nil
}

// consolidate builds the bank P&L and balance sheet from the completed
// unit results. Expenses arrive pre-signed negative, so every total is a
// plain sum.
func (r *Results) consolidate(m *assumption.Macro, performing, nonPerforming, deposits Series, treasury *TreasuryResult, central *CentralResult, personnel *PersonnelResult) {
	p := PnL{
		InterestIncome:      NewSeries(),
		InterestExpenses:    NewSeries(),
		NetInterestIncome:   NewSeries(),
		CommissionIncome:    NewSeries(),
		CommissionExpenses:  NewSeries(),
		NetCommissionIncome: NewSeries(),
		OtherIncome:         NewSeries(),
		TotalRevenues:       NewSeries(),
		PersonnelCosts:      personnel.TotalCosts,
		OtherOpex:           NewSeries(),
		TotalOpex:           NewSeries(),
		LLP:                 NewSeries(),
		PreTaxProfit:        NewSeries(),
		Taxes:               NewSeries(),
		NetProfit:           NewSeries(),
	}

	for _, k := range sortedKeys(r.Divisions) {
		d := r.Divisions[k]
		p.InterestIncome.AddInto(d.InterestIncome)
		p.InterestExpenses.AddInto(d.InterestExpense)
		p.CommissionIncome.AddInto(d.CommissionIncome)
		p.CommissionExpenses.AddInto(d.CommissionExpense)
		p.OtherIncome.AddInto(d.OtherIncome)
		p.OtherOpex.AddInto(d.OperatingCosts)
		p.LLP.AddInto(d.LLP)
	}

	// Treasury's whole net interest result sits inside consolidated NII;
	// the internal FTP legs do not cancel exactly because lending is
	// charged the FTP rate while deposits are compensated at it.
	p.InterestIncome.AddInto(treasury.LiquidityIncome)
	p.InterestIncome.AddInto(treasury.TradingIncome)
	p.InterestIncome.AddInto(treasury.FTPNetInterest)
	p.InterestExpenses.AddInto(treasury.InterbankCost)

	p.OtherOpex.AddInto(treasury.OtherOpex)
	for y := 0; y < Years; y++ {
		p.OtherOpex[y] += central.Facilities[y] + central.ExternalServices[y] +
			central.RegulatoryFees[y] + central.Other[y]
	}

	bs := BalanceSheet{
		PerformingAssets:    performing,
		NonPerformingAssets: nonPerforming,
		LiquidAssets:        treasury.LiquidAssets,
		TradingAssets:       treasury.TradingAssets,
		TotalAssets:         NewSeries(),
		CustomerDeposits:    deposits,
		SightDeposits:       NewSeries(),
		TermDeposits:        NewSeries(),
		GroupFunding:        NewSeries(),
		TotalLiabilities:    NewSeries(),
		Equity:              NewSeries(),
	}

	prevEquity := m.InitialEquity
	for y := 0; y < Years; y++ {
		p.NetInterestIncome[y] = p.InterestIncome[y] + p.InterestExpenses[y]
		p.NetCommissionIncome[y] = p.CommissionIncome[y] + p.CommissionExpenses[y]
		p.TotalRevenues[y] = p.NetInterestIncome[y] + p.NetCommissionIncome[y] + p.OtherIncome[y]
		p.TotalOpex[y] = p.PersonnelCosts[y] + p.OtherOpex[y]
		p.PreTaxProfit[y] = p.TotalRevenues[y] + p.TotalOpex[y] + p.LLP[y]

		// No tax benefit on losses.
		if p.PreTaxProfit[y] > 0 {
			p.Taxes[y] = -p.PreTaxProfit[y] * m.TaxRate / 100
		}
		p.NetProfit[y] = p.PreTaxProfit[y] + p.Taxes[y]

		bs.Equity[y] = prevEquity + p.NetProfit[y]
		prevEquity = bs.Equity[y]

		bs.TotalAssets[y] = performing[y] + nonPerforming[y] +
			bs.LiquidAssets[y] + bs.TradingAssets[y]

		// Liabilities are the identity plug: whatever the asset side
		// needs beyond equity. Customer deposits split per the funding
		// mix; group funding absorbs the remainder.
		bs.TotalLiabilities[y] = bs.TotalAssets[y] - bs.Equity[y]
		bs.SightDeposits[y] = deposits[y] * m.FundingMix.SightDeposits / 100
		bs.TermDeposits[y] = deposits[y] * m.FundingMix.TermDeposits / 100
		bs.GroupFunding[y] = bs.TotalLiabilities[y] - bs.SightDeposits[y] - bs.TermDeposits[y]
	}

	r.PnL = p
	r.BalanceSheet = bs
}

// deriveKPIs fills the bank ratio block from the consolidated
// statements. Zero denominators yield zero ratios.
func (r *Results) deriveKPIs() {
	k := KPI{
		ROE:            NewSeries(),
		CostIncome:     NewSeries(),
		CostOfRisk:     NewSeries(),
		CET1Ratio:      NewSeries(),
		TotalHeadcount: r.Personnel.TotalHeadcount,
		NumberOfLoans:  NewSeries(),
	}

	for _, dk := range sortedKeys(r.Divisions) {
		for _, pk := range sortedKeys(r.Divisions[dk].Products) {
			k.NumberOfLoans.AddInto(r.Divisions[dk].Products[pk].NumberOfLoans)
		}
	}

	prevEquity := r.BalanceSheet.Equity[0] - r.PnL.NetProfit[0]
	prevPerforming := 0.0
	for y := 0; y < Years; y++ {
		avgEquity := (prevEquity + r.BalanceSheet.Equity[y]) / 2
		if avgEquity != 0 {
			k.ROE[y] = r.PnL.NetProfit[y] / avgEquity * 100
		}
		prevEquity = r.BalanceSheet.Equity[y]

		if r.PnL.TotalRevenues[y] > 0 {
			k.CostIncome[y] = -r.PnL.TotalOpex[y] / r.PnL.TotalRevenues[y] * 100
		}

		avgPerforming := (prevPerforming + r.BalanceSheet.PerformingAssets[y]) / 2
		if avgPerforming > 0 {
			k.CostOfRisk[y] = -r.PnL.LLP[y] / avgPerforming * 10000
		}
		prevPerforming = r.BalanceSheet.PerformingAssets[y]

		if r.Capital.TotalRWA[y] > 0 {
			k.CET1Ratio[y] = r.BalanceSheet.Equity[y] / r.Capital.TotalRWA[y] * 100
		}
	}
	r.KPI = k
}
