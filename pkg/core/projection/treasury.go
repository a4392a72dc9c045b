package projection

import (
	"math"

	"bankplan/pkg/core/assumption"
)

// buildTreasury runs the internal funding counterparty. Treasury charges
// the lending divisions the FTP rate on their loan assets and pays the
// deposit-gathering divisions the customer deposit rate on their stock,
// keeping the spread. A positive funding gap is closed on the interbank
// market at the configured rate; a negative gap carries no benefit.
func buildTreasury(t assumption.Treasury, m *assumption.Macro, pp assumption.Personnel, loans, deposits Series) *TreasuryResult {
	out := &TreasuryResult{
		LiquidAssets:      NewSeries(),
		TradingAssets:     NewSeries(),
		FundingGap:        NewSeries(),
		InterbankFunding:  NewSeries(),
		LiquidityIncome:   NewSeries(),
		TradingIncome:     NewSeries(),
		FTPNetInterest:    NewSeries(),
		InterbankCost:     NewSeries(),
		NetInterestResult: NewSeries(),
		OtherOpex:         NewSeries(),
		TotalRWA:          NewSeries(),
		AllocatedEquity:   NewSeries(),
		CET1Ratio:         NewSeries(),
	}

	staff := evaluateStaffing(t.Staffing, pp)
	out.PersonnelCosts = staff.Costs

	ftp := m.FTPRate()
	for y := 0; y < Years; y++ {
		gap := loans[y] - deposits[y]
		out.FundingGap[y] = gap
		out.InterbankFunding[y] = math.Max(0, gap)
		out.InterbankCost[y] = -out.InterbankFunding[y] * t.InterbankRate / 100

		out.LiquidAssets[y] = deposits[y] * t.LiquidityBuffer / 100
		out.LiquidityIncome[y] = out.LiquidAssets[y] * t.LiquidReturn / 100

		out.TradingAssets[y] = t.TradingBook * math.Pow(1+t.TradingGrowth/100, float64(y))
		out.TradingIncome[y] = out.TradingAssets[y] * t.TradingReturn / 100

		out.FTPNetInterest[y] = loans[y]*ftp - deposits[y]*m.DepositRate/100
		out.NetInterestResult[y] = out.FTPNetInterest[y] + out.LiquidityIncome[y] +
			out.TradingIncome[y] + out.InterbankCost[y]

		out.OtherOpex[y] = -t.OtherOpex * math.Pow(1+m.CostGrowthRate/100, float64(y))
	}
	return out
}
