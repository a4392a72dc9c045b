package projection

import (
	"math"
	"testing"

	"bankplan/pkg/core/assumption"
)

func testTreasury() assumption.Treasury {
	return assumption.Treasury{
		InterbankRate:   3.0,
		LiquidityBuffer: 10,
		LiquidReturn:    2.0,
		TradingBook:     100,
		TradingGrowth:   5,
		TradingReturn:   4.0,
		OtherOpex:       1.0,
	}
}

func constantSeries(v float64) Series {
	s := NewSeries()
	for i := range s {
		s[i] = v
	}
	return s
}

func TestTreasuryPositiveFundingGap(t *testing.T) {
	m := testMacro()
	m.CostGrowthRate = 10
	tr := buildTreasury(testTreasury(), m, assumption.Personnel{TaxMultiplier: 1.0},
		constantSeries(800), constantSeries(500))

	// Gap 300 funded interbank at 3%: cost -9
	if math.Abs(tr.FundingGap[0]-300) > 1e-9 {
		t.Errorf("Expected gap 300, got %f", tr.FundingGap[0])
	}
	if math.Abs(tr.InterbankCost[0]+9) > 1e-9 {
		t.Errorf("Expected interbank cost -9, got %f", tr.InterbankCost[0])
	}

	// FTP net: 800 * 3% charged to lending - 500 * 1.5% paid on deposits
	// = 24 - 7.5 = 16.5
	if math.Abs(tr.FTPNetInterest[0]-16.5) > 1e-9 {
		t.Errorf("Expected FTP net 16.5, got %f", tr.FTPNetInterest[0])
	}

	// Liquidity buffer: 10% of deposits = 50, earning 2% = 1
	if math.Abs(tr.LiquidAssets[0]-50) > 1e-9 || math.Abs(tr.LiquidityIncome[0]-1) > 1e-9 {
		t.Errorf("Expected buffer 50 earning 1, got %f / %f", tr.LiquidAssets[0], tr.LiquidityIncome[0])
	}
}

func TestTreasuryNegativeGapCarriesNoCost(t *testing.T) {
	tr := buildTreasury(testTreasury(), testMacro(), assumption.Personnel{TaxMultiplier: 1.0},
		constantSeries(400), constantSeries(600))

	for y := 0; y < Years; y++ {
		if tr.InterbankFunding[y] != 0 || tr.InterbankCost[y] != 0 {
			t.Errorf("Year %d: expected no interbank funding on a deposit surplus, got %f / %f",
				y, tr.InterbankFunding[y], tr.InterbankCost[y])
		}
	}
}

func TestTradingBookGrowth(t *testing.T) {
	tr := buildTreasury(testTreasury(), testMacro(), assumption.Personnel{TaxMultiplier: 1.0},
		NewSeries(), NewSeries())

	// 100 growing 5% per year, earning 4%
	for y := 0; y < Years; y++ {
		expected := 100 * math.Pow(1.05, float64(y))
		if math.Abs(tr.TradingAssets[y]-expected) > 1e-9 {
			t.Errorf("Year %d: expected trading book %f, got %f", y, expected, tr.TradingAssets[y])
		}
		if math.Abs(tr.TradingIncome[y]-expected*0.04) > 1e-9 {
			t.Errorf("Year %d: expected trading income %f, got %f", y, expected*0.04, tr.TradingIncome[y])
		}
	}
}

func TestTreasuryOpexGrowth(t *testing.T) {
	m := testMacro()
	m.CostGrowthRate = 10
	tr := buildTreasury(testTreasury(), m, assumption.Personnel{TaxMultiplier: 1.0},
		NewSeries(), NewSeries())

	// 1.0 base growing 10% per year, signed negative
	if math.Abs(tr.OtherOpex[0]+1.0) > 1e-9 {
		t.Errorf("Expected opex -1.0, got %f", tr.OtherOpex[0])
	}
	if math.Abs(tr.OtherOpex[3]+1.331) > 1e-9 {
		t.Errorf("Expected opex -1.331, got %f", tr.OtherOpex[3])
	}
}
