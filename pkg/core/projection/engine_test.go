package projection

import (
	"math"
	"testing"

	"bankplan/pkg/core/assumption"
)

func TestComputeDefaults(t *testing.T) {
	res, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if len(res.Divisions) != 6 {
		t.Fatalf("Expected 6 divisions, got %d", len(res.Divisions))
	}

	// Every consolidated series spans the full horizon
	if len(res.PnL.NetProfit) != Years || len(res.BalanceSheet.TotalAssets) != Years {
		t.Fatal("Consolidated series do not span the projection horizon")
	}
}

func TestBalanceSheetIdentity(t *testing.T) {
	res, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	bs := res.BalanceSheet
	for y := 0; y < Years; y++ {
		diff := bs.TotalAssets[y] - bs.TotalLiabilities[y] - bs.Equity[y]
		if math.Abs(diff) > 1e-6 {
			t.Errorf("Year %d: assets %f != liabilities %f + equity %f",
				y, bs.TotalAssets[y], bs.TotalLiabilities[y], bs.Equity[y])
		}
		// The funding split must add back to total liabilities
		split := bs.SightDeposits[y] + bs.TermDeposits[y] + bs.GroupFunding[y]
		if math.Abs(split-bs.TotalLiabilities[y]) > 1e-6 {
			t.Errorf("Year %d: funding split %f != liabilities %f", y, split, bs.TotalLiabilities[y])
		}
	}
}

func TestEquityRollForward(t *testing.T) {
	set := assumption.Defaults()
	res, err := Compute(set)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	prev := set.Macro.InitialEquity
	for y := 0; y < Years; y++ {
		expected := prev + res.PnL.NetProfit[y]
		if math.Abs(res.BalanceSheet.Equity[y]-expected) > 1e-9 {
			t.Errorf("Year %d: expected equity %f, got %f", y, expected, res.BalanceSheet.Equity[y])
		}
		prev = res.BalanceSheet.Equity[y]
	}
}

func TestEquityAllocationConservesAcrossBank(t *testing.T) {
	res, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for y := 0; y < Years; y++ {
		sum := res.Central.AllocatedEquity[y]
		for _, d := range res.Divisions {
			sum += d.AllocatedEquity[y]
		}
		if math.Abs(sum-res.BalanceSheet.Equity[y]) > 1e-6 {
			t.Errorf("Year %d: allocated equity %f, bank equity %f", y, sum, res.BalanceSheet.Equity[y])
		}
	}
}

func TestNoTaxOnLosses(t *testing.T) {
	// A bank that only burns money: one IT cost center, no revenue
	set := &assumption.Set{
		Macro: assumption.Macro{
			TaxRate:       28,
			InitialEquity: 100,
		},
		Personnel: assumption.Personnel{TaxMultiplier: 1.0},
		Divisions: map[string]assumption.Division{
			"tech": {
				Name: "Tech",
				Products: map[string]assumption.Product{
					"infra": {
						Name:      "Infra",
						Type:      assumption.TypeITService,
						ITService: &assumption.ITServiceParams{Costs: []float64{10, 10, 10, 10, 10, 10, 10, 10, 10, 10}},
					},
				},
			},
		},
		Central: assumption.Central{
			Costs: assumption.CentralCosts{Facilities: 5, ExternalServices: 3},
		},
	}

	res, err := Compute(set)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for y := 0; y < Years; y++ {
		if res.PnL.PreTaxProfit[y] >= 0 {
			t.Fatalf("Year %d: fixture unexpectedly profitable: %f", y, res.PnL.PreTaxProfit[y])
		}
		if res.PnL.Taxes[y] != 0 {
			t.Errorf("Year %d: expected zero taxes on a loss, got %f", y, res.PnL.Taxes[y])
		}
	}
}

func TestTaxesOnlyWhenProfitable(t *testing.T) {
	res, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for y := 0; y < Years; y++ {
		if res.PnL.PreTaxProfit[y] > 0 {
			expected := -res.PnL.PreTaxProfit[y] * 0.28
			if math.Abs(res.PnL.Taxes[y]-expected) > 1e-9 {
				t.Errorf("Year %d: expected taxes %f, got %f", y, expected, res.PnL.Taxes[y])
			}
		} else if res.PnL.Taxes[y] != 0 {
			t.Errorf("Year %d: expected zero taxes, got %f", y, res.PnL.Taxes[y])
		}
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	a, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	b, err := Compute(assumption.Defaults())
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	for y := 0; y < Years; y++ {
		if a.PnL.NetProfit[y] != b.PnL.NetProfit[y] {
			t.Errorf("Year %d: net profit differs across runs: %f vs %f",
				y, a.PnL.NetProfit[y], b.PnL.NetProfit[y])
		}
		if a.Capital.TotalRWA[y] != b.Capital.TotalRWA[y] {
			t.Errorf("Year %d: RWA differs across runs: %f vs %f",
				y, a.Capital.TotalRWA[y], b.Capital.TotalRWA[y])
		}
	}
}

func TestUnknownProductTypeFailsWhole(t *testing.T) {
	set := assumption.Defaults()
	div := set.Divisions["sme"]
	div.Products["mystery"] = assumption.Product{Name: "Mystery", Type: "Swap"}
	set.Divisions["sme"] = div

	if _, err := Compute(set); err == nil {
		t.Fatal("Expected an error for an unknown product type")
	}
}
