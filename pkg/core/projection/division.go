package projection

import (
	"fmt"

	"bankplan/pkg/core/assumption"
)

func newDivisionResult(name string) *DivisionResult {
	return &DivisionResult{
		Name:                name,
		Products:            map[string]*ProductResult{},
		PerformingAssets:    NewSeries(),
		NonPerformingAssets: NewSeries(),
		DepositStock:        NewSeries(),
		InterestIncome:      NewSeries(),
		InterestExpense:     NewSeries(),
		CommissionIncome:    NewSeries(),
		CommissionExpense:   NewSeries(),
		OtherIncome:         NewSeries(),
		OperatingCosts:      NewSeries(),
		LLP:                 NewSeries(),
		PersonnelCosts:      NewSeries(),
		Headcount:           NewSeries(),
		NetProfit:           NewSeries(),
		RWACredit:           NewSeries(),
		TotalRWA:            NewSeries(),
		AllocatedEquity:     NewSeries(),
		CET1Ratio:           NewSeries(),
	}
}

// evaluateProduct dispatches one product to its evaluator. Dependent
// digital products are handled by the caller, which supplies the base
// product's customer stock.
func evaluateProduct(key string, p assumption.Product, m *assumption.Macro, baseCustomers Series) (*ProductResult, error) {
	name := p.Name
	if name == "" {
		name = key
	}
	switch p.Type {
	case assumption.TypeCredit:
		return evaluateCredit(name, p.Credit, m), nil
	case assumption.TypeCommission:
		return evaluateCommission(name, p.Commission, m), nil
	case assumption.TypeDeposit:
		return evaluateDeposit(name, p.Deposit, m), nil
	case assumption.TypeDigital:
		return evaluateDigital(name, p.Digital, m, baseCustomers), nil
	case assumption.TypeITService:
		return evaluateITService(name, p.ITService, m), nil
	case assumption.TypeExit:
		return evaluateExit(name, p.Exit), nil
	default:
		return nil, fmt.Errorf("product %q: unknown productType %q", key, p.Type)
	}
}

// evaluateDivision runs every product of one division and sums the
// product series into the division statement. Digital products that
// depend on another product's customer stock are evaluated in a second
// pass, after their base.
func evaluateDivision(name string, div assumption.Division, m *assumption.Macro, pp assumption.Personnel) (*DivisionResult, error) {
	out := newDivisionResult(name)

	keys := sortedKeys(div.Products)

	var dependents []string
	for _, k := range keys {
		p := div.Products[k]
		if p.Type == assumption.TypeDigital && p.Digital != nil && p.Digital.BaseProduct != "" {
			dependents = append(dependents, k)
			continue
		}
		pr, err := evaluateProduct(k, p, m, nil)
		if err != nil {
			return nil, fmt.Errorf("division %q: %w", name, err)
		}
		out.Products[k] = pr
	}

	for _, k := range dependents {
		p := div.Products[k]
		base, ok := out.Products[p.Digital.BaseProduct]
		if !ok {
			return nil, fmt.Errorf("division %q: product %q: base product %q not found", name, k, p.Digital.BaseProduct)
		}
		pr, err := evaluateProduct(k, p, m, base.CustomerBase)
		if err != nil {
			return nil, fmt.Errorf("division %q: %w", name, err)
		}
		out.Products[k] = pr
	}

	staff := evaluateStaffing(div.Staffing, pp)
	out.PersonnelCosts = staff.Costs
	out.Headcount = staff.Headcount

	for _, k := range keys {
		pr := out.Products[k]
		out.PerformingAssets.AddInto(pr.PerformingAssets)
		out.NonPerformingAssets.AddInto(pr.NonPerformingAssets)
		out.DepositStock.AddInto(pr.DepositStock)
		out.InterestIncome.AddInto(pr.InterestIncome)
		out.InterestExpense.AddInto(pr.InterestExpense)
		out.CommissionIncome.AddInto(pr.CommissionIncome)
		out.CommissionExpense.AddInto(pr.CommissionExpense)
		out.OtherIncome.AddInto(pr.OtherIncome)
		out.OperatingCosts.AddInto(pr.OperatingCosts)
		out.LLP.AddInto(pr.LLP)
		out.TotalRWA.AddInto(pr.RWA)
		if pr.Type == assumption.TypeCredit {
			out.RWACredit.AddInto(pr.RWA)
		}

		// Pre-tax product contribution; taxes are a bank-level line.
		for y := 0; y < Years; y++ {
			pr.NetProfit[y] = pr.InterestIncome[y] + pr.InterestExpense[y] +
				pr.CommissionIncome[y] + pr.CommissionExpense[y] +
				pr.OtherIncome[y] + pr.OperatingCosts[y] + pr.LLP[y]
		}
		out.NetProfit.AddInto(pr.NetProfit)
	}
	out.NetProfit.AddInto(out.PersonnelCosts)

	return out, nil
}
