package projection

import (
	"math"

	"bankplan/pkg/core/assumption"
)

// eurPerUnit converts per-customer EUR amounts into EURm series values.
const eurPerUnit = 1e-6

// evaluateCommission is the fee-only evaluator: no balance sheet beyond
// a flat operational RWA on the year's volume, no credit loss.
func evaluateCommission(name string, p *assumption.CommissionParams, m *assumption.Macro) *ProductResult {
	r := newProductResult(name, assumption.TypeCommission)

	rateSum := (p.CommissionRate + p.FeeRate + p.SetupRate + p.ManagementRate + p.PerformanceRate) / 100
	uncovered := 1 - p.StateGuarantee/100

	for y := 0; y < Years; y++ {
		vol := volumeAt(p.Volumes, y)
		r.NewVolumes[y] = vol
		r.CommissionIncome[y] = vol * rateSum
		r.CommissionExpense[y] = -r.CommissionIncome[y] * m.CommissionExpenseRate / 100
		r.RWA[y] = vol * p.OperationalRWA / 100 * uncovered
	}
	return r
}

// evaluateDeposit models a deposit-gathering product. The stock is a
// liability: the product is compensated by Treasury at the FTP rate and
// pays the customer deposit rate, so its margin is the internal spread.
func evaluateDeposit(name string, p *assumption.DepositParams, m *assumption.Macro) *ProductResult {
	r := newProductResult(name, assumption.TypeDeposit)

	ftp := m.FTPRate()
	custRate := p.DepositRate
	if custRate == 0 {
		custRate = m.DepositRate
	}
	custRate /= 100

	stock := 0.0
	for y := 0; y < Years; y++ {
		inflow := volumeAt(p.Inflows, y)
		prev := stock
		stock = prev*p.RetentionRate/100 + inflow

		avg := (prev + stock) / 2
		r.NewVolumes[y] = inflow
		r.DepositStock[y] = stock
		r.InterestIncome[y] = avg * ftp
		r.InterestExpense[y] = -avg * custRate
		r.RWA[y] = stock * p.OperationalRWA / 100
	}
	return r
}

// evaluateDigital models a customer-acquisition product: a churn-decayed
// customer stock drives subscription revenue, acquisition cost, optional
// deposit-taking and any number of modules sharing the same stock. When
// baseCustomers is non-nil the product is a dependent: its customer stock
// is the configured adoption share of the base product's stock.
func evaluateDigital(name string, p *assumption.DigitalParams, m *assumption.Macro, baseCustomers Series) *ProductResult {
	r := newProductResult(name, assumption.TypeDigital)

	ftp := m.FTPRate()
	depRate := p.DepositRate
	if depRate == 0 {
		depRate = m.DepositRate
	}
	depRate /= 100

	perCustomer := (p.MonthlyFee*12 + p.ServiceRevenue) * eurPerUnit

	for _, mod := range p.Modules {
		r.Modules = append(r.Modules, ModuleResult{
			Name:              mod.Name,
			AdoptingCustomers: NewSeries(),
			CommissionIncome:  NewSeries(),
			DepositStock:      NewSeries(),
		})
	}

	stock := 0.0
	prevDeposits := 0.0
	for y := 0; y < Years; y++ {
		prev := stock
		var acquired float64
		if baseCustomers != nil {
			stock = baseCustomers[y] * p.AdoptionRate / 100
			acquired = math.Max(0, stock-prev)
		} else {
			acquired = volumeAt(p.NewCustomers, y)
			stock = prev*(1-p.ChurnRate/100) + acquired
		}
		avg := (prev + stock) / 2

		r.CustomerBase[y] = stock
		r.NewVolumes[y] = acquired
		r.CommissionIncome[y] = avg * perCustomer
		r.OperatingCosts[y] = -acquired * p.CAC * eurPerUnit

		deposits := stock * p.AvgDeposit * eurPerUnit
		for i, mod := range p.Modules {
			adopting := stock * mod.AdoptionRate / 100
			prevAdopting := prev * mod.AdoptionRate / 100
			income := (prevAdopting + adopting) / 2 * mod.AnnualRevenue * eurPerUnit
			modDeposit := adopting * mod.ExtraDeposit * eurPerUnit

			r.Modules[i].AdoptingCustomers[y] = adopting
			r.Modules[i].CommissionIncome[y] = income
			r.Modules[i].DepositStock[y] = modDeposit

			r.CommissionIncome[y] += income
			deposits += modDeposit
		}
		r.CommissionExpense[y] = -r.CommissionIncome[y] * m.CommissionExpenseRate / 100

		if deposits > 0 || prevDeposits > 0 {
			avgDep := (prevDeposits + deposits) / 2
			r.DepositStock[y] = deposits
			r.InterestIncome[y] = avgDep * ftp
			r.InterestExpense[y] = -avgDep * depRate
		}
		prevDeposits = deposits

		r.RWA[y] = deposits * p.OperationalRWA / 100
	}
	return r
}

// evaluateITService is a pure internal cost structure: the cost lines are
// recharged to the rest of the bank with a markup, booked as commission
// income, so the product's margin is the markup share.
func evaluateITService(name string, p *assumption.ITServiceParams, m *assumption.Macro) *ProductResult {
	r := newProductResult(name, assumption.TypeITService)

	for y := 0; y < Years; y++ {
		cost := volumeAt(p.Costs, y)
		r.OperatingCosts[y] = -cost
		r.CommissionIncome[y] = cost * (1 + p.Markup/100)
		r.CommissionExpense[y] = -r.CommissionIncome[y] * m.CommissionExpenseRate / 100
	}
	return r
}

// evaluateExit books a one-off disposal gain in the configured year.
// ExitYear is 1-based.
func evaluateExit(name string, p *assumption.ExitParams) *ProductResult {
	r := newProductResult(name, assumption.TypeExit)

	if p.ExitYear >= 1 && p.ExitYear <= Years {
		r.OtherIncome[p.ExitYear-1] = p.Gain
	}
	return r
}
