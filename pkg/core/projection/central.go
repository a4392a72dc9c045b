package projection

import (
	"math"

	"bankplan/pkg/core/assumption"
)

// buildCentral runs the pure cost center: four non-personnel cost lines
// grown from their year-1 bases at the bank cost-growth rate, plus the
// department staffing tables. It holds no assets and earns nothing, but
// carries a small flat operational RWA so its capital ratio is
// reportable.
func buildCentral(c assumption.Central, m *assumption.Macro, pp assumption.Personnel) *CentralResult {
	out := &CentralResult{
		Facilities:       NewSeries(),
		ExternalServices: NewSeries(),
		RegulatoryFees:   NewSeries(),
		Other:            NewSeries(),
		PersonnelCosts:   NewSeries(),
		Headcount:        NewSeries(),
		TotalCosts:       NewSeries(),
		TotalRWA:         NewSeries(),
		AllocatedEquity:  NewSeries(),
		CET1Ratio:        NewSeries(),
	}

	for _, k := range sortedKeys(c.Departments) {
		s := evaluateStaffing(c.Departments[k], pp)
		out.PersonnelCosts.AddInto(s.Costs)
		out.Headcount.AddInto(s.Headcount)
	}

	for y := 0; y < Years; y++ {
		growth := math.Pow(1+m.CostGrowthRate/100, float64(y))
		out.Facilities[y] = -c.Costs.Facilities * growth
		out.ExternalServices[y] = -c.Costs.ExternalServices * growth
		out.RegulatoryFees[y] = -c.Costs.RegulatoryFees * growth
		out.Other[y] = -c.Costs.Other * growth

		out.TotalCosts[y] = out.Facilities[y] + out.ExternalServices[y] +
			out.RegulatoryFees[y] + out.Other[y] + out.PersonnelCosts[y]

		out.TotalRWA[y] = c.OperationalRWA
	}
	return out
}
