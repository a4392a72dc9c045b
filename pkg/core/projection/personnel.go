package projection

import (
	"math"
	"sort"

	"bankplan/pkg/core/assumption"
)

// staffSeries is one staffing table projected over the horizon. Costs are
// signed negative; CostPerHead is EUR thousands, so the series is scaled
// to EURm.
type staffSeries struct {
	Costs     Series
	Headcount Series
}

// evaluateStaffing projects one staffing table. Headcount growth
// compounds on the junior levels only, the salary review compounds on
// every level, and the tax multiplier turns gross salary into total
// company cost.
func evaluateStaffing(st assumption.Staffing, pp assumption.Personnel) staffSeries {
	out := staffSeries{Costs: NewSeries(), Headcount: NewSeries()}

	for y := 0; y < Years; y++ {
		salary := math.Pow(1+pp.SalaryReview/100, float64(y))
		growth := math.Pow(1+st.HeadcountGrowth/100, float64(y))

		for _, lvl := range st.Levels {
			count := lvl.Count
			if lvl.GrowsWithHeadcount() {
				count *= growth
			}
			out.Headcount[y] += count
			out.Costs[y] -= count * lvl.CostPerHead * 1e-3 * salary * pp.TaxMultiplier
		}
	}
	return out
}

// buildPersonnel rolls every staffing table in the bank into one
// personnel statement: per-division and per-central-department cost
// series plus bank totals. Treasury staffing is carried under its own
// division key so the totals cover the whole bank.
func buildPersonnel(set *assumption.Set) *PersonnelResult {
	out := &PersonnelResult{
		ByDivision:     map[string]Series{},
		ByDepartment:   map[string]Series{},
		TotalCosts:     NewSeries(),
		TotalHeadcount: NewSeries(),
	}

	add := func(s staffSeries) {
		out.TotalCosts.AddInto(s.Costs)
		out.TotalHeadcount.AddInto(s.Headcount)
	}

	for _, k := range sortedKeys(set.Divisions) {
		s := evaluateStaffing(set.Divisions[k].Staffing, set.Personnel)
		out.ByDivision[k] = s.Costs
		add(s)
	}

	treasury := evaluateStaffing(set.Treasury.Staffing, set.Personnel)
	out.ByDivision["treasury"] = treasury.Costs
	add(treasury)

	for _, k := range sortedKeys(set.Central.Departments) {
		s := evaluateStaffing(set.Central.Departments[k], set.Personnel)
		out.ByDepartment[k] = s.Costs
		add(s)
	}
	return out
}

// sortedKeys fixes the iteration order over assumption maps so repeated
// runs accumulate floating-point sums identically.
func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
