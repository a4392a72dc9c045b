package projection

import (
	"math"
	"testing"

	"bankplan/pkg/core/assumption"
)

func TestStaffingGrowthJuniorLevelsOnly(t *testing.T) {
	st := assumption.Staffing{
		HeadcountGrowth: 10,
		Levels: []assumption.StaffLevel{
			{Level: "Junior", Count: 10, CostPerHead: 40},
			{Level: "Middle", Count: 6, CostPerHead: 60},
			{Level: "Senior", Count: 4, CostPerHead: 100},
			{Level: "Head", Count: 1, CostPerHead: 180},
		},
	}
	pp := assumption.Personnel{TaxMultiplier: 1.0}
	s := evaluateStaffing(st, pp)

	// Year 0: everyone at base count
	if math.Abs(s.Headcount[0]-21) > 1e-9 {
		t.Errorf("Expected headcount 21, got %f", s.Headcount[0])
	}
	// Year 1: junior and middle grow 10%, senior and head held flat
	expected := 10*1.1 + 6*1.1 + 4 + 1
	if math.Abs(s.Headcount[1]-expected) > 1e-9 {
		t.Errorf("Expected headcount %f, got %f", expected, s.Headcount[1])
	}
}

func TestStaffingCostFormula(t *testing.T) {
	st := assumption.Staffing{
		Levels: []assumption.StaffLevel{
			{Level: "Senior", Count: 2, CostPerHead: 100},
		},
	}
	pp := assumption.Personnel{SalaryReview: 2.0, TaxMultiplier: 1.4}
	s := evaluateStaffing(st, pp)

	// Year 0: 2 * 100k * 1.4 = 280k = 0.28 EURm, signed negative
	if math.Abs(s.Costs[0]+0.28) > 1e-9 {
		t.Errorf("Expected cost -0.28, got %f", s.Costs[0])
	}
	// Year 2: salary review compounds, (1.02)^2
	expected := -0.28 * 1.02 * 1.02
	if math.Abs(s.Costs[2]-expected) > 1e-9 {
		t.Errorf("Expected cost %f, got %f", expected, s.Costs[2])
	}
}

func TestPersonnelRollUp(t *testing.T) {
	set := &assumption.Set{
		Personnel: assumption.Personnel{TaxMultiplier: 1.0},
		Divisions: map[string]assumption.Division{
			"a": {Staffing: assumption.Staffing{Levels: []assumption.StaffLevel{
				{Level: "Junior", Count: 5, CostPerHead: 40},
			}}},
			"b": {Staffing: assumption.Staffing{Levels: []assumption.StaffLevel{
				{Level: "Senior", Count: 2, CostPerHead: 100},
			}}},
		},
		Treasury: assumption.Treasury{Staffing: assumption.Staffing{Levels: []assumption.StaffLevel{
			{Level: "Head", Count: 1, CostPerHead: 200},
		}}},
		Central: assumption.Central{Departments: map[string]assumption.Staffing{
			"risk": {Levels: []assumption.StaffLevel{
				{Level: "Middle", Count: 3, CostPerHead: 60},
			}},
		}},
	}

	pr := buildPersonnel(set)

	// 5 + 2 + 1 + 3 heads across the whole bank
	if math.Abs(pr.TotalHeadcount[0]-11) > 1e-9 {
		t.Errorf("Expected total headcount 11, got %f", pr.TotalHeadcount[0])
	}
	// Costs: -(5*40 + 2*100 + 1*200 + 3*60) k = -0.78 EURm
	if math.Abs(pr.TotalCosts[0]+0.78) > 1e-9 {
		t.Errorf("Expected total costs -0.78, got %f", pr.TotalCosts[0])
	}
	if _, ok := pr.ByDivision["treasury"]; !ok {
		t.Error("Expected treasury staffing under its own division key")
	}
	if _, ok := pr.ByDepartment["risk"]; !ok {
		t.Error("Expected central department series")
	}
}
