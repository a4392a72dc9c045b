package utils

import (
	"testing"
)

type sample struct {
	Name string  `json:"name"`
	Rate float64 `json:"rate"`
}

func TestSmartParseStrictJSON(t *testing.T) {
	var s sample
	if _, err := SmartParse(`{"name": "plan", "rate": 2.5}`, &s); err != nil {
		t.Fatalf("SmartParse failed: %v", err)
	}
	if s.Name != "plan" || s.Rate != 2.5 {
		t.Errorf("Decoded wrong values: %+v", s)
	}
}

func TestSmartParseRepairsDamage(t *testing.T) {
	// Single quotes, trailing comma
	var s sample
	if _, err := SmartParse(`{'name': 'plan', 'rate': 2.5,}`, &s); err != nil {
		t.Fatalf("SmartParse failed on repairable input: %v", err)
	}
	if s.Name != "plan" {
		t.Errorf("Decoded wrong name: %q", s.Name)
	}
}

func TestSmartParseHJSON(t *testing.T) {
	input := `{
		# yearly plan
		name: plan
		rate: 2.5
	}`
	var s sample
	if _, err := SmartParse(input, &s); err != nil {
		t.Fatalf("SmartParse failed on hjson input: %v", err)
	}
	if s.Rate != 2.5 {
		t.Errorf("Decoded wrong rate: %f", s.Rate)
	}
}

func TestSmartParseGivesUp(t *testing.T) {
	var s sample
	if _, err := SmartParse("]][[ not even close", &s); err == nil {
		t.Fatal("Expected a parse failure")
	}
}
