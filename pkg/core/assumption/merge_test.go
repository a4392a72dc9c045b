package assumption

import (
	"testing"
)

func TestMergeEmptyYieldsDefaults(t *testing.T) {
	set, err := Merge(nil)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	def := Defaults()
	if set.Macro.TaxRate != def.Macro.TaxRate {
		t.Errorf("Expected default tax rate %f, got %f", def.Macro.TaxRate, set.Macro.TaxRate)
	}
	if len(set.Divisions) != len(def.Divisions) {
		t.Errorf("Expected %d divisions, got %d", len(def.Divisions), len(set.Divisions))
	}
}

func TestMergeScalarStoredWins(t *testing.T) {
	stored := []byte(`{"macro": {"taxRate": 31.5}}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if set.Macro.TaxRate != 31.5 {
		t.Errorf("Expected stored tax rate 31.5, got %f", set.Macro.TaxRate)
	}
	// Untouched siblings keep their defaults
	if set.Macro.ReferenceRate != Defaults().Macro.ReferenceRate {
		t.Errorf("Sibling field lost its default: %f", set.Macro.ReferenceRate)
	}
}

func TestMergeNullKeepsDefault(t *testing.T) {
	stored := []byte(`{"macro": {"taxRate": null}}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if set.Macro.TaxRate != Defaults().Macro.TaxRate {
		t.Errorf("Cleared scalar should fall back to the default, got %f", set.Macro.TaxRate)
	}
}

func TestMergeUnknownFieldDropped(t *testing.T) {
	stored := []byte(`{"macro": {"legacyKnob": 42}, "retiredSection": {"x": 1}}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	// The shape comes from code: nothing to assert beyond a clean decode
	if set.Version != CurrentVersion {
		t.Errorf("Expected version %d, got %d", CurrentVersion, set.Version)
	}
}

func TestMergeArraysStoredWinsWholesale(t *testing.T) {
	stored := []byte(`{
		"divisions": {"realEstate": {"products": {"bridgeUnsecured": {
			"credit": {"volumes": [10, 20]}
		}}}}
	}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	vols := set.Divisions["realEstate"].Products["bridgeUnsecured"].Credit.Volumes
	if len(vols) != 2 || vols[0] != 10 || vols[1] != 20 {
		t.Errorf("Expected stored volume path [10 20], got %v", vols)
	}
	// Fields next to the edited array keep their defaults
	if set.Divisions["realEstate"].Products["bridgeUnsecured"].Credit.Duration != 3 {
		t.Errorf("Sibling credit field lost its default")
	}
}

func TestMergeCollectionUnion(t *testing.T) {
	// A user-created product must survive the merge; default products
	// the user never touched must be backfilled.
	stored := []byte(`{
		"divisions": {"realEstate": {"products": {"customLoan": {
			"name": "Custom Loan",
			"productType": "Credit",
			"credit": {"volumes": [5], "spread": 7.0, "amortization": "bullet", "duration": 2}
		}}}}
	}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	div := set.Divisions["realEstate"]
	if _, ok := div.Products["customLoan"]; !ok {
		t.Fatal("Stored-only product was dropped")
	}
	if _, ok := div.Products["bridgeUnsecured"]; !ok {
		t.Fatal("Default product was not backfilled")
	}
	if div.Products["customLoan"].Credit.Spread != 7.0 {
		t.Errorf("Stored product field lost: %f", div.Products["customLoan"].Credit.Spread)
	}
}

func TestMergeVersionAlwaysFromCode(t *testing.T) {
	stored := []byte(`{"version": 1}`)
	set, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	if set.Version != CurrentVersion {
		t.Errorf("Expected code version %d, got %d", CurrentVersion, set.Version)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	stored := []byte(`{"macro": {"taxRate": 30}, "divisions": {"sme": {"staffing": {"headcountGrowth": 12}}}}`)

	once, err := Merge(stored)
	if err != nil {
		t.Fatalf("Merge failed: %v", err)
	}
	// Merging the already-merged document again must not change anything
	twice, err := MergeSet(once)
	if err != nil {
		t.Fatalf("Second merge failed: %v", err)
	}

	if once.Macro.TaxRate != twice.Macro.TaxRate {
		t.Errorf("Tax rate drifted across merges: %f vs %f", once.Macro.TaxRate, twice.Macro.TaxRate)
	}
	if once.Divisions["sme"].Staffing.HeadcountGrowth != twice.Divisions["sme"].Staffing.HeadcountGrowth {
		t.Errorf("Staffing growth drifted across merges")
	}
	if len(once.Divisions) != len(twice.Divisions) {
		t.Errorf("Division count drifted: %d vs %d", len(once.Divisions), len(twice.Divisions))
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Default document does not validate: %v", err)
	}
}

func TestValidateRejectsBrokenFundingMix(t *testing.T) {
	set := Defaults()
	set.Macro.FundingMix.GroupFunding = 50
	if err := set.Validate(); err == nil {
		t.Fatal("Expected a funding mix validation error")
	}
}

func TestValidateRejectsMissingVariant(t *testing.T) {
	set := Defaults()
	div := set.Divisions["sme"]
	div.Products["broken"] = Product{Name: "Broken", Type: TypeCredit}
	set.Divisions["sme"] = div
	if err := set.Validate(); err == nil {
		t.Fatal("Expected a missing-variant validation error")
	}
}
