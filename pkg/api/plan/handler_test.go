package plan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/utils"
)

func TestHandleComputeDefaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/plan/compute", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	HandleCompute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Assumptions map[string]interface{} `json:"assumptions"`
		Results     map[string]interface{} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response is not JSON: %v", err)
	}
	if body.Results["pnl"] == nil {
		t.Error("Expected a consolidated P&L in the response")
	}
	if body.Assumptions["divisions"] == nil {
		t.Error("Expected the merged assumption tree in the response")
	}
}

func TestHandleComputeOverride(t *testing.T) {
	// A stored override must flow through merge into the computation
	req := httptest.NewRequest(http.MethodPost, "/api/plan/compute",
		strings.NewReader(`{"macro": {"taxRate": 0}}`))
	rec := httptest.NewRecorder()

	HandleCompute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"taxRate":0`) {
		t.Error("Expected the override to survive the merge")
	}
}

func TestHandleComputeRejectsBadDocument(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/plan/compute",
		strings.NewReader(`{"macro": {"fundingMix": {"sightDeposits": 90, "termDeposits": 90, "groupFunding": 90}}}`))
	rec := httptest.NewRecorder()

	HandleCompute(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("Expected 422 for a broken funding mix, got %d", rec.Code)
	}
}

func TestHandleComputeMethodGuard(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/plan/compute", nil)
	rec := httptest.NewRecorder()

	HandleCompute(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected 405, got %d", rec.Code)
	}
}

func TestImportDocumentRoundTrip(t *testing.T) {
	// Hand-edited documents arrive with comments and unquoted keys;
	// the import path must still land the overrides in the merged set.
	messy := `{
		// planning committee draft
		macro: {
			taxRate: 31,
			referenceRate: 2.5,
		},
	}`

	var doc map[string]interface{}
	normalized, err := utils.SmartParse(messy, &doc)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	set, res, err := computePlan([]byte(normalized))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if set.Macro.TaxRate != 31 {
		t.Errorf("Expected taxRate 31 after import, got %v", set.Macro.TaxRate)
	}
	if set.Macro.ReferenceRate != 2.5 {
		t.Errorf("Expected referenceRate 2.5 after import, got %v", set.Macro.ReferenceRate)
	}
	if len(res.KPI.ROE) != assumption.Years {
		t.Errorf("Expected a full KPI series, got %d years", len(res.KPI.ROE))
	}
}

func TestStorageEndpointsWithoutDatabase(t *testing.T) {
	// repo stays nil in tests; storage-backed endpoints must refuse
	// cleanly instead of panicking.
	cases := []struct {
		method, path string
		handler      http.HandlerFunc
	}{
		{http.MethodGet, "/api/plans", HandlePlans},
		{http.MethodGet, "/api/plan/abc", HandlePlan},
		{http.MethodGet, "/api/plan/abc/report", HandlePlan},
		{http.MethodPost, "/api/plan/import", HandleImport},
	}
	for _, c := range cases {
		req := httptest.NewRequest(c.method, c.path, strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		c.handler(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s %s: expected 503 without storage, got %d", c.method, c.path, rec.Code)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/plan/compute", nil)
	rec := httptest.NewRecorder()

	HandleCompute(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 on preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Missing CORS origin header")
	}
}
