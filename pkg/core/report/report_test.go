package report

import (
	"strings"
	"testing"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/projection"
)

func TestBuildReport(t *testing.T) {
	set := assumption.Defaults()
	res, err := projection.Compute(set)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	md := Build(set, res)

	for _, want := range []string{
		"# Ten-Year Plan",
		"## Key Indicators",
		"## Profit and Loss",
		"## Balance Sheet",
		"## Divisions",
		"Digital Banking",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Report missing section %q", want)
		}
	}

	// One column per projection year
	if !strings.Contains(md, "Y10") {
		t.Error("Report missing the final year column")
	}
}

func TestRenderHTML(t *testing.T) {
	set := assumption.Defaults()
	res, err := projection.Compute(set)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	html, err := RenderHTML(Build(set, res))
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Error("Expected rendered tables in the HTML output")
	}
	if !strings.Contains(html, "<h1") {
		t.Error("Expected a rendered heading")
	}
}
