// Package report renders a computed plan into a Markdown summary and,
// on request, HTML for browser delivery.
package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/projection"
)

// Build produces the Markdown plan report: bank KPIs, the consolidated
// statements and a one-line summary per division.
func Build(set *assumption.Set, res *projection.Results) string {
	var b strings.Builder

	b.WriteString("# Ten-Year Plan\n\n")
	fmt.Fprintf(&b, "Assumption version %d, %d divisions, initial equity %.0f EURm.\n\n",
		set.Version, len(set.Divisions), set.Macro.InitialEquity)

	b.WriteString("## Key Indicators\n\n")
	writeHeader(&b)
	writeRow(&b, "Net profit (EURm)", res.PnL.NetProfit, 1)
	writeRow(&b, "ROE (%)", res.KPI.ROE, 1)
	writeRow(&b, "Cost/income (%)", res.KPI.CostIncome, 1)
	writeRow(&b, "Cost of risk (bps)", res.KPI.CostOfRisk, 0)
	writeRow(&b, "CET1 ratio (%)", res.KPI.CET1Ratio, 1)
	writeRow(&b, "Headcount", res.KPI.TotalHeadcount, 0)
	b.WriteString("\n")

	b.WriteString("## Profit and Loss (EURm)\n\n")
	writeHeader(&b)
	writeRow(&b, "Net interest income", res.PnL.NetInterestIncome, 1)
	writeRow(&b, "Net commission income", res.PnL.NetCommissionIncome, 1)
	writeRow(&b, "Other income", res.PnL.OtherIncome, 1)
	writeRow(&b, "Total revenues", res.PnL.TotalRevenues, 1)
	writeRow(&b, "Personnel costs", res.PnL.PersonnelCosts, 1)
	writeRow(&b, "Other opex", res.PnL.OtherOpex, 1)
	writeRow(&b, "Loan loss provisions", res.PnL.LLP, 1)
	writeRow(&b, "Pre-tax profit", res.PnL.PreTaxProfit, 1)
	writeRow(&b, "Taxes", res.PnL.Taxes, 1)
	writeRow(&b, "Net profit", res.PnL.NetProfit, 1)
	b.WriteString("\n")

	b.WriteString("## Balance Sheet (EURm)\n\n")
	writeHeader(&b)
	writeRow(&b, "Performing loans", res.BalanceSheet.PerformingAssets, 0)
	writeRow(&b, "Non-performing loans", res.BalanceSheet.NonPerformingAssets, 1)
	writeRow(&b, "Liquid assets", res.BalanceSheet.LiquidAssets, 0)
	writeRow(&b, "Trading assets", res.BalanceSheet.TradingAssets, 0)
	writeRow(&b, "Total assets", res.BalanceSheet.TotalAssets, 0)
	writeRow(&b, "Customer deposits", res.BalanceSheet.CustomerDeposits, 0)
	writeRow(&b, "Equity", res.BalanceSheet.Equity, 0)
	b.WriteString("\n")

	b.WriteString("## Capital (EURm)\n\n")
	writeHeader(&b)
	writeRow(&b, "Credit RWA", res.Capital.RWACredit, 0)
	writeRow(&b, "Operational RWA", res.Capital.RWAOperational, 0)
	writeRow(&b, "Total RWA", res.Capital.TotalRWA, 0)
	b.WriteString("\n")

	b.WriteString("## Divisions\n\n")
	keys := make([]string, 0, len(res.Divisions))
	for k := range res.Divisions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b.WriteString("| Division | Year-10 assets | Year-10 net profit | Year-10 equity |\n")
	b.WriteString("|---|---|---|---|\n")
	last := projection.Years - 1
	for _, k := range keys {
		d := res.Divisions[k]
		fmt.Fprintf(&b, "| %s | %.0f | %.1f | %.0f |\n",
			d.Name,
			d.PerformingAssets[last]+d.NonPerformingAssets[last],
			d.NetProfit[last],
			d.AllocatedEquity[last])
	}
	b.WriteString("\n")

	return b.String()
}

// RenderHTML converts a Markdown report to HTML with table support.
func RenderHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var out bytes.Buffer
	if err := md.Convert([]byte(markdown), &out); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}
	return out.String(), nil
}

func writeHeader(b *strings.Builder) {
	b.WriteString("| |")
	for y := 1; y <= projection.Years; y++ {
		fmt.Fprintf(b, " Y%d |", y)
	}
	b.WriteString("\n|---|")
	for y := 0; y < projection.Years; y++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")
}

func writeRow(b *strings.Builder, label string, s projection.Series, decimals int) {
	fmt.Fprintf(b, "| %s |", label)
	for _, v := range s {
		fmt.Fprintf(b, " %.*f |", decimals, v)
	}
	b.WriteString("\n")
}
