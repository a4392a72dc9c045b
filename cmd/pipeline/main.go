package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/projection"
	"bankplan/pkg/core/report"
	"bankplan/pkg/core/store"
)

// The pipeline runs one plan end to end from the command line: load an
// assumption file (or the defaults), compute, print the headline KPIs,
// and optionally write the report or persist the plan.
func main() {
	var (
		planFile   = flag.String("plan", "", "assumption file (.json or .hjson); defaults when empty")
		reportFile = flag.String("report", "", "write the markdown report to this file")
		saveName   = flag.String("save", "", "persist the computed plan under this name (needs DATABASE_URL)")
		asJSON     = flag.Bool("json", false, "dump the full results document as JSON to stdout")
	)
	flag.Parse()

	godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	var set *assumption.Set
	var err error
	if *planFile != "" {
		set, err = assumption.LoadFile(*planFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *planFile).Msg("cannot load plan")
		}
		log.Info().Str("file", *planFile).Msg("plan loaded")
	} else {
		set = assumption.Defaults()
		log.Info().Msg("no plan file given, using defaults")
	}

	started := time.Now()
	res, err := projection.Compute(set)
	if err != nil {
		log.Fatal().Err(err).Msg("projection failed")
	}
	log.Info().Dur("elapsed", time.Since(started)).Msg("projection complete")

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			log.Fatal().Err(err).Msg("encode results")
		}
	} else {
		printSummary(res)
	}

	if *reportFile != "" {
		md := report.Build(set, res)
		if err := os.WriteFile(*reportFile, []byte(md), 0o644); err != nil {
			log.Fatal().Err(err).Msg("write report")
		}
		log.Info().Str("file", *reportFile).Msg("report written")
	}

	if *saveName != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.InitDB(ctx); err != nil {
			log.Fatal().Err(err).Msg("cannot open plan storage")
		}
		defer store.Close()

		id, err := store.NewPlanRepo().Save(ctx, &store.Plan{
			Name:        *saveName,
			Assumptions: set,
			Results:     res,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("save plan")
		}
		log.Info().Str("id", id).Str("name", *saveName).Msg("plan saved")
	}
}

func printSummary(res *projection.Results) {
	last := projection.Years - 1
	fmt.Println("Ten-year projection")
	fmt.Printf("  Net profit:    %8.1f -> %8.1f EURm\n", res.PnL.NetProfit[0], res.PnL.NetProfit[last])
	fmt.Printf("  Total assets:  %8.0f -> %8.0f EURm\n", res.BalanceSheet.TotalAssets[0], res.BalanceSheet.TotalAssets[last])
	fmt.Printf("  Equity:        %8.0f -> %8.0f EURm\n", res.BalanceSheet.Equity[0], res.BalanceSheet.Equity[last])
	fmt.Printf("  Total RWA:     %8.0f -> %8.0f EURm\n", res.Capital.TotalRWA[0], res.Capital.TotalRWA[last])
	fmt.Printf("  ROE:           %8.1f -> %8.1f %%\n", res.KPI.ROE[0], res.KPI.ROE[last])
	fmt.Printf("  CET1 ratio:    %8.1f -> %8.1f %%\n", res.KPI.CET1Ratio[0], res.KPI.CET1Ratio[last])
	fmt.Printf("  Cost/income:   %8.1f -> %8.1f %%\n", res.KPI.CostIncome[0], res.KPI.CostIncome[last])
	fmt.Printf("  Cost of risk:  %8.0f -> %8.0f bps\n", res.KPI.CostOfRisk[0], res.KPI.CostOfRisk[last])
	fmt.Printf("  Headcount:     %8.0f -> %8.0f\n", res.KPI.TotalHeadcount[0], res.KPI.TotalHeadcount[last])
}
