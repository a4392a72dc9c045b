package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"bankplan/pkg/api/plan"
	"bankplan/pkg/core/store"
)

// ServerConfig is the optional config/server.yaml file. Everything has a
// workable default so the binary runs without it.
type ServerConfig struct {
	Port    int  `yaml:"port"`
	Pretty  bool `yaml:"pretty_logs"`
	Verbose bool `yaml:"verbose"`
}

func loadConfig() ServerConfig {
	cfg := ServerConfig{Port: 8080, Pretty: true}
	data, err := os.ReadFile("config/server.yaml")
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Warn().Err(err).Msg("config/server.yaml is not valid yaml, using defaults")
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	return cfg
}

func main() {
	godotenv.Load()
	cfg := loadConfig()

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Storage is optional: without DATABASE_URL the compute endpoint
	// still works, only persistence is unavailable.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := store.InitDB(ctx); err != nil {
		log.Warn().Err(err).Msg("running without plan storage")
	} else {
		defer store.Close()
	}
	cancel()

	plan.InitHandler(store.NewPlanRepo())

	http.HandleFunc("/api/plan/compute", plan.HandleCompute)
	http.HandleFunc("/api/plan/import", plan.HandleImport)
	http.HandleFunc("/api/plans", plan.HandlePlans)
	http.HandleFunc("/api/plan/", plan.HandlePlan)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("planning api listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
