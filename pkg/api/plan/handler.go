// Package plan exposes the planning engine over HTTP: compute on the
// fly, store and reload named plans, import hand-edited documents and
// serve rendered reports.
package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"bankplan/pkg/core/assumption"
	"bankplan/pkg/core/projection"
	"bankplan/pkg/core/report"
	"bankplan/pkg/core/store"
	"bankplan/pkg/core/utils"
)

var repo *store.PlanRepo

// InitHandler wires the handler to its repository.
func InitHandler(r *store.PlanRepo) {
	repo = r
}

func cors(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// storageReady reports whether plan persistence is available. The server
// can run without a database, in which case only stateless compute works.
func storageReady(w http.ResponseWriter) bool {
	if repo == nil {
		http.Error(w, "plan storage not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

// computePlan merges a raw assumption document over the defaults,
// validates it and runs the engine.
func computePlan(raw []byte) (*assumption.Set, *projection.Results, error) {
	set, err := assumption.Merge(raw)
	if err != nil {
		return nil, nil, err
	}
	if err := set.Validate(); err != nil {
		return nil, nil, err
	}
	res, err := projection.Compute(set)
	if err != nil {
		return nil, nil, err
	}
	return set, res, nil
}

// HandleCompute runs the engine on the posted assumption document
// without persisting anything. An empty body computes the defaults.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	started := time.Now()
	set, res, err := computePlan(raw)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Info().Dur("elapsed", time.Since(started)).Msg("plan computed")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"assumptions": set,
		"results":     res,
	})
}

// HandlePlans lists the stored plans.
func HandlePlans(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET") {
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !storageReady(w) {
		return
	}

	plans, err := repo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

// HandlePlan serves one stored plan: GET returns it, PUT replaces its
// assumptions (recomputing the results), DELETE removes it. The path
// suffix /report returns the rendered report instead of the documents.
func HandlePlan(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "GET, PUT, DELETE") {
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/plan/")
	if wantReport := strings.HasSuffix(id, "/report"); wantReport {
		handleReport(w, r, strings.TrimSuffix(id, "/report"))
		return
	}
	if id == "" {
		http.Error(w, "missing plan id", http.StatusBadRequest)
		return
	}
	if !storageReady(w) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		p, err := repo.Load(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case http.MethodPut:
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		set, res, err := computePlan(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		p := &store.Plan{ID: id, Name: planName(r, id), Assumptions: set, Results: res}
		if _, err := repo.Save(r.Context(), p); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Info().Str("plan", id).Msg("plan updated")
		writeJSON(w, http.StatusOK, p)

	case http.MethodDelete:
		if err := repo.Delete(r.Context(), id); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		log.Info().Str("plan", id).Msg("plan deleted")
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleImport accepts a hand-edited plan document: strict JSON, broken
// JSON or Hjson. The document is repaired, merged, computed and stored
// as a new plan.
func HandleImport(w http.ResponseWriter, r *http.Request) {
	if cors(w, r, "POST") {
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !storageReady(w) {
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var doc map[string]interface{}
	normalized, err := utils.SmartParse(string(raw), &doc)
	if err != nil {
		http.Error(w, fmt.Sprintf("unreadable plan document: %v", err), http.StatusUnprocessableEntity)
		return
	}

	set, res, err := computePlan([]byte(normalized))
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	p := &store.Plan{Name: planName(r, "imported plan"), Assumptions: set, Results: res}
	id, err := repo.Save(r.Context(), p)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Str("plan", id).Msg("plan imported")
	writeJSON(w, http.StatusCreated, p)
}

func handleReport(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !storageReady(w) {
		return
	}

	p, err := repo.Load(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	res := p.Results
	if res == nil {
		// Saved before its first computation: compute now
		res, err = projection.Compute(p.Assumptions)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
	}

	md := report.Build(p.Assumptions, res)
	if r.URL.Query().Get("format") == "md" {
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		io.WriteString(w, md)
		return
	}

	html, err := report.RenderHTML(md)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, html)
}

func planName(r *http.Request, fallback string) string {
	if name := r.URL.Query().Get("name"); name != "" {
		return name
	}
	return fallback
}
