// Package api provides the HTTP surface of the protein explorer.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/protein-lab/server/internal/ai"
	"github.com/protein-lab/server/internal/dashboard"
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/service"
)

// RouterConfig contains router configuration.
type RouterConfig struct {
	Registry    *ProteinRegistry
	Session     *dashboard.State
	AI          *ai.Client
	CORSOrigins []string
}

// NewRouter creates the HTTP router.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Global endpoints (not protein-scoped)
	r.Get("/api/proteins", proteinsHandler(cfg.Registry))
	r.Get("/api/genes", genesHandler(cfg.Registry))
	r.Get("/api/genes/search", geneSearchHandler(cfg.Registry))
	r.Post("/ask-ai", askAIHandler(cfg.AI, cfg.Session))

	// Session endpoints mirror the dashboard interaction rules
	// server-side; every mutation of the state returns the new view.
	r.Route("/api/session", func(r chi.Router) {
		r.Get("/", sessionViewHandler(cfg.Session))
		r.Post("/protein", sessionProteinHandler(cfg.Session))
		r.Post("/mutation", sessionMutationHandler(cfg.Session))
		r.Delete("/mutation", sessionClearMutationHandler(cfg.Session))
		r.Post("/highlight", sessionHighlightHandler(cfg.Session))
		r.Delete("/highlight", sessionClearHighlightHandler(cfg.Session))
		r.Post("/tab", sessionTabHandler(cfg.Session))
	})

	// Protein-scoped routes: /p/{gene}/...
	r.Route("/p/{gene}", func(r chi.Router) {
		r.Use(proteinMiddleware(cfg.Registry))

		r.Get("/structure/snapshot.png", proteinSnapshotHandler)

		r.Route("/api", func(r chi.Router) {
			r.Get("/metadata", proteinMetadataHandler)
			r.Get("/mutations", proteinMutationsHandler)
			r.Get("/hotspots", proteinHotspotsHandler)
			r.Get("/anomalies", proteinAnomaliesHandler)
			r.Get("/confidence", proteinConfidenceHandler)
			r.Get("/structure", proteinStructureHandler)
		})
	})

	return r
}

// Context key for the protein service
type ctxKey string

const proteinServiceKey ctxKey = "proteinService"

// proteinMiddleware resolves the gene from the URL and injects its
// service into the request context.
func proteinMiddleware(registry *ProteinRegistry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			symbol := chi.URLParam(r, "gene")
			svc := registry.Get(symbol)
			if svc == nil {
				http.Error(w, "protein not found: "+symbol, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), proteinServiceKey, svc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func getProteinService(r *http.Request) *service.ProteinService {
	if svc, ok := r.Context().Value(proteinServiceKey).(*service.ProteinService); ok {
		return svc
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// proteinsHandler returns the list of loaded proteins.
func proteinsHandler(registry *ProteinRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"default":  registry.DefaultSymbol(),
			"proteins": registry.Proteins(),
			"title":    registry.Title(),
		})
	}
}

// genesHandler returns the full gene autocomplete list.
func genesHandler(registry *ProteinRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"genes": registry.Genes(),
		})
	}
}

// geneSearchHandler filters the autocomplete list. An empty query
// returns an empty result rather than the full list.
func geneSearchHandler(registry *ProteinRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		matches := service.SearchGenes(registry.Genes(), query)
		if matches == nil {
			matches = []protein.GeneSummary{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"query": query,
			"genes": matches,
		})
	}
}

// Protein-scoped handlers (get service from context)
func proteinMetadataHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, svc.Metadata())
}

func proteinMutationsHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}

	q := service.MutationQuery{
		Significance: r.URL.Query().Get("significance"),
		Search:       r.URL.Query().Get("q"),
		SortBy:       r.URL.Query().Get("sort_by"),
		SortDir:      r.URL.Query().Get("sort_dir"),
	}
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			http.Error(w, "invalid page", http.StatusBadRequest)
			return
		}
		q.Page = page
	}

	data, err := svc.MutationsJSON(q)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func proteinHotspotsHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, svc.Hotspots())
}

func proteinAnomaliesHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}
	views := svc.Anomalies()
	if views == nil {
		views = []service.AnomalyView{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"anomalies": views,
		"total":     len(views),
	})
}

func proteinConfidenceHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}
	data, err := svc.ConfidenceJSON()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func proteinStructureHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}

	selected, regions, err := parseSceneQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"gene":   svc.Symbol(),
		"points": svc.Scene(selected, regions),
	})
}

func proteinSnapshotHandler(w http.ResponseWriter, r *http.Request) {
	svc := getProteinService(r)
	if svc == nil {
		http.Error(w, "protein service not found", http.StatusInternalServerError)
		return
	}

	selected, regions, err := parseSceneQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data, err := svc.Snapshot(selected, regions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(data)
}

// parseSceneQuery reads ?mutation=248&mut_aa=GLN&highlight=175-282.
// highlight may repeat.
func parseSceneQuery(r *http.Request) (*service.MutationRef, []protein.Region, error) {
	var selected *service.MutationRef
	if posStr := strings.TrimSpace(r.URL.Query().Get("mutation")); posStr != "" {
		pos, err := strconv.Atoi(posStr)
		if err != nil {
			return nil, nil, errInvalidParam("mutation")
		}
		selected = &service.MutationRef{
			Position: pos,
			MutAA:    strings.TrimSpace(r.URL.Query().Get("mut_aa")),
		}
	}

	var regions []protein.Region
	for _, raw := range r.URL.Query()["highlight"] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		start, end, ok := strings.Cut(raw, "-")
		if !ok {
			return nil, nil, errInvalidParam("highlight")
		}
		s, err1 := strconv.Atoi(start)
		e, err2 := strconv.Atoi(end)
		if err1 != nil || err2 != nil || e < s {
			return nil, nil, errInvalidParam("highlight")
		}
		regions = append(regions, protein.Region{Start: s, End: e})
	}
	return selected, regions, nil
}

type paramError string

func (e paramError) Error() string { return "invalid " + string(e) + " parameter" }

func errInvalidParam(name string) error { return paramError(name) }

// Session handlers. The session is optional router config; without one
// the endpoints answer 503 so callers can tell wiring from bad input.
func requireSession(w http.ResponseWriter, session *dashboard.State) bool {
	if session == nil {
		http.Error(w, "session state not configured", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func sessionViewHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionProteinHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		var req struct {
			Symbol string `json:"symbol"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Symbol) == "" {
			http.Error(w, "missing symbol", http.StatusBadRequest)
			return
		}
		// Unknown symbols are ignored, not errors: the returned view
		// tells the caller whether the switch took effect.
		session.SelectProtein(req.Symbol)
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionMutationHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		var sel dashboard.MutationSelection
		if err := json.NewDecoder(r.Body).Decode(&sel); err != nil || sel.Position <= 0 {
			http.Error(w, "missing mutation position", http.StatusBadRequest)
			return
		}
		session.SelectMutation(sel)
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionClearMutationHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		session.ClearMutation()
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionHighlightHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		var region protein.Region
		if err := json.NewDecoder(r.Body).Decode(&region); err != nil || region.End < region.Start || region.Start <= 0 {
			http.Error(w, "invalid highlight region", http.StatusBadRequest)
			return
		}
		session.HighlightRegion(region)
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionClearHighlightHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		session.ClearHighlight()
		writeJSON(w, http.StatusOK, session.View())
	}
}

func sessionTabHandler(session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireSession(w, session) {
			return
		}
		var req struct {
			Tab string `json:"tab"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tab == "" {
			http.Error(w, "missing tab", http.StatusBadRequest)
			return
		}
		session.SetTab(req.Tab)
		writeJSON(w, http.StatusOK, session.View())
	}
}

// askRequest is the POST /ask-ai body.
type askRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

// askAIHandler proxies a dashboard question to the AI backend. Upstream
// failures map to a 500 with the error text, so the widget can show it.
// When a session is configured, answers pass through its sequence
// guard: only the latest question's answer lands in the session view.
func askAIHandler(client *ai.Client, session *dashboard.State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "AI backend is not configured"})
			return
		}

		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Question) == "" {
			http.Error(w, "missing question", http.StatusBadRequest)
			return
		}

		var seq uint64
		if session != nil {
			seq = session.BeginAsk()
		}

		answer, err := client.Ask(r.Context(), req.Question, req.Context)
		if err != nil {
			log.Printf("ask-ai failed: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
		if session != nil {
			session.ResolveAsk(seq, answer)
		}
		writeJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}
