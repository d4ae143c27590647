package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/protein-lab/server/internal/ai"
	"github.com/protein-lab/server/internal/cache"
	"github.com/protein-lab/server/internal/dashboard"
	"github.com/protein-lab/server/internal/data/protein"
	"github.com/protein-lab/server/internal/render"
	"github.com/protein-lab/server/internal/service"
)

func newTestRouter(t *testing.T, client *ai.Client) http.Handler {
	t.Helper()

	store := protein.SampleStore()
	mgr, err := cache.NewManager(cache.Config{
		SnapshotCacheSizeMB: 16,
		SnapshotTTL:         time.Minute,
		QueryCacheSize:      32,
	})
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	renderer := render.NewSnapshotRenderer(render.Config{ImageSize: 128})

	symbols := store.Symbols()
	registry := NewProteinRegistry(symbols[0], symbols, store.Genes(), "")
	for _, symbol := range symbols {
		rec, _ := store.Record(symbol)
		registry.Register(symbol, service.NewProteinService(service.Config{
			Symbol:   symbol,
			Record:   rec,
			Cache:    mgr,
			Renderer: renderer,
		}))
	}

	return NewRouter(RouterConfig{
		Registry:    registry,
		Session:     dashboard.NewState(store),
		AI:          client,
		CORSOrigins: []string{"*"},
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doGET(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestProteinsEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/api/proteins")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Default  string        `json:"default"`
		Proteins []ProteinInfo `json:"proteins"`
	}
	decodeBody(t, rec, &body)
	if body.Default != "TP53" {
		t.Errorf("default = %s, want TP53", body.Default)
	}
	if len(body.Proteins) != 3 {
		t.Fatalf("proteins = %d, want 3", len(body.Proteins))
	}
	if body.Proteins[0].Symbol != "TP53" || body.Proteins[0].Name != "Tumor Protein p53" {
		t.Errorf("first protein = %+v", body.Proteins[0])
	}
}

func TestGeneSearchEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doGET(t, router, "/api/genes/search?q=tp")
	var body struct {
		Genes []protein.GeneSummary `json:"genes"`
	}
	decodeBody(t, rec, &body)
	if len(body.Genes) != 1 || body.Genes[0].Symbol != "TP53" {
		t.Errorf("search tp = %v, want single TP53 hit", body.Genes)
	}

	rec = doGET(t, router, "/api/genes/search?q=")
	decodeBody(t, rec, &body)
	if len(body.Genes) != 0 {
		t.Errorf("empty query returned %d genes, want none", len(body.Genes))
	}
}

func TestUnknownProteinIs404(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/p/BRCA2/api/metadata")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestMutationsEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doGET(t, router, "/p/TP53/api/mutations?q=248")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var page service.MutationPage
	decodeBody(t, rec, &page)
	if page.Total != 1 || len(page.Items) != 1 {
		t.Fatalf("search 248 total = %d, want 1", page.Total)
	}
	row := page.Items[0]
	if row.Position != 248 || row.WtAA != "ARG" || row.MutAA != "GLN" {
		t.Errorf("row = %+v, want R248Q", row)
	}

	rec = doGET(t, router, "/p/TP53/api/mutations?significance=benign")
	decodeBody(t, rec, &page)
	for _, item := range page.Items {
		if item.Pathogenicity >= 0.5 {
			t.Errorf("benign filter leaked pathogenicity %v", item.Pathogenicity)
		}
	}

	if rec := doGET(t, router, "/p/TP53/api/mutations?page=abc"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad page: status = %d, want 400", rec.Code)
	}
}

func TestHotspotsEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/p/TP53/api/hotspots")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report service.HotspotReport
	decodeBody(t, rec, &report)
	if len(report.Items) == 0 {
		t.Fatal("no hotspots returned")
	}
	top := report.Items[0]
	if top.Region.Start != 175 || top.Region.End != 282 {
		t.Errorf("top hotspot region = %+v, want 175-282", top.Region)
	}
	for i := 1; i < len(report.Items); i++ {
		if report.Items[i].MutationCount > report.Items[i-1].MutationCount {
			t.Error("hotspots not sorted by mutation count")
		}
	}
}

func TestConfidenceEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/p/TP53/api/confidence")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var report service.ConfidenceReport
	decodeBody(t, rec, &report)

	total := 0
	for _, band := range report.Histogram {
		total += band.Count
	}
	if total != len(report.Series) {
		t.Errorf("histogram sum = %d, series = %d", total, len(report.Series))
	}
	if len(report.ReferenceLines) != 4 || report.ReferenceLines[0] != 90 {
		t.Errorf("reference lines = %v", report.ReferenceLines)
	}
}

func TestStructureEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/p/TP53/api/structure?mutation=248&mut_aa=GLN&highlight=175-282")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Gene   string               `json:"gene"`
		Points []service.ScenePoint `json:"points"`
	}
	decodeBody(t, rec, &body)
	if body.Gene != "TP53" {
		t.Errorf("gene = %s", body.Gene)
	}
	marked := 0
	for _, p := range body.Points {
		if p.Mutation {
			marked++
			if p.Color != "#ff0080" {
				t.Errorf("mutation color = %s", p.Color)
			}
		}
	}
	if marked != 1 {
		t.Errorf("mutation-marked points = %d, want 1", marked)
	}

	if rec := doGET(t, newTestRouter(t, nil), "/p/TP53/api/structure?highlight=banana"); rec.Code != http.StatusBadRequest {
		t.Errorf("bad highlight: status = %d, want 400", rec.Code)
	}
}

func TestSnapshotEndpoint(t *testing.T) {
	rec := doGET(t, newTestRouter(t, nil), "/p/TP53/structure/snapshot.png?highlight=175-282")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %s", ct)
	}
	body := rec.Body.Bytes()
	if len(body) < 8 || body[0] != 0x89 || body[1] != 0x50 || body[2] != 0x4e || body[3] != 0x47 {
		t.Error("body is not a PNG")
	}
}

func TestSessionEndpoints(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doGET(t, router, "/api/session")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var view dashboard.Snapshot
	decodeBody(t, rec, &view)
	if view.Protein != "TP53" || view.ActiveTab != dashboard.TabMutations {
		t.Errorf("initial view = %+v", view)
	}

	// Selecting a mutation forces the mutations tab.
	doJSON(t, router, http.MethodPost, "/api/session/tab", `{"tab":"hotspots"}`)
	rec = doJSON(t, router, http.MethodPost, "/api/session/mutation", `{"position":248,"mutAA":"GLN"}`)
	decodeBody(t, rec, &view)
	if view.ActiveTab != dashboard.TabMutations {
		t.Errorf("tab = %s, want %s after mutation select", view.ActiveTab, dashboard.TabMutations)
	}
	if view.SelectedMutation == nil || view.SelectedMutation.Position != 248 {
		t.Errorf("selection = %v, want position 248", view.SelectedMutation)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/session/highlight", `{"start":175,"end":282}`)
	decodeBody(t, rec, &view)
	if view.HighlightedRegion == nil || view.HighlightedRegion.Start != 175 {
		t.Errorf("region = %v, want 175-282", view.HighlightedRegion)
	}

	// Switching proteins clears the selection and highlight.
	rec = doJSON(t, router, http.MethodPost, "/api/session/protein", `{"symbol":"BRCA1"}`)
	view = dashboard.Snapshot{}
	decodeBody(t, rec, &view)
	if view.Protein != "BRCA1" {
		t.Fatalf("protein = %s, want BRCA1", view.Protein)
	}
	if view.SelectedMutation != nil || view.HighlightedRegion != nil {
		t.Error("selection survived protein switch")
	}

	// Unknown symbols are ignored, not errors.
	rec = doJSON(t, router, http.MethodPost, "/api/session/protein", `{"symbol":"BRCA2"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decodeBody(t, rec, &view)
	if view.Protein != "BRCA1" {
		t.Errorf("protein = %s, want BRCA1 unchanged", view.Protein)
	}

	if rec := doJSON(t, router, http.MethodPost, "/api/session/highlight", `{"start":0,"end":-1}`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad region: status = %d, want 400", rec.Code)
	}
	if rec := doJSON(t, router, http.MethodPost, "/api/session/tab", `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("missing tab: status = %d, want 400", rec.Code)
	}
}

func postAskAI(t *testing.T, h http.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask-ai", bytes.NewReader([]byte(payload)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAskAIEndpoint(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "R175H destabilizes the fold."}},
			},
		})
	}))
	defer upstream.Close()

	t.Setenv("TEST_ASK_KEY", "key")
	client := ai.NewClient(ai.Config{BaseURL: upstream.URL, APIKeyEnv: "TEST_ASK_KEY"})
	router := newTestRouter(t, client)

	rec := postAskAI(t, router, `{"question":"What does R175H do?","context":"TP53"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if body["answer"] != "R175H destabilizes the fold." {
		t.Errorf("answer = %q", body["answer"])
	}

	// The answer lands in the session view through the sequence guard.
	var view dashboard.Snapshot
	decodeBody(t, doGET(t, router, "/api/session"), &view)
	if view.Answer != "R175H destabilizes the fold." {
		t.Errorf("session answer = %q", view.Answer)
	}

	if rec := postAskAI(t, router, `{"question":"  ","context":"TP53"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank question: status = %d, want 400", rec.Code)
	}
	if rec := postAskAI(t, router, `{`); rec.Code != http.StatusBadRequest {
		t.Errorf("bad body: status = %d, want 400", rec.Code)
	}
}

func TestAskAIUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "model overloaded"},
		})
	}))
	defer upstream.Close()

	t.Setenv("TEST_ASK_KEY", "key")
	client := ai.NewClient(ai.Config{BaseURL: upstream.URL, APIKeyEnv: "TEST_ASK_KEY"})
	router := newTestRouter(t, client)

	rec := postAskAI(t, router, `{"question":"q","context":"c"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	decodeBody(t, rec, &body)
	if !strings.Contains(body["error"], "model overloaded") {
		t.Errorf("error = %q, want upstream message included", body["error"])
	}
}

func TestAskAINotConfigured(t *testing.T) {
	rec := postAskAI(t, newTestRouter(t, nil), `{"question":"q","context":"c"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
