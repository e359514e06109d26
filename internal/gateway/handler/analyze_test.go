package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/switmer/Get-Site-Styles-API/internal/fetch"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/cache"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/snapshot"
)

func newTestHandler() (*AnalyzeHandler, *snapshot.MemoryStore) {
	snaps := snapshot.NewMemoryStore()
	return NewAnalyzeHandler(fetch.New(fetch.WithLoopback()), cache.New(8, time.Minute), snaps), snaps
}

func postAnalyze(t *testing.T, h *AnalyzeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)
	return rec
}

func TestAnalyzeInlineCSS(t *testing.T) {
	h, _ := newTestHandler()
	rec := postAnalyze(t, h, `{"css": ".btn { background: #1a73e8; color: #fff; }", "format": "json"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Colors []struct {
			Hex string `json:"hex"`
		} `json:"colors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Colors) == 0 {
		t.Fatalf("no colors in response")
	}
}

func TestAnalyzeRejectsEmptyRequest(t *testing.T) {
	h, _ := newTestHandler()
	rec := postAnalyze(t, h, `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeRejectsBadFormat(t *testing.T) {
	h, _ := newTestHandler()
	rec := postAnalyze(t, h, `{"css": ".a{color:red}", "format": "yaml"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeShadcnContentType(t *testing.T) {
	h, _ := newTestHandler()
	rec := postAnalyze(t, h, `{"css": ".a{color:#336699}", "format": "shadcn"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("content type = %q, want text/css", ct)
	}
	if !strings.Contains(rec.Body.String(), ":root {") {
		t.Fatalf("shadcn output missing :root block")
	}
}

func TestAnalyzeSnapshotsRun(t *testing.T) {
	h, snaps := newTestHandler()
	rec := postAnalyze(t, h, `{"css": ".a{color:#336699}"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	// One snapshot set per uncached run.
	found := false
	if ids := snapshotIDs(snaps); len(ids) != 1 {
		t.Fatalf("snapshot runs = %d, want 1", len(ids))
	} else {
		paths, err := snaps.List(context.Background(), ids[0])
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		for _, p := range paths {
			if p == "result.json" {
				found = true
			}
		}
	}
	if !found {
		t.Fatalf("result.json snapshot missing")
	}
}

func TestAnalyzeCacheHitSkipsSecondSnapshot(t *testing.T) {
	h, snaps := newTestHandler()
	body := `{"css": ".a{color:#abcdef}"}`
	if rec := postAnalyze(t, h, body); rec.Code != http.StatusOK {
		t.Fatalf("first: %d", rec.Code)
	}
	if rec := postAnalyze(t, h, body); rec.Code != http.StatusOK {
		t.Fatalf("second: %d", rec.Code)
	}
	if ids := snapshotIDs(snaps); len(ids) != 1 {
		t.Fatalf("cached replay must not snapshot again, got %d runs", len(ids))
	}
}

func TestAnalyzeMulti(t *testing.T) {
	h, _ := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze/multi", strings.NewReader(`{
		"sources": [
			{"css": ".a{color:#ff0000}", "url": "https://ds.example.com", "sourceType": "design-system"},
			{"css": ".b{color:#ff0000}", "url": "https://www.example.com", "sourceType": "marketing"}
		]
	}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyzeMulti(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	var res struct {
		Merged struct {
			Sources []json.RawMessage `json:"sources"`
		} `json:"merged"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Merged.Sources) != 2 {
		t.Fatalf("sources = %d, want 2", len(res.Merged.Sources))
	}
}

func TestAnalyzeMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler()
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, httptest.NewRequest(http.MethodGet, "/v1/analyze", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

// snapshotIDs walks the memory store for distinct request IDs.
func snapshotIDs(m *snapshot.MemoryStore) []string {
	return m.RequestIDs()
}
