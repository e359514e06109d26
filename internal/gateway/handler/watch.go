package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	"github.com/switmer/Get-Site-Styles-API/internal/merge"
	"github.com/switmer/Get-Site-Styles-API/internal/pipeline"
)

var upgrader = websocket.Upgrader{
	// CORS is enforced by the middleware before the upgrade.
	CheckOrigin: func(*http.Request) bool { return true },
}

type watchEvent struct {
	URL   string `json:"url"`
	Stage string `json:"stage"`
}

// HandleWatch streams pipeline stage events over a websocket, followed by
// the full analysis result. Query params: url, sourceType, colorFormat,
// semanticAnalysis.
func (h *AnalyzeHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	rawURL := strings.TrimSpace(r.URL.Query().Get("url"))
	if rawURL == "" {
		http.Error(w, "url is required", http.StatusBadRequest)
		return
	}
	enc := colorx.Encoding(strings.TrimSpace(r.URL.Query().Get("colorFormat")))
	if enc == "" {
		enc = colorx.EncodingHSL
	}
	semantic := r.URL.Query().Get("semanticAnalysis") != "false"

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	page, err := h.fetcher.Page(r.Context(), rawURL)
	if err != nil {
		_ = conn.WriteJSON(map[string]string{"error": err.Error()})
		return
	}

	events := make(chan watchEvent, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for ev := range events {
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("watch write: %v", err)
				return
			}
		}
	}()

	res := pipeline.Analyze(pipeline.PageInput{
		URL:        page.URL,
		HTML:       page.HTML,
		CSS:        page.CSS,
		SourceType: merge.SourceType(strings.TrimSpace(r.URL.Query().Get("sourceType"))),
	}, pipeline.Options{
		ColorFormat: enc,
		Semantic:    semantic,
		Progress: func(url, stage string) {
			events <- watchEvent{URL: url, Stage: stage}
		},
	})
	close(events)
	<-done

	_ = conn.WriteJSON(map[string]any{"stage": "result", "result": res})
}
