package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
	"github.com/switmer/Get-Site-Styles-API/internal/fetch"
	"github.com/switmer/Get-Site-Styles-API/internal/format"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/cache"
	"github.com/switmer/Get-Site-Styles-API/internal/gateway/snapshot"
	"github.com/switmer/Get-Site-Styles-API/internal/merge"
	"github.com/switmer/Get-Site-Styles-API/internal/pipeline"
)

// AnalyzeHandler serves the analysis endpoints. Fetching, caching and
// snapshotting live here; the pipeline itself stays I/O-free.
type AnalyzeHandler struct {
	fetcher   *fetch.Client
	results   *cache.ResultCache
	snapshots snapshot.Repository
}

func NewAnalyzeHandler(fetcher *fetch.Client, results *cache.ResultCache, snapshots snapshot.Repository) *AnalyzeHandler {
	return &AnalyzeHandler{fetcher: fetcher, results: results, snapshots: snapshots}
}

type analyzeRequest struct {
	URL        string `json:"url"`
	HTML       string `json:"html"`
	CSS        string `json:"css"`
	SourceType string `json:"sourceType"`

	Format        string `json:"format"`
	ColorFormat   string `json:"colorFormat"`
	Semantic      *bool  `json:"semanticAnalysis"`
	IncludeImages bool   `json:"includeImages"`
}

type multiRequest struct {
	Sources []struct {
		URL        string `json:"url"`
		HTML       string `json:"html"`
		CSS        string `json:"css"`
		SourceType string `json:"sourceType"`
	} `json:"sources"`
	Format      string `json:"format"`
	ColorFormat string `json:"colorFormat"`
	Semantic    *bool  `json:"semanticAnalysis"`
}

func (h *AnalyzeHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.URL) == "" && in.HTML == "" && in.CSS == "" {
		http.Error(w, "url or inline html/css is required", http.StatusBadRequest)
		return
	}
	outFormat, opts, err := parseOptions(in.Format, in.ColorFormat, in.Semantic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts.IncludeImages = in.IncludeImages
	key := cache.Key([]string{in.URL, in.HTML, in.CSS}, string(outFormat), string(opts.ColorFormat), fmt.Sprint(opts.Semantic), fmt.Sprint(in.IncludeImages))
	if body, ok := h.results.Get(key); ok {
		writeRendered(w, outFormat, body)
		return
	}

	input, err := h.resolveInput(r.Context(), in.URL, in.HTML, in.CSS, in.SourceType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	res := pipeline.Analyze(input, opts)

	body, err := renderSingle(outFormat, res)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.results.Add(key, body)
	h.snapshotRun(r.Context(), input, body)
	writeRendered(w, outFormat, body)
}

func (h *AnalyzeHandler) HandleAnalyzeMulti(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in multiRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	if len(in.Sources) == 0 {
		http.Error(w, "at least one source is required", http.StatusBadRequest)
		return
	}
	outFormat, opts, err := parseOptions(in.Format, in.ColorFormat, in.Semantic)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	urls := make([]string, 0, len(in.Sources))
	for _, s := range in.Sources {
		urls = append(urls, s.URL+"|"+s.SourceType)
	}
	key := cache.Key(urls, string(outFormat), string(opts.ColorFormat), fmt.Sprint(opts.Semantic))
	if body, ok := h.results.Get(key); ok {
		writeRendered(w, outFormat, body)
		return
	}

	inputs := make([]pipeline.PageInput, 0, len(in.Sources))
	for _, s := range in.Sources {
		input, err := h.resolveInput(r.Context(), s.URL, s.HTML, s.CSS, s.SourceType)
		if err != nil {
			http.Error(w, fmt.Sprintf("source %s: %v", s.URL, err), http.StatusBadGateway)
			return
		}
		inputs = append(inputs, input)
	}

	multi := pipeline.AnalyzeAll(inputs, opts)

	body, err := renderMulti(outFormat, multi)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.results.Add(key, body)
	writeRendered(w, outFormat, body)
}

// resolveInput fetches the page when a URL is given and no inline content
// overrides it.
func (h *AnalyzeHandler) resolveInput(ctx context.Context, url, htmlText, cssText, sourceType string) (pipeline.PageInput, error) {
	in := pipeline.PageInput{
		URL:        strings.TrimSpace(url),
		HTML:       htmlText,
		CSS:        cssText,
		SourceType: merge.SourceType(strings.TrimSpace(sourceType)),
	}
	if in.URL != "" && in.HTML == "" && in.CSS == "" {
		page, err := h.fetcher.Page(ctx, in.URL)
		if err != nil {
			return pipeline.PageInput{}, err
		}
		in.HTML = page.HTML
		in.CSS = page.CSS
	}
	return in, nil
}

func (h *AnalyzeHandler) snapshotRun(ctx context.Context, in pipeline.PageInput, result []byte) {
	if h.snapshots == nil {
		return
	}
	id := newRequestID()
	_ = h.snapshots.Put(ctx, id, "page.html", []byte(in.HTML))
	_ = h.snapshots.Put(ctx, id, "styles.css", []byte(in.CSS))
	_ = h.snapshots.Put(ctx, id, "result.json", result)
}

func newRequestID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func parseOptions(formatName, colorFormat string, semantic *bool) (format.Format, pipeline.Options, error) {
	f := format.Format(strings.TrimSpace(formatName))
	if f == "" {
		f = format.FormatJSON
	}
	if !format.Supported(f) {
		return "", pipeline.Options{}, fmt.Errorf("unsupported format %q", f)
	}
	enc := colorx.Encoding(strings.TrimSpace(colorFormat))
	switch enc {
	case "":
		enc = colorx.EncodingHSL
	case colorx.EncodingHSL, colorx.EncodingOKLCH, colorx.EncodingHex:
	default:
		return "", pipeline.Options{}, fmt.Errorf("unsupported color format %q", enc)
	}
	sem := true
	if semantic != nil {
		sem = *semantic
	}
	return f, pipeline.Options{ColorFormat: enc, Semantic: sem}, nil
}

func renderSingle(f format.Format, res *pipeline.Result) ([]byte, error) {
	switch f {
	case format.FormatJSON:
		return json.Marshal(res)
	case format.FormatStyleDictionary:
		return format.StyleDictionary(res.Tokens, res.Colors)
	case format.FormatShadcn:
		return []byte(format.ShadcnCSS(res.Theme)), nil
	case format.FormatTailwind:
		return format.TailwindReport(res.Tokens, res.Colors)
	case format.FormatThemeJSON:
		return format.ThemeJSON(res.Theme)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

func renderMulti(f format.Format, multi *pipeline.MultiResult) ([]byte, error) {
	switch f {
	case format.FormatJSON:
		return json.Marshal(multi)
	case format.FormatStyleDictionary:
		return format.StyleDictionary(mergedTokenSet(multi), multi.Merged.Colors)
	case format.FormatShadcn:
		return []byte(format.ShadcnCSS(multi.Theme)), nil
	case format.FormatTailwind:
		return format.TailwindReport(mergedTokenSet(multi), multi.Merged.Colors)
	case format.FormatThemeJSON:
		return format.ThemeJSON(multi.Theme)
	}
	return nil, fmt.Errorf("unsupported format %q", f)
}

// mergedTokenSet flattens merged tokens back into a TokenSet for the
// formatters, which operate on per-page shapes.
func mergedTokenSet(multi *pipeline.MultiResult) *cssx.TokenSet {
	ts := &cssx.TokenSet{Tokens: make(map[cssx.TokenKind][]cssx.Token)}
	for kind, tokens := range multi.Merged.Tokens {
		for _, t := range tokens {
			ts.Tokens[kind] = append(ts.Tokens[kind], cssx.Token{
				Kind:       kind,
				RawValue:   t.RawValue,
				Count:      int(t.Frequency + 0.5),
				Prevalence: t.Prevalence,
			})
		}
	}
	return ts
}

func writeRendered(w http.ResponseWriter, f format.Format, body []byte) {
	if f == format.FormatShadcn {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	_, _ = w.Write(body)
}
