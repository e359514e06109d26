package pipeline

import (
	"sync"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	cssx "github.com/switmer/Get-Site-Styles-API/internal/css"
	"github.com/switmer/Get-Site-Styles-API/internal/merge"
	semanticx "github.com/switmer/Get-Site-Styles-API/internal/semantic"
	"github.com/switmer/Get-Site-Styles-API/internal/theme"
)

/*
Package pipeline wires the stages together: extract -> weight -> classify ->
theme, and the multi-source variant that joins per-source results before
merging. Every stage is a pure function over its inputs; per-source analyses
run concurrently because nothing is shared.
*/

// ImageColorSource is the hook for pixel-based color extraction. The core
// ships a no-op implementation; a real extractor plugs in at the gateway.
type ImageColorSource interface {
	// Colors returns literal -> occurrence count harvested from page images.
	Colors(htmlText string) map[string]int
}

// NoopImages is the stub image source.
type NoopImages struct{}

func (NoopImages) Colors(string) map[string]int { return nil }

// Options controls one analysis run.
type Options struct {
	ColorFormat   colorx.Encoding
	Semantic      bool
	IncludeImages bool
	Images        ImageColorSource

	// Progress, when set, receives stage notifications. Used by the
	// gateway's watch endpoint; nil is fine.
	Progress func(url, stage string)
}

// PageInput is one fetched page, already resolved to text by the fetcher.
type PageInput struct {
	URL        string
	HTML       string
	CSS        string
	SourceType merge.SourceType
}

// Result is the full single-page analysis.
type Result struct {
	URL      string                   `json:"url"`
	Meta     merge.SourceMetadata     `json:"meta"`
	Tokens   *cssx.TokenSet           `json:"tokens"`
	Colors   []classify.ColorAnalysis `json:"colors"`
	Theme    theme.Theme              `json:"theme"`
	Semantic *semanticx.Analysis      `json:"semantic,omitempty"`
}

// MultiResult joins the merged view with its theme.
type MultiResult struct {
	Merged *merge.Result `json:"merged"`
	Theme  theme.Theme   `json:"theme"`
}

// Analyze runs the single-page pipeline. It never fails: malformed input
// degrades to an empty token set and a default theme.
func Analyze(in PageInput, opts Options) *Result {
	notify := func(stage string) {
		if opts.Progress != nil {
			opts.Progress(in.URL, stage)
		}
	}

	notify("extract")
	tokens := cssx.Extract(in.CSS)

	var sem *semanticx.Analysis
	if opts.Semantic && in.HTML != "" {
		notify("semantic")
		sem = semanticx.Analyze(in.HTML, in.CSS)
	}

	freq := tokens.ColorFrequencies(colorx.NormalizeHex)
	if opts.IncludeImages && opts.Images != nil {
		for lit, count := range opts.Images.Colors(in.HTML) {
			freq[lit] += count
		}
	}

	notify("classify")
	colors := classify.Analyze(freq, tokens.ColorsFromVariables, sem, in.HTML, in.CSS)

	notify("theme")
	th := theme.Generate(colors, opts.ColorFormat)

	notify("done")
	return &Result{
		URL:      in.URL,
		Meta:     merge.NewSourceMetadata(in.URL, in.SourceType, len(in.CSS)),
		Tokens:   tokens,
		Colors:   colors,
		Theme:    th,
		Semantic: sem,
	}
}

// AnalyzeAll runs each source through the pipeline concurrently, then merges
// once all per-source results exist (a plain join barrier; no partial merge).
func AnalyzeAll(ins []PageInput, opts Options) *MultiResult {
	results := make([]*Result, len(ins))
	var wg sync.WaitGroup
	for i, in := range ins {
		wg.Add(1)
		go func(i int, in PageInput) {
			defer wg.Done()
			results[i] = Analyze(in, opts)
		}(i, in)
	}
	wg.Wait()

	sources := make([]merge.PerSource, 0, len(results))
	for _, r := range results {
		sources = append(sources, merge.PerSource{
			Meta:     r.Meta,
			Tokens:   r.Tokens,
			Analyses: r.Colors,
		})
	}
	merged := merge.Merge(sources)
	return &MultiResult{
		Merged: merged,
		Theme:  theme.Generate(merged.Colors, opts.ColorFormat),
	}
}
