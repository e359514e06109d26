package pipeline

import (
	"testing"

	"github.com/switmer/Get-Site-Styles-API/internal/classify"
	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	"github.com/switmer/Get-Site-Styles-API/internal/merge"
)

const samplePage = `<html><body>
	<header class="site-header"><span class="logo">Acme</span></header>
	<button class="btn" style="background: #1a73e8">Buy</button>
</body></html>`

const sampleCSS = `
	:root { --brand: #1a73e8; }
	body { background: #ffffff; color: #222222; }
	.btn { background: var(--brand); color: #ffffff; border-radius: 6px; padding: 8px 16px; }
	.site-header { background: #f5f5f5; }
`

func TestAnalyzeEndToEnd(t *testing.T) {
	res := Analyze(PageInput{
		URL:        "https://acme.example.com",
		HTML:       samplePage,
		CSS:        sampleCSS,
		SourceType: merge.SourceMarketing,
	}, Options{ColorFormat: colorx.EncodingHSL, Semantic: true})

	if res.Tokens == nil || len(res.Colors) == 0 {
		t.Fatalf("pipeline produced empty output")
	}

	var brand *classify.ColorAnalysis
	for i := range res.Colors {
		if res.Colors[i].Hex == "#1a73e8" {
			brand = &res.Colors[i]
		}
	}
	if brand == nil {
		t.Fatalf("brand color missing from analyses")
	}
	if brand.Role != classify.RolePrimary {
		t.Fatalf("brand role = %s, want primary (score %v)", brand.Role, brand.Score())
	}
	if res.Theme.Light["primary"] == "" {
		t.Fatalf("theme missing primary")
	}
	if res.Meta.SourceType != merge.SourceMarketing {
		t.Fatalf("source metadata lost")
	}
}

func TestAnalyzeWithoutSemantic(t *testing.T) {
	res := Analyze(PageInput{URL: "u", CSS: sampleCSS}, Options{ColorFormat: colorx.EncodingHex})
	if res.Semantic != nil {
		t.Fatalf("semantic analysis must be skipped when disabled")
	}
	if len(res.Colors) == 0 {
		t.Fatalf("heuristic-only scoring must still classify")
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze(PageInput{URL: "u"}, Options{ColorFormat: colorx.EncodingHex})
	if res.Theme.Light["background"] == "" {
		t.Fatalf("empty input must still yield a structurally complete theme")
	}
}

func TestProgressCallback(t *testing.T) {
	var stages []string
	Analyze(PageInput{URL: "u", CSS: ".a{color:#123456}"}, Options{
		ColorFormat: colorx.EncodingHex,
		Progress:    func(_, stage string) { stages = append(stages, stage) },
	})
	if len(stages) == 0 || stages[len(stages)-1] != "done" {
		t.Fatalf("progress stages = %v", stages)
	}
}

func TestAnalyzeAllJoinsBeforeMerging(t *testing.T) {
	ins := []PageInput{
		{URL: "https://design.example.com", CSS: `.a { color: #ff0000; }`, SourceType: merge.SourceDesignSystem},
		{URL: "https://www.example.com", CSS: `.b { color: #ff0000; }`, SourceType: merge.SourceMarketing},
	}
	multi := AnalyzeAll(ins, Options{ColorFormat: colorx.EncodingHSL})
	if multi.Merged == nil || len(multi.Merged.Sources) != 2 {
		t.Fatalf("expected 2 sources in merged result")
	}
	if len(multi.Merged.Colors) == 0 {
		t.Fatalf("merged colors empty")
	}
	if multi.Theme.Light["primary"] == "" {
		t.Fatalf("merged theme incomplete")
	}
}

type fakeImages struct{}

func (fakeImages) Colors(string) map[string]int { return map[string]int{"#00ff88": 3} }

func TestImageSourceHook(t *testing.T) {
	res := Analyze(PageInput{URL: "u", CSS: ".a{color:#123456}"}, Options{
		ColorFormat:   colorx.EncodingHex,
		IncludeImages: true,
		Images:        fakeImages{},
	})
	found := false
	for _, c := range res.Colors {
		if c.Hex == "#00ff88" {
			found = true
		}
	}
	if !found {
		t.Fatalf("image-sourced color missing")
	}
}
