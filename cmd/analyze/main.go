package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	colorx "github.com/switmer/Get-Site-Styles-API/internal/color"
	"github.com/switmer/Get-Site-Styles-API/internal/fetch"
	"github.com/switmer/Get-Site-Styles-API/internal/format"
	"github.com/switmer/Get-Site-Styles-API/internal/merge"
	"github.com/switmer/Get-Site-Styles-API/internal/pipeline"
)

func main() {
	urls := flag.String("url", "", "comma-separated page URLs to analyze")
	outFormat := flag.String("format", "json", "output format: json, style-dictionary, shadcn, tailwind, theme-json")
	colorFormat := flag.String("color-format", "hsl", "color encoding: hsl, oklch, hex")
	semantic := flag.Bool("semantic", true, "weight colors by DOM context")
	sourceType := flag.String("source-type", "", "source type hint: design-system, documentation, application, marketing")
	out := flag.String("out", "", "write output to file instead of stdout")
	flag.Parse()

	if strings.TrimSpace(*urls) == "" {
		flag.Usage()
		os.Exit(2)
	}
	f := format.Format(*outFormat)
	if !format.Supported(f) {
		log.Fatalf("unsupported format %q", *outFormat)
	}
	enc := colorx.Encoding(*colorFormat)
	switch enc {
	case colorx.EncodingHSL, colorx.EncodingOKLCH, colorx.EncodingHex:
	default:
		log.Fatalf("unsupported color format %q", *colorFormat)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := fetch.New()
	var inputs []pipeline.PageInput
	for _, raw := range strings.Split(*urls, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		page, err := client.Page(ctx, raw)
		if err != nil {
			log.Fatalf("fetch %s: %v", raw, err)
		}
		inputs = append(inputs, pipeline.PageInput{
			URL:        page.URL,
			HTML:       page.HTML,
			CSS:        page.CSS,
			SourceType: merge.SourceType(strings.TrimSpace(*sourceType)),
		})
	}
	if len(inputs) == 0 {
		log.Fatal("no valid URLs")
	}

	opts := pipeline.Options{ColorFormat: enc, Semantic: *semantic}

	var body []byte
	var err error
	if len(inputs) == 1 {
		res := pipeline.Analyze(inputs[0], opts)
		body, err = renderSingle(f, res)
	} else {
		multi := pipeline.AnalyzeAll(inputs, opts)
		body, err = renderMulti(f, multi)
	}
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if strings.TrimSpace(*out) != "" {
		if err := os.WriteFile(*out, body, 0o644); err != nil {
			log.Fatalf("write %s: %v", *out, err)
		}
		return
	}
	fmt.Println(string(body))
}

func renderSingle(f format.Format, res *pipeline.Result) ([]byte, error) {
	switch f {
	case format.FormatJSON:
		return json.MarshalIndent(res, "", "  ")
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
		return json.MarshalIndent(multi, "", "  ")
	case format.FormatShadcn:
		return []byte(format.ShadcnCSS(multi.Theme)), nil
	case format.FormatThemeJSON:
		return format.ThemeJSON(multi.Theme)
	}
	// Token-level formats need the flattened merged set; the API gateway
	// serves those, the CLI keeps to whole-result output.
	return json.MarshalIndent(multi, "", "  ")
}
