package color

import (
	"math"
	"testing"
)

func TestParseForms(t *testing.T) {
	cases := []struct {
		in   string
		want RGBA
	}{
		{"#fff", RGBA{255, 255, 255, 1}},
		{"#1a73e8", RGBA{26, 115, 232, 1}},
		{"#1A73E8", RGBA{26, 115, 232, 1}},
		{"#00000080", RGBA{0, 0, 0, float64(0x80) / 255}},
		{"rgb(26, 115, 232)", RGBA{26, 115, 232, 1}},
		{"rgba(26,115,232,0.5)", RGBA{26, 115, 232, 0.5}},
		{"rgb(26 115 232 / 0.5)", RGBA{26, 115, 232, 0.5}},
		{"hsl(0, 100%, 50%)", RGBA{255, 0, 0, 1}},
		{"hsla(0,100%,50%,0.25)", RGBA{255, 0, 0, 0.25}},
		{"white", RGBA{255, 255, 255, 1}},
		{"not-a-color", RGBA{0, 0, 0, 1}},
		{"", RGBA{0, 0, 0, 1}},
	}
	for _, tc := range cases {
		got := Parse(tc.in)
		if got.R != tc.want.R || got.G != tc.want.G || got.B != tc.want.B {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
		if math.Abs(got.A-tc.want.A) > 0.01 {
			t.Fatalf("Parse(%q) alpha = %v, want %v", tc.in, got.A, tc.want.A)
		}
	}
}

func TestHexHSLRoundTrip(t *testing.T) {
	// Sweep a grid of the hex cube; every channel must survive within +/-1.
	miss := 0
	total := 0
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 15 {
				total++
				in := RGBA{uint8(r), uint8(g), uint8(b), 1}
				out := FromHSL(ToHSL(in))
				if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
					miss++
				}
			}
		}
	}
	if float64(miss)/float64(total) > 0.01 {
		t.Fatalf("hex->hsl->hex misses %d of %d samples", miss, total)
	}
}

func TestOKLCHRoundTrip(t *testing.T) {
	for _, hex := range []string{"#1a73e8", "#ff0000", "#00ff00", "#123456", "#fafafa", "#000000", "#ffffff"} {
		in := Parse(hex)
		out := FromOKLCH(ToOKLCH(in))
		if absDiff(in.R, out.R) > 1 || absDiff(in.G, out.G) > 1 || absDiff(in.B, out.B) > 1 {
			t.Fatalf("oklch round trip %s -> %s", hex, Hex(out))
		}
	}
}

func TestOKLCHRanges(t *testing.T) {
	o := ToOKLCH(Parse("#1a73e8"))
	if o.C < 0 {
		t.Fatalf("chroma must be clamped >= 0, got %v", o.C)
	}
	if o.H < 0 || o.H >= 360 {
		t.Fatalf("hue must be normalized to [0,360), got %v", o.H)
	}
}

func TestNormalizeHexIdempotent(t *testing.T) {
	for _, in := range []string{"#ABC", "rgba(10,20,30,0.4)", "hsl(200, 50%, 40%)", "#1a73e8", "garbage"} {
		once := NormalizeHex(in)
		twice := NormalizeHex(once)
		if once != twice {
			t.Fatalf("NormalizeHex not idempotent for %q: %s != %s", in, once, twice)
		}
	}
}

func TestStripOpacityTruncates(t *testing.T) {
	// Truncation is deliberate: rgba(0,0,0,0.1) normalizes to solid black,
	// not to the near-white an alpha composite over white would produce.
	if got := NormalizeHex("rgba(0,0,0,0.1)"); got != "#000000" {
		t.Fatalf("expected #000000, got %s", got)
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(White, Black); math.Abs(got-21) > 0.01 {
		t.Fatalf("white/black contrast = %v, want 21", got)
	}
	if got := ContrastRatio(White, White); math.Abs(got-1) > 0.001 {
		t.Fatalf("white/white contrast = %v, want 1", got)
	}
	a, b := Parse("#1a73e8"), White
	if ContrastRatio(a, b) != ContrastRatio(b, a) {
		t.Fatalf("contrast must be symmetric")
	}
}

func TestDarkVariantBands(t *testing.T) {
	bg := DarkVariant(Parse("#ffffff"), "background", EncodingHSL)
	if l := ToHSL(bg).L; l > 15.5 {
		t.Fatalf("dark background lightness %v > 15", l)
	}
	fg := DarkVariant(Parse("#111111"), "foreground", EncodingHSL)
	if l := ToHSL(fg).L; l < 89.5 {
		t.Fatalf("dark foreground lightness %v < 90", l)
	}
	// Brand hue survives the nudge.
	in := Parse("#1a73e8")
	out := DarkVariant(in, "primary", EncodingHSL)
	if math.Abs(ToHSL(in).H-ToHSL(out).H) > 2 {
		t.Fatalf("primary hue drifted: %v -> %v", ToHSL(in).H, ToHSL(out).H)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
