package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPageCollectsInlineAndLinkedCSS(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head>
			<style>.a { color: #111111; }</style>
			<link rel="stylesheet" href="/app.css">
			<link rel="stylesheet" href="/missing.css">
		</head><body></body></html>`))
	})
	mux.HandleFunc("/app.css", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`.b { color: #222222; }`))
	})
	mux.HandleFunc("/missing.css", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(WithLoopback())
	page, err := c.Page(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if !strings.Contains(page.CSS, "#111111") {
		t.Fatalf("inline style block missing from CSS blob")
	}
	if !strings.Contains(page.CSS, "#222222") {
		t.Fatalf("linked stylesheet missing from CSS blob")
	}
	// Inline styles come first.
	if strings.Index(page.CSS, "#111111") > strings.Index(page.CSS, "#222222") {
		t.Fatalf("inline CSS must precede linked CSS")
	}
}

func TestValidateRejectsPrivateHosts(t *testing.T) {
	c := New()
	for _, bad := range []string{
		"http://localhost/x",
		"http://127.0.0.1/x",
		"http://10.0.0.5/x",
		"http://192.168.1.1/x",
		"http://169.254.169.254/latest/meta-data",
		"http://internal.service.local/x",
		"ftp://example.com/x",
		"not a url at all ://",
		"https:///nohost",
	} {
		if _, err := c.Page(context.Background(), bad); err == nil {
			t.Fatalf("expected rejection for %q", bad)
		}
	}
}

func TestValidateAcceptsPublicHosts(t *testing.T) {
	c := New()
	if _, err := c.validate("https://example.com/pricing"); err != nil {
		t.Fatalf("validate: %v", err)
	}
}
