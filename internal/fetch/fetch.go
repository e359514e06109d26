package fetch

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

/*
Package fetch resolves a URL into the HTML + concatenated CSS blob the
pipeline consumes: inline <style> blocks first, then same-page linked
stylesheets. It is a collaborator of the core, not part of it; the pipeline
never does I/O itself.
*/

// Page is the fetched input for one analysis source.
type Page struct {
	URL  string
	HTML string
	CSS  string
}

// Client fetches pages with a shared timeout and body-size cap.
type Client struct {
	http        *http.Client
	maxBody     int64
	maxSheets   int
	allowLoopback bool
}

// Option tweaks a Client.
type Option func(*Client)

// WithLoopback allows localhost targets; only tests should want this.
func WithLoopback() Option {
	return func(c *Client) { c.allowLoopback = true }
}

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBody  = 5 << 20 // 5 MiB per response
	defaultMaxSheet = 10
)

func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		maxBody:   defaultMaxBody,
		maxSheets: defaultMaxSheet,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Page fetches the document and its stylesheets. Individual stylesheet
// failures are skipped; the page itself failing is an error.
func (c *Client) Page(ctx context.Context, rawURL string) (*Page, error) {
	u, err := c.validate(rawURL)
	if err != nil {
		return nil, err
	}
	body, err := c.get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", u, err)
	}

	inline, hrefs := extractStyles(body)

	var css strings.Builder
	for _, block := range inline {
		css.WriteString(block)
		css.WriteString("\n")
	}
	count := 0
	for _, href := range hrefs {
		if count >= c.maxSheets {
			break
		}
		ref, err := u.Parse(href)
		if err != nil || !isHTTP(ref.Scheme) {
			continue
		}
		sheet, err := c.get(ctx, ref.String())
		if err != nil {
			continue // a missing stylesheet is not fatal
		}
		css.WriteString(sheet)
		css.WriteString("\n")
		count++
	}

	return &Page{URL: u.String(), HTML: body, CSS: css.String()}, nil
}

func (c *Client) validate(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if !isHTTP(u.Scheme) {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url missing host")
	}
	if !c.allowLoopback && isPrivateHost(u.Hostname()) {
		return nil, fmt.Errorf("host %q is not allowed", u.Hostname())
	}
	return u, nil
}

func isHTTP(scheme string) bool {
	return scheme == "http" || scheme == "https"
}

// isPrivateHost rejects the obvious internal targets. Full SSRF validation
// (DNS rebinding and such) belongs to the deployment's egress layer.
func isPrivateHost(host string) bool {
	lower := strings.ToLower(host)
	if lower == "localhost" || strings.HasSuffix(lower, ".local") || strings.HasSuffix(lower, ".internal") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
	}
	return false
}

func (c *Client) get(ctx context.Context, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "get-site-styles/1.0")
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// extractStyles pulls <style> blocks and stylesheet <link> hrefs out of the
// document in order.
func extractStyles(htmlText string) (inline []string, hrefs []string) {
	doc, err := html.Parse(strings.NewReader(htmlText))
	if err != nil {
		return nil, nil
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "style":
				if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
					inline = append(inline, n.FirstChild.Data)
				}
			case "link":
				if isStylesheetLink(n.Attr) {
					for _, a := range n.Attr {
						if a.Key == "href" && a.Val != "" {
							hrefs = append(hrefs, a.Val)
						}
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return inline, hrefs
}

func isStylesheetLink(attrs []html.Attribute) bool {
	for _, a := range attrs {
		if a.Key == "rel" && strings.Contains(strings.ToLower(a.Val), "stylesheet") {
			return true
		}
	}
	return false
}
