// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/pdiddy/fulltext-engine/internal/httputil"
)

// browserUserAgent is sent to sites that refuse non-browser clients.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.93 Safari/537.36"

// fetchPage resolves pageURL (following redirects), parses the HTML body, and
// returns the final URL after redirects together with the document root.
func fetchPage(client *http.Client, id ID, pageURL string, header http.Header) (string, *html.Node, error) {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return "", nil, transport(id, err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, transport(id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, classifyHTTPError(id, &httputil.StatusError{URL: pageURL, StatusCode: resp.StatusCode})
	}

	root, err := html.Parse(resp.Body)
	if err != nil {
		return "", nil, transport(id, err)
	}
	return resp.Request.URL.String(), root, nil
}

// findLink walks the document and returns the first anchor href accepted by
// match, or "" when none qualifies.
func findLink(root *html.Node, match func(href string) bool) string {
	var found string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					href := strings.TrimSpace(attr.Val)
					if href != "" && match(href) {
						found = href
					}
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// resolveRef resolves href against the page it was scraped from.
func resolveRef(pageURL, href string) string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// elifeSiteBase anchors relative PDF links scraped from eLife pages.
// Declared as a var so tests can substitute an httptest server.
var elifeSiteBase = "https://elifesciences.org"

// elife scrapes the eLife article page reached through the DOI resolver for
// its PDF download link.
type elife struct{}

func newELife() Strategy { return &elife{} }

func (s *elife) ID() ID            { return ELife }
func (s *elife) OutputExt() string { return ExtPDF }

func (s *elife) Fetch(client *http.Client, doi, destPath string) (string, error) {
	header := http.Header{}
	header.Set("Accept", "text/html")
	header.Set("User-Agent", browserUserAgent)

	pageURL, root, err := fetchPage(client, ELife, doiBase+doi, header)
	if err != nil {
		return "", err
	}

	link := findLink(root, func(href string) bool {
		return strings.Contains(strings.ToLower(href), "pdf")
	})
	if link == "" {
		return "", notFound(ELife, "no PDF link found on eLife page for DOI %s", doi)
	}
	if strings.HasPrefix(link, "/") {
		link = elifeSiteBase + link
	}

	header.Set("Referer", pageURL)
	return fetchFile(client, ELife, link, destPath, header)
}

// cambridge scrapes the Cambridge University Press article page reached
// through the DOI resolver for its PDF link.
type cambridge struct{}

func newCambridge() Strategy { return &cambridge{} }

func (s *cambridge) ID() ID            { return Cambridge }
func (s *cambridge) OutputExt() string { return ExtPDF }

func (s *cambridge) Fetch(client *http.Client, doi, destPath string) (string, error) {
	// Tolerate DOIs pasted as full resolver URLs.
	if strings.HasPrefix(doi, "http") {
		if _, rest, ok := strings.Cut(doi, "doi.org/"); ok {
			doi = rest
		}
	}

	pageURL, root, err := fetchPage(client, Cambridge, doiBase+doi, nil)
	if err != nil {
		return "", err
	}

	link := findLink(root, func(href string) bool {
		return strings.Contains(href, "/pdf/") || strings.HasSuffix(strings.ToLower(href), ".pdf")
	})
	if link == "" {
		return "", notFound(Cambridge, "could not find PDF link on the Cambridge article page")
	}

	return fetchFile(client, Cambridge, resolveRef(pageURL, link), destPath, nil)
}
