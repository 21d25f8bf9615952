// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
	"github.com/pdiddy/fulltext-engine/internal/httputil"
)

// Springer endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	springerPDFBase     = "https://link.springer.com/content/pdf/"
	springerArticleBase = "https://link.springer.com/article/"
	springerOpenAPIBase = "https://api.springernature.com/openaccess/jats"
)

// springerPDF constructs the direct content URL for a Springer (including
// Nature) article. Mimics a browser; closed-access content will refuse.
type springerPDF struct{}

func newSpringerPDF() Strategy { return &springerPDF{} }

func (s *springerPDF) ID() ID            { return SpringerPDF }
func (s *springerPDF) OutputExt() string { return ExtPDF }

func (s *springerPDF) Fetch(client *http.Client, doi, destPath string) (string, error) {
	header := http.Header{}
	header.Set("User-Agent", "Mozilla/5.0")
	header.Set("Referer", springerArticleBase+doi)
	return fetchFile(client, SpringerPDF, springerPDFBase+doi+".pdf", destPath, header)
}

// springerOpen retrieves JATS full text for open-access Springer Nature
// articles. Requires a Springer Nature API key.
type springerOpen struct {
	apiKey string
}

func newSpringerOpen(creds credentials.Credentials) Strategy {
	return &springerOpen{apiKey: creds.Get(credentials.SpringerAPIKey)}
}

func (s *springerOpen) ID() ID            { return SpringerOpen }
func (s *springerOpen) OutputExt() string { return ExtXML }

func (s *springerOpen) Fetch(client *http.Client, doi, destPath string) (string, error) {
	if s.apiKey == "" {
		return "", configMissing(SpringerOpen, credentials.SpringerAPIKey)
	}

	apiURL := springerOpenAPIBase + "?q=" + url.QueryEscape("doi:"+doi) + "&api_key=" + url.QueryEscape(s.apiKey)
	resp, err := client.Get(apiURL)
	if err != nil {
		return "", transport(SpringerOpen, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", classifyHTTPError(SpringerOpen, &httputil.StatusError{URL: springerOpenAPIBase, StatusCode: resp.StatusCode})
	}

	// The JATS response is read into memory so an empty result set can be
	// told apart from a populated one before anything is written to disk.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transport(SpringerOpen, err)
	}
	if !strings.Contains(string(body), "<article") {
		return "", notFound(SpringerOpen, "no open-access content found for DOI %s via Springer API", doi)
	}

	if err := os.WriteFile(destPath, body, 0o644); err != nil {
		return "", transport(SpringerOpen, err)
	}
	return destPath, nil
}
