// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"net/url"
)

// plosFileBase is the PLOS article file endpoint. Declared as a var so tests
// can substitute an httptest server.
var plosFileBase = "https://journals.plos.org/plosone/article/file"

// plos downloads the printable PDF through the PLOS article file endpoint.
// No credentials required.
type plos struct{}

func newPLOS() Strategy { return &plos{} }

func (s *plos) ID() ID            { return PLOS }
func (s *plos) OutputExt() string { return ExtPDF }

func (s *plos) Fetch(client *http.Client, doi, destPath string) (string, error) {
	pdfURL := plosFileBase + "?id=" + url.QueryEscape(doi) + "&type=printable"
	return fetchFile(client, PLOS, pdfURL, destPath, nil)
}
