// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"strings"
)

// Preprint content servers. Declared as vars so tests can substitute
// httptest servers.
var (
	biorxivContentBase = "https://www.biorxiv.org/content/"
	medrxivContentBase = "https://www.medrxiv.org/content/"
)

// preprint downloads directly from the preprint server's content endpoint,
// keyed by the DOI registrant prefix. DOIs from servers without a known
// content URL scheme go through the DOI resolver asking for a PDF.
type preprint struct{}

func newPreprint() Strategy { return &preprint{} }

func (s *preprint) ID() ID            { return Preprint }
func (s *preprint) OutputExt() string { return ExtPDF }

func (s *preprint) Fetch(client *http.Client, doi, destPath string) (string, error) {
	prefix, _, _ := strings.Cut(doi, "/")

	var pdfURL string
	header := http.Header{}
	switch prefix {
	case "10.1101":
		pdfURL = biorxivContentBase + doi + "v1.full.pdf"
	case "10.22541":
		pdfURL = medrxivContentBase + doi + "v1.full.pdf"
	case "10.48550", "10.53731":
		pdfURL = arxivPDFBase + arxivIDFromDOI(doi) + ".pdf"
	default:
		pdfURL = doiBase + doi
		header.Set("Accept", "application/pdf")
	}

	return fetchFile(client, Preprint, pdfURL, destPath, header)
}
