// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"strings"
)

// arxivPDFBase is the arXiv PDF endpoint. Declared as a var so tests can
// substitute an httptest server.
var arxivPDFBase = "https://arxiv.org/pdf/"

// arxiv downloads the PDF of an arXiv paper from its DataCite DOI by
// extracting the arXiv identifier from the DOI suffix.
type arxiv struct{}

func newArxiv() Strategy { return &arxiv{} }

func (s *arxiv) ID() ID            { return ArXiv }
func (s *arxiv) OutputExt() string { return ExtPDF }

func (s *arxiv) Fetch(client *http.Client, doi, destPath string) (string, error) {
	return fetchFile(client, ArXiv, arxivPDFBase+arxivIDFromDOI(doi)+".pdf", destPath, nil)
}

// arxivIDFromDOI extracts the arXiv identifier from a DOI like
// "10.48550/arXiv.2504.00812", stripping the "arXiv." or "arXiv:" marker.
func arxivIDFromDOI(doi string) string {
	id := doi
	if i := strings.LastIndex(doi, "/"); i >= 0 {
		id = doi[i+1:]
	}
	lower := strings.ToLower(id)
	for _, marker := range []string{"arxiv.", "arxiv:"} {
		if strings.HasPrefix(lower, marker) {
			return id[len(marker):]
		}
	}
	return id
}
