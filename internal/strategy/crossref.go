// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"strings"
)

// crossrefWorksBase is the CrossRef works endpoint used for text-and-data-
// mining links. Declared as a var so tests can substitute an httptest server.
var crossrefWorksBase = "https://api.crossref.org/works/"

// crossrefTDM follows the publisher's text-and-data-mining link advertised in
// CrossRef work metadata, when one exists.
type crossrefTDM struct{}

func newCrossRefTDM() Strategy { return &crossrefTDM{} }

func (s *crossrefTDM) ID() ID            { return CrossRef }
func (s *crossrefTDM) OutputExt() string { return ExtPDF }

// crossrefLinks captures the fulltext links of a CrossRef work record.
type crossrefLinks struct {
	Message struct {
		Link []struct {
			URL         string `json:"URL"`
			ContentType string `json:"content-type"`
		} `json:"link"`
	} `json:"message"`
}

func (s *crossrefTDM) Fetch(client *http.Client, doi, destPath string) (string, error) {
	var work crossrefLinks
	if err := getJSON(client, CrossRef, crossrefWorksBase+doi, nil, &work); err != nil {
		return "", err
	}

	for _, link := range work.Message.Link {
		if strings.HasPrefix(link.ContentType, "application/pdf") && link.URL != "" {
			return fetchFile(client, CrossRef, link.URL, destPath, nil)
		}
	}
	return "", notFound(CrossRef, "no PDF link found via CrossRef for DOI %s", doi)
}
