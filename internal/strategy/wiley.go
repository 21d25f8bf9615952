// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

// wileyAPIBase is the Wiley text-and-data-mining endpoint. Declared as a var
// so tests can substitute an httptest server.
var wileyAPIBase = "https://api.wiley.com/onlinelibrary/tdm/v1/articles/"

// wiley downloads PDFs through the Wiley TDM API. Requires a Wiley TDM client
// token.
type wiley struct {
	apiKey string
}

func newWiley(creds credentials.Credentials) Strategy {
	return &wiley{apiKey: creds.Get(credentials.WileyAPIKey)}
}

func (s *wiley) ID() ID            { return Wiley }
func (s *wiley) OutputExt() string { return ExtPDF }

func (s *wiley) Fetch(client *http.Client, doi, destPath string) (string, error) {
	if s.apiKey == "" {
		return "", configMissing(Wiley, credentials.WileyAPIKey)
	}

	header := http.Header{}
	header.Set("Wiley-TDM-Client-Token", s.apiKey)
	return fetchFile(client, Wiley, wileyAPIBase+doi, destPath, header)
}
