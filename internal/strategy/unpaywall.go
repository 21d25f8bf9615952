// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"
	"net/url"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

// unpaywallAPIBase is the Unpaywall works endpoint. Declared as a var so
// tests can substitute an httptest server.
var unpaywallAPIBase = "https://api.unpaywall.org/v2/"

// unpaywall locates an open-access PDF through the Unpaywall aggregator.
// Unpaywall requires a contact email on every request.
type unpaywall struct {
	email string
}

func newUnpaywall(creds credentials.Credentials) Strategy {
	return &unpaywall{email: creds.Get(credentials.UnpaywallEmail)}
}

func (s *unpaywall) ID() ID            { return Unpaywall }
func (s *unpaywall) OutputExt() string { return ExtPDF }

// unpaywallResponse captures the best open-access location of a work.
type unpaywallResponse struct {
	BestOALocation *struct {
		URLForPDF string `json:"url_for_pdf"`
	} `json:"best_oa_location"`
}

func (s *unpaywall) Fetch(client *http.Client, doi, destPath string) (string, error) {
	if s.email == "" {
		return "", configMissing(Unpaywall, credentials.UnpaywallEmail)
	}

	apiURL := unpaywallAPIBase + doi + "?email=" + url.QueryEscape(s.email)
	var oa unpaywallResponse
	if err := getJSON(client, Unpaywall, apiURL, nil, &oa); err != nil {
		return "", err
	}

	if oa.BestOALocation == nil || oa.BestOALocation.URLForPDF == "" {
		return "", notFound(Unpaywall, "no open-access PDF found for DOI %s", doi)
	}
	return fetchFile(client, Unpaywall, oa.BestOALocation.URLForPDF, destPath, nil)
}
