// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"net/http"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

// elsevierAPIBase is the Elsevier full-text article endpoint. Declared as a
// var so tests can substitute an httptest server.
var elsevierAPIBase = "https://api.elsevier.com/content/article/doi/"

// elsevier retrieves full-text XML through the Elsevier article API. Requires
// an Elsevier API key with text-mining entitlement.
type elsevier struct {
	apiKey string
}

func newElsevier(creds credentials.Credentials) Strategy {
	return &elsevier{apiKey: creds.Get(credentials.ElsevierAPIKey)}
}

func (s *elsevier) ID() ID            { return Elsevier }
func (s *elsevier) OutputExt() string { return ExtXML }

func (s *elsevier) Fetch(client *http.Client, doi, destPath string) (string, error) {
	if s.apiKey == "" {
		return "", configMissing(Elsevier, credentials.ElsevierAPIKey)
	}

	header := http.Header{}
	header.Set("X-ELS-APIKey", s.apiKey)
	header.Set("Accept", "text/xml")
	return fetchFile(client, Elsevier, elsevierAPIBase+doi+"?view=FULL", destPath, header)
}
