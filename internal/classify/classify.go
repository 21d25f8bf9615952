// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify resolves a DOI to its publisher or preprint-server name.
// Known preprint registrant prefixes are answered from a static table without
// any network call; everything else is looked up in the CrossRef registry,
// falling back to DataCite when CrossRef has no record.
package classify

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/pdiddy/fulltext-engine/internal/fetchlog"
	"github.com/pdiddy/fulltext-engine/pkg/types"
)

// Registry endpoints. Declared as vars so tests can substitute httptest
// servers.
var (
	crossrefAPIBase = "https://api.crossref.org/works/"
	dataciteAPIBase = "https://api.datacite.org/dois/"
)

// preprintPrefixes maps DOI registrant prefixes to known preprint servers,
// letting those DOIs skip the registry lookup entirely.
var preprintPrefixes = map[string]string{
	"10.1101":  "bioRxiv",
	"10.21203": "Research Square",
	"10.31219": "OSF Preprints",
	"10.20944": "Preprints.org",
	"10.26434": "chemRxiv",
	"10.22541": "medRxiv",
	"10.31730": "EarthArXiv",
	"10.1149":  "ECSarXiv",
	"10.3886":  "SSRN",
	"10.33774": "Cambridge Open Engage",
	"10.2139":  "SSRN",
	"10.53731": "arXiv",
	"10.48550": "arXiv",
	"10.57967": "engRxiv",
	"10.3389":  "Frontiers Media SA",
	"10.4175":  "Frontiers Media SA",
}

// errRegistryNotFound marks a 404 from CrossRef, the cue to try DataCite.
var errRegistryNotFound = fmt.Errorf("no registry record")

// Source resolves doi to a publisher or preprint-server name. It returns ""
// when the DOI cannot be resolved; that is a valid outcome, not an error.
// Registry failures are logged and swallowed so classification never aborts a
// resolution.
func Source(client *http.Client, log *fetchlog.Logger, doi string, cfg types.HTTPConfig) string {
	prefix, _, _ := strings.Cut(doi, "/")
	if source, ok := preprintPrefixes[prefix]; ok {
		return source
	}

	publisher, err := queryCrossRef(client, doi, cfg)
	if err == errRegistryNotFound {
		publisher, err = queryDataCite(client, doi, cfg)
	}
	if err != nil {
		log.Warn("could not resolve DOI to publisher", "doi", doi, "error", err)
		return ""
	}
	return publisher
}

// crossrefWork captures the publisher field of a CrossRef work record.
type crossrefWork struct {
	Message struct {
		Publisher string `json:"publisher"`
	} `json:"message"`
}

func queryCrossRef(client *http.Client, doi string, cfg types.HTTPConfig) (string, error) {
	var work crossrefWork
	if err := getJSON(client, crossrefAPIBase+doi, cfg, &work); err != nil {
		return "", err
	}
	return work.Message.Publisher, nil
}

// dataciteDOI captures the publisher field of a DataCite DOI record.
type dataciteDOI struct {
	Data struct {
		Attributes struct {
			Publisher string `json:"publisher"`
		} `json:"attributes"`
	} `json:"data"`
}

func queryDataCite(client *http.Client, doi string, cfg types.HTTPConfig) (string, error) {
	var record dataciteDOI
	if err := getJSON(client, dataciteAPIBase+doi, cfg, &record); err != nil {
		return "", err
	}
	return record.Data.Attributes.Publisher, nil
}

func getJSON(client *http.Client, url string, cfg types.HTTPConfig, v any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("registry request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errRegistryNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("registry returned HTTP %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("parsing registry response: %w", err)
	}
	return nil
}
