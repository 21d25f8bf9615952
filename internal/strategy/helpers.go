// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pdiddy/fulltext-engine/internal/httputil"
)

// fetchFile downloads url to destPath, mapping HTTP failures onto the
// strategy error kinds: 404/410 to not-found, 401/403 to access-denied,
// everything else to a transport failure.
func fetchFile(client *http.Client, id ID, url, destPath string, header http.Header) (string, error) {
	path, err := httputil.Download(client, url, destPath, header)
	if err != nil {
		return "", classifyHTTPError(id, err)
	}
	return path, nil
}

// getJSON fetches url and decodes the JSON response into v, with the same
// status classification as fetchFile.
func getJSON(client *http.Client, id ID, url string, header http.Header, v any) error {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return transport(id, fmt.Errorf("creating request: %w", err))
	}
	for k, vs := range header {
		for _, hv := range vs {
			req.Header.Add(k, hv)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return transport(id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return classifyHTTPError(id, &httputil.StatusError{URL: url, StatusCode: resp.StatusCode})
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return transport(id, fmt.Errorf("parsing response: %w", err))
	}
	return nil
}

func classifyHTTPError(id ID, err error) error {
	var se *httputil.StatusError
	if errors.As(err, &se) {
		switch se.StatusCode {
		case http.StatusNotFound, http.StatusGone:
			return &Error{Strategy: id, Kind: KindNotFound, Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Strategy: id, Kind: KindAccessDenied, Err: err}
		}
	}
	return transport(id, err)
}
