// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"bufio"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"strings"
)

// aps downloads American Physical Society PDFs using session cookies exported
// from a browser where the user holds an institutional login. The cookies
// file is a Netscape-format export (cookies.txt).
type aps struct {
	jar http.CookieJar
}

// newAPS fails closed when no usable cookies file is configured, so the
// missing capability surfaces at registration rather than mid-download.
func newAPS(cookiesFile string) (Strategy, error) {
	if cookiesFile == "" {
		return nil, &Error{Strategy: APS, Kind: KindDependencyMissing,
			Msg: "APS cookies file is not configured"}
	}
	jar, err := loadCookieJar(cookiesFile)
	if err != nil {
		return nil, &Error{Strategy: APS, Kind: KindDependencyMissing,
			Msg: "failed to load APS cookies", Err: err}
	}
	return &aps{jar: jar}, nil
}

func (s *aps) ID() ID            { return APS }
func (s *aps) OutputExt() string { return ExtPDF }

func (s *aps) Fetch(client *http.Client, doi, destPath string) (string, error) {
	// Shallow-copy the shared client so the cookie jar stays local to this
	// strategy.
	authed := *client
	authed.Jar = s.jar

	// CrossRef metadata sometimes carries a direct APS harvest link; fall
	// back to the DOI resolver when it does not (or when CrossRef errors).
	target := doiBase + doi
	var work crossrefLinks
	if err := getJSON(&authed, APS, crossrefWorksBase+doi, nil, &work); err == nil {
		for _, link := range work.Message.Link {
			if strings.Contains(link.URL, "harvest.aps.org") || strings.Contains(link.URL, "link.aps.org") {
				target = link.URL
				break
			}
		}
	}

	header := http.Header{}
	header.Set("Accept", "application/pdf")
	return fetchFile(&authed, APS, target, destPath, header)
}

// loadCookieJar parses a Netscape-format cookies export into a cookie jar.
// Lines are tab-separated: domain, include-subdomains flag, path, secure
// flag, expiry, name, value. Comment and blank lines are skipped.
func loadCookieJar(path string) (http.CookieJar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	loaded := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 7 {
			continue
		}

		domain := strings.TrimPrefix(fields[0], ".")
		cookie := &http.Cookie{
			Name:   fields[5],
			Value:  fields[6],
			Path:   fields[2],
			Domain: fields[0],
			Secure: strings.EqualFold(fields[3], "TRUE"),
		}
		scheme := "http"
		if cookie.Secure {
			scheme = "https"
		}
		jar.SetCookies(&url.URL{Scheme: scheme, Host: domain, Path: cookie.Path}, []*http.Cookie{cookie})
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no cookies found in %s", path)
	}
	return jar, nil
}
