// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

func TestWileySendsClientToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Wiley-TDM-Client-Token") != "WTOKEN" {
			t.Errorf("token = %q, want WTOKEN", r.Header.Get("Wiley-TDM-Client-Token"))
		}
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	old := wileyAPIBase
	wileyAPIBase = ts.URL + "/tdm/v1/articles/"
	defer func() { wileyAPIBase = old }()

	s := newWiley(credentials.Credentials{credentials.WileyAPIKey: "WTOKEN"})
	if _, err := s.Fetch(ts.Client(), "10.1002/test", filepath.Join(t.TempDir(), "out.pdf")); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
}

func TestWileyMissingToken(t *testing.T) {
	s := newWiley(credentials.Credentials{})

	_, err := s.Fetch(http.DefaultClient, "10.1002/test", "out.pdf")
	if err == nil {
		t.Fatal("Fetch() succeeded without WILEY_API_KEY")
	}
	if KindOf(err) != KindConfigMissing {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindConfigMissing)
	}
}

func TestWileyAccessDenied(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	old := wileyAPIBase
	wileyAPIBase = ts.URL + "/tdm/v1/articles/"
	defer func() { wileyAPIBase = old }()

	s := newWiley(credentials.Credentials{credentials.WileyAPIKey: "WTOKEN"})

	_, err := s.Fetch(ts.Client(), "10.1002/closed", filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Fetch() succeeded on 401")
	}
	if KindOf(err) != KindAccessDenied {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindAccessDenied)
	}
}
