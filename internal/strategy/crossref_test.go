// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestCrossRefTDMSuccess(t *testing.T) {
	var ts *httptest.Server
	ts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/works/10.1234/tdm":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"message": {"link": [
				{"URL": "%s/article.html", "content-type": "text/html"},
				{"URL": "%s/article.pdf", "content-type": "application/pdf"}
			]}}`, ts.URL, ts.URL)
		case r.URL.Path == "/article.pdf":
			fmt.Fprint(w, fakePDFContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	old := crossrefWorksBase
	crossrefWorksBase = ts.URL + "/works/"
	defer func() { crossrefWorksBase = old }()

	s := newCrossRefTDM()
	dest := filepath.Join(t.TempDir(), "article.pdf")

	path, err := s.Fetch(ts.Client(), "10.1234/tdm", dest)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != fakePDFContent {
		t.Errorf("output = %q, want %q", data, fakePDFContent)
	}
}

func TestCrossRefTDMNoPDFLink(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message": {"link": [
			{"URL": "https://example.org/a.html", "content-type": "text/html"}
		]}}`)
	}))
	defer ts.Close()

	old := crossrefWorksBase
	crossrefWorksBase = ts.URL + "/works/"
	defer func() { crossrefWorksBase = old }()

	s := newCrossRefTDM()

	_, err := s.Fetch(ts.Client(), "10.1234/nopdf", filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Fetch() succeeded with no PDF link")
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindNotFound)
	}
}

func TestCrossRefTDMWorkNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	old := crossrefWorksBase
	crossrefWorksBase = ts.URL + "/works/"
	defer func() { crossrefWorksBase = old }()

	s := newCrossRefTDM()

	_, err := s.Fetch(ts.Client(), "10.1234/missing", filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Fetch() succeeded on 404 work record")
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindNotFound)
	}
}
