// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestPLOSRequestsPrintablePDF(t *testing.T) {
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	old := plosFileBase
	plosFileBase = ts.URL + "/plosone/article/file"
	defer func() { plosFileBase = old }()

	s := newPLOS()
	if _, err := s.Fetch(ts.Client(), "10.1371/journal.pone.0123456", filepath.Join(t.TempDir(), "out.pdf")); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if want := "id=10.1371%2Fjournal.pone.0123456&type=printable"; gotQuery != want {
		t.Errorf("query = %q, want %q", gotQuery, want)
	}
}

func TestPLOSNotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	old := plosFileBase
	plosFileBase = ts.URL + "/plosone/article/file"
	defer func() { plosFileBase = old }()

	s := newPLOS()

	_, err := s.Fetch(ts.Client(), "10.1371/journal.pone.0000000", filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil {
		t.Fatal("Fetch() succeeded on 404")
	}
	if KindOf(err) != KindNotFound {
		t.Errorf("KindOf() = %v, want %v", KindOf(err), KindNotFound)
	}
}
