// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestPreprintFetchByPrefix(t *testing.T) {
	tests := []struct {
		name     string
		doi      string
		wantPath string
	}{
		{"biorxiv content url", "10.1101/2025.01.06.631505", "/biorxiv/10.1101/2025.01.06.631505v1.full.pdf"},
		{"medrxiv content url", "10.22541/au.12345.v1", "/medrxiv/10.22541/au.12345.v1v1.full.pdf"},
		{"arxiv pdf url", "10.48550/arXiv.2504.00812", "/arxiv/2504.00812.pdf"},
		{"unknown server via resolver", "10.31234/osf.io/abcde", "/doi/10.31234/osf.io/abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				fmt.Fprint(w, fakePDFContent)
			}))
			defer ts.Close()

			oldBio, oldMed, oldArxiv, oldDOI := biorxivContentBase, medrxivContentBase, arxivPDFBase, doiBase
			biorxivContentBase = ts.URL + "/biorxiv/"
			medrxivContentBase = ts.URL + "/medrxiv/"
			arxivPDFBase = ts.URL + "/arxiv/"
			doiBase = ts.URL + "/doi/"
			defer func() {
				biorxivContentBase, medrxivContentBase, arxivPDFBase, doiBase = oldBio, oldMed, oldArxiv, oldDOI
			}()

			s := newPreprint()
			if _, err := s.Fetch(ts.Client(), tt.doi, filepath.Join(t.TempDir(), "out.pdf")); err != nil {
				t.Fatalf("Fetch() error: %v", err)
			}
			if gotPath != tt.wantPath {
				t.Errorf("requested path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}

func TestPreprintResolverRequestsPDF(t *testing.T) {
	var gotAccept string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, fakePDFContent)
	}))
	defer ts.Close()

	old := doiBase
	doiBase = ts.URL + "/"
	defer func() { doiBase = old }()

	s := newPreprint()
	if _, err := s.Fetch(ts.Client(), "10.31234/osf.io/abcde", filepath.Join(t.TempDir(), "out.pdf")); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if gotAccept != "application/pdf" {
		t.Errorf("Accept = %q, want application/pdf", gotAccept)
	}
}
