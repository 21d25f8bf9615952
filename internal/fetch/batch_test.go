// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
	"github.com/pdiddy/fulltext-engine/internal/fetchlog"
	"github.com/pdiddy/fulltext-engine/internal/strategy"
	"github.com/pdiddy/fulltext-engine/pkg/types"
)

// doiStrategy succeeds or fails per DOI, so a batch can mix outcomes without
// any network traffic. The test DOIs carry a preprint prefix, which resolves
// to a publisher without a registry query.
type doiStrategy struct {
	id   strategy.ID
	fail map[string]bool
}

func (s *doiStrategy) ID() strategy.ID   { return s.id }
func (s *doiStrategy) OutputExt() string { return strategy.ExtPDF }

func (s *doiStrategy) Fetch(_ *http.Client, doi, destPath string) (string, error) {
	if s.fail[doi] {
		return "", &strategy.Error{Strategy: s.id, Kind: strategy.KindNotFound, Msg: "no full text"}
	}
	if err := os.WriteFile(destPath, []byte("pdf"), 0o644); err != nil {
		return "", err
	}
	return destPath, nil
}

func newBatchResolver(fail map[string]bool) *Resolver {
	reg := strategy.NewRegistry(credentials.Credentials{}, "")
	// bioRxiv DOIs derive {preprint, unpaywall}; replace both so every
	// attempt stays local.
	reg.Register(&doiStrategy{id: strategy.Preprint, fail: fail})
	reg.Register(&doiStrategy{id: strategy.Unpaywall, fail: fail})
	return NewResolver(http.DefaultClient, reg, fetchlog.New(nil), types.FetchConfig{})
}

func TestFetchBatchIsolatesFailures(t *testing.T) {
	dois := []string{
		"10.1101/2025.01.01.000001",
		"10.1101/2025.01.01.000002",
		"10.1101/2025.01.01.000003",
	}
	r := newBatchResolver(map[string]bool{dois[1]: true})

	var out strings.Builder
	result := r.FetchBatch(dois, t.TempDir(), "", &out)

	if result.Total() != len(dois) {
		t.Errorf("Total() = %d, want %d", result.Total(), len(dois))
	}
	if len(result.Results) != len(dois) {
		t.Errorf("Results has %d entries, want %d", len(result.Results), len(dois))
	}
	if got := result.Succeeded(); len(got) != 2 || got[0] != dois[0] || got[1] != dois[2] {
		t.Errorf("Succeeded() = %v, want [%s %s]", got, dois[0], dois[2])
	}
	if got := result.Failed(); len(got) != 1 || got[0] != dois[1] {
		t.Errorf("Failed() = %v, want [%s]", got, dois[1])
	}
	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}

	text := out.String()
	if !strings.Contains(text, "failed:     "+dois[1]) {
		t.Errorf("output missing failure line for %s:\n%s", dois[1], text)
	}
	if !strings.Contains(text, "Batch summary: 2 downloaded, 1 failed (total: 3)") {
		t.Errorf("output missing summary:\n%s", text)
	}
	if !strings.Contains(text, "The following DOIs could not be downloaded:") {
		t.Errorf("output missing failure itemization:\n%s", text)
	}
}

func TestFetchBatchAllSucceed(t *testing.T) {
	dois := []string{"10.1101/2025.02.02.000001", "10.1101/2025.02.02.000002"}
	r := newBatchResolver(nil)

	var out strings.Builder
	result := r.FetchBatch(dois, t.TempDir(), "", &out)

	if result.HasFailures() {
		t.Errorf("HasFailures() = true, failed: %v", result.Failed())
	}
	for _, doi := range dois {
		outcome := result.Results[doi]
		if outcome.Err != nil {
			t.Errorf("%s failed: %v", doi, outcome.Err)
			continue
		}
		if _, err := os.Stat(outcome.Path); err != nil {
			t.Errorf("%s output missing: %v", doi, err)
		}
	}
	if !strings.Contains(out.String(), "Batch summary: 2 downloaded, 0 failed (total: 2)") {
		t.Errorf("output missing summary:\n%s", out.String())
	}
}

func TestFetchBatchFallsBackWithinItem(t *testing.T) {
	doi := "10.1101/2025.03.03.000001"
	reg := strategy.NewRegistry(credentials.Credentials{}, "")
	reg.Register(&doiStrategy{id: strategy.Preprint, fail: map[string]bool{doi: true}})
	reg.Register(&doiStrategy{id: strategy.Unpaywall, fail: nil})
	r := NewResolver(http.DefaultClient, reg, fetchlog.New(nil), types.FetchConfig{})

	var out strings.Builder
	result := r.FetchBatch([]string{doi}, t.TempDir(), "", &out)

	if result.HasFailures() {
		t.Fatalf("batch failed despite a working fallback: %v", result.Results[doi].Err)
	}
}
