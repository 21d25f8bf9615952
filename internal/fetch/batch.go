// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"fmt"
	"io"
	"time"
)

// Outcome is the final result for one identifier in a batch: exactly one of
// Path or Err is set, and entries are never rewritten.
type Outcome struct {
	Path string
	Err  error
}

// BatchResult maps each input DOI to its outcome. The Results map is
// authoritative; the Succeeded/Failed views are derived for reporting.
type BatchResult struct {
	// DOIs holds the identifiers in input order.
	DOIs []string

	// Results has one entry per input DOI.
	Results map[string]Outcome
}

// Total returns the number of identifiers processed.
func (r BatchResult) Total() int { return len(r.DOIs) }

// HasFailures reports whether any identifier failed.
func (r BatchResult) HasFailures() bool { return len(r.Failed()) > 0 }

// Succeeded returns the DOIs that resolved to a file, in input order.
func (r BatchResult) Succeeded() []string {
	var out []string
	for _, doi := range r.DOIs {
		if r.Results[doi].Err == nil {
			out = append(out, doi)
		}
	}
	return out
}

// Failed returns the DOIs that could not be resolved, in input order.
func (r BatchResult) Failed() []string {
	var out []string
	for _, doi := range r.DOIs {
		if r.Results[doi].Err != nil {
			out = append(out, doi)
		}
	}
	return out
}

// FetchBatch resolves each DOI in input order with the publisher-derived
// strategy selection, printing per-item status to w. One identifier's
// failure never aborts the batch: the error is stored in the result map and
// processing continues. Between consecutive items the resolver pauses for
// the configured download delay to bound the request rate against remote
// servers.
func (r *Resolver) FetchBatch(dois []string, outputDir, logFile string, w io.Writer) BatchResult {
	result := BatchResult{Results: make(map[string]Outcome, len(dois))}
	for i, doi := range dois {
		if i > 0 && r.cfg.DownloadDelay > 0 {
			time.Sleep(r.cfg.DownloadDelay)
		}

		result.DOIs = append(result.DOIs, doi)
		path, err := r.Fetch(Request{DOI: doi, OutputDir: outputDir, LogFile: logFile})
		if err != nil {
			fmt.Fprintf(w, "failed:     %s (%v)\n", doi, err)
			result.Results[doi] = Outcome{Err: err}
			continue
		}
		fmt.Fprintf(w, "downloaded: %s -> %s\n", doi, path)
		result.Results[doi] = Outcome{Path: path}
	}

	failed := result.Failed()
	fmt.Fprintf(w, "\nBatch summary: %d downloaded, %d failed (total: %d)\n",
		result.Total()-len(failed), len(failed), result.Total())
	if len(failed) > 0 {
		fmt.Fprintln(w, "The following DOIs could not be downloaded:")
		for _, doi := range failed {
			fmt.Fprintf(w, "  - %s: %v\n", doi, result.Results[doi].Err)
		}
	}
	return result
}
