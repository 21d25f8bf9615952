// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch implements the resolution-and-fallback engine: it maps a DOI
// to a publisher, derives the ordered strategy list for that publisher, and
// tries each strategy in turn until one produces a file or the list is
// exhausted.
package fetch

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pdiddy/fulltext-engine/internal/classify"
	"github.com/pdiddy/fulltext-engine/internal/fetchlog"
	"github.com/pdiddy/fulltext-engine/internal/strategy"
	"github.com/pdiddy/fulltext-engine/pkg/types"
)

// unsafeChars matches file name characters outside the allow-list of
// letters, digits, '.', '_' and '-'.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// Sanitize returns a filesystem-safe base name for a DOI.
func Sanitize(doi string) string {
	return unsafeChars.ReplaceAllString(doi, "_")
}

// Request describes a single resolution.
type Request struct {
	// DOI identifies the work to download.
	DOI string

	// OutputDir receives the downloaded file. Created if absent.
	OutputDir string

	// OutputFilename, when set, is used instead of the sanitized DOI. A
	// missing extension is filled in from the selected strategy.
	OutputFilename string

	// Strategies overrides the publisher-derived list, bypassing
	// classification entirely. nil means derive; an explicit empty list
	// fails immediately.
	Strategies []strategy.ID

	// LogFile optionally attaches an append-only log destination for this
	// resolution.
	LogFile string
}

// ExhaustedError is the aggregate failure returned when every strategy in
// the list failed (or the list was empty). It carries the last underlying
// failure for diagnostics.
type ExhaustedError struct {
	DOI      string
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	msg := fmt.Sprintf("all download strategies failed for DOI %s", e.DOI)
	if e.Last != nil {
		msg += fmt.Sprintf(": last error: %v", e.Last)
	}
	return msg
}

func (e *ExhaustedError) Unwrap() error { return e.Last }

// Resolver runs acquisition strategies in publisher-informed fallback order.
// It is single-threaded by design: no two strategies run concurrently, to
// avoid overwhelming publisher servers.
type Resolver struct {
	client   *http.Client
	registry *strategy.Registry
	log      *fetchlog.Logger
	cfg      types.FetchConfig
}

// NewResolver assembles a resolver from its collaborators. The logger owns
// the set of attached log files and may be shared across resolvers.
func NewResolver(client *http.Client, registry *strategy.Registry, log *fetchlog.Logger, cfg types.FetchConfig) *Resolver {
	return &Resolver{client: client, registry: registry, log: log, cfg: cfg}
}

// Fetch downloads the full text for req.DOI, trying each strategy in order
// and returning the output path of the first success. When every strategy
// fails it returns a *ExhaustedError naming the last failure; no partial
// output path is ever returned.
func (r *Resolver) Fetch(req Request) (string, error) {
	if req.DOI == "" {
		return "", fmt.Errorf("empty DOI")
	}
	if req.LogFile != "" {
		if err := r.log.Attach(req.LogFile); err != nil {
			return "", err
		}
	}
	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", req.OutputDir, err)
	}

	list := req.Strategies
	if list == nil {
		source := classify.Source(r.client, r.log, req.DOI, r.cfg.HTTPConfig)
		if source != "" {
			r.log.Info("classified DOI", "doi", req.DOI, "source", source)
		}
		list = strategy.ForSource(source)
	}

	base := Sanitize(req.DOI)
	var last error
	attempts := 0
	for _, id := range list {
		outPath := filepath.Join(req.OutputDir, outputName(req.OutputFilename, base, r.registry.OutputExt(id)))

		attempts++
		r.log.Info("attempting download", "doi", req.DOI, "strategy", id)

		s, err := r.registry.Lookup(id)
		if err == nil {
			var path string
			path, err = s.Fetch(r.client, req.DOI, outPath)
			if err == nil {
				r.log.Info("download succeeded", "doi", req.DOI, "strategy", id, "path", path)
				return path, nil
			}
		}

		// The candidate path is discarded with the failure; cleanup of any
		// partial file on disk is the strategy's responsibility.
		last = err
		r.log.Warn("strategy failed", "doi", req.DOI, "strategy", id, "error", err)
	}

	exhausted := &ExhaustedError{DOI: req.DOI, Attempts: attempts, Last: last}
	r.log.Error("all strategies failed", "doi", req.DOI, "attempts", attempts)
	return "", exhausted
}

// outputName picks the file name for an attempt: the explicit name when
// given (adding ext only if it has none), otherwise the sanitized base plus
// the strategy's extension.
func outputName(explicit, base, ext string) string {
	if explicit != "" {
		if filepath.Ext(explicit) == "" {
			return explicit + ext
		}
		return explicit
	}
	return base + ext
}
