// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"fmt"

	"github.com/pdiddy/fulltext-engine/internal/credentials"
)

// Registry resolves strategy IDs to implementations. It is built once at
// process start; constructors that fail closed (a missing optional
// capability) are retained with their construction error, so attempts against
// those IDs fail with it instead of surprising the caller mid-download.
type Registry struct {
	strategies  map[ID]Strategy
	unavailable map[ID]error
}

// NewRegistry constructs every strategy from the supplied credentials.
// apsCookiesFile points at a browser cookies export for the APS strategy;
// when empty or unreadable the APS strategy registers as unavailable.
func NewRegistry(creds credentials.Credentials, apsCookiesFile string) *Registry {
	r := &Registry{
		strategies:  make(map[ID]Strategy),
		unavailable: make(map[ID]error),
	}

	for _, s := range []Strategy{
		newUnpaywall(creds),
		newElsevier(creds),
		newSpringerPDF(),
		newSpringerOpen(creds),
		newWiley(creds),
		newPLOS(),
		newCrossRefTDM(),
		newArxiv(),
		newPreprint(),
		newELife(),
		newCambridge(),
	} {
		r.strategies[s.ID()] = s
	}

	if s, err := newAPS(apsCookiesFile); err != nil {
		r.unavailable[APS] = err
	} else {
		r.strategies[APS] = s
	}

	return r
}

// Register adds or replaces a strategy. Exists so callers can extend the
// registry without touching the orchestrator.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.ID()] = s
	delete(r.unavailable, s.ID())
}

// Lookup returns the strategy for id. Unavailable strategies return their
// registration error; unknown IDs are a caller bug and return a plain error.
func (r *Registry) Lookup(id ID) (Strategy, error) {
	if s, ok := r.strategies[id]; ok {
		return s, nil
	}
	if err, ok := r.unavailable[id]; ok {
		return nil, err
	}
	return nil, fmt.Errorf("unknown strategy %q", id)
}

// OutputExt returns the declared output extension for id, defaulting to
// ExtPDF for strategies that cannot be resolved.
func (r *Registry) OutputExt(id ID) string {
	if s, ok := r.strategies[id]; ok {
		return s.OutputExt()
	}
	return ExtPDF
}
