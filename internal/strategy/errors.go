// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

import (
	"errors"
	"fmt"
)

// Kind classifies a strategy failure. The orchestrator logs the kind and
// moves on; only the batch runner and CLI surface it to users.
type Kind int

const (
	// KindUnknown is the zero value, for errors that carry no classification.
	KindUnknown Kind = iota

	// KindConfigMissing means a required credential or contact value is
	// absent. Fatal to this strategy only.
	KindConfigMissing

	// KindNotFound means this strategy could not resolve the DOI to content
	// (no link, 404-class response).
	KindNotFound

	// KindAccessDenied means the remote service rejected the request on
	// entitlement or authorization grounds.
	KindAccessDenied

	// KindTransport means a network-level failure reaching a remote service.
	KindTransport

	// KindDependencyMissing means an optional external capability the
	// strategy needs is unavailable. Raised at registration time.
	KindDependencyMissing
)

func (k Kind) String() string {
	switch k {
	case KindConfigMissing:
		return "configuration missing"
	case KindNotFound:
		return "not found"
	case KindAccessDenied:
		return "access denied"
	case KindTransport:
		return "transport error"
	case KindDependencyMissing:
		return "dependency missing"
	default:
		return "unknown"
	}
}

// Error is a strategy-local failure with a classified kind. Strategy errors
// never propagate directly to the caller of a resolution; the orchestrator
// records them and continues down the list.
type Error struct {
	Strategy ID
	Kind     Kind
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Strategy, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Strategy, e.Msg)
	default:
		return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err, or KindUnknown when err carries
// none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func configMissing(id ID, key string) error {
	return &Error{Strategy: id, Kind: KindConfigMissing, Msg: key + " is not set"}
}

func notFound(id ID, format string, args ...any) error {
	return &Error{Strategy: id, Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func transport(id ID, err error) error {
	return &Error{Strategy: id, Kind: KindTransport, Err: err}
}
