// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strategy implements the acquisition strategies: the individual
// methods of obtaining the full text of an article given its DOI. Every
// strategy exposes the same capability, so the orchestrator in
// internal/fetch never special-cases one; new strategies only need a
// constructor and a registry entry.
package strategy

import "net/http"

// ID names one acquisition strategy. The set of IDs is closed: each one maps
// to exactly one implementation registered in the Registry.
type ID string

const (
	Unpaywall    ID = "unpaywall"
	Elsevier     ID = "elsevier"
	SpringerPDF  ID = "springerpdf"
	SpringerOpen ID = "springeropen"
	Wiley        ID = "wiley"
	PLOS         ID = "plos"
	CrossRef     ID = "crossref"
	ArXiv        ID = "arxiv"
	Preprint     ID = "preprint"
	ELife        ID = "elife"
	APS          ID = "aps"
	Cambridge    ID = "cambridge"
)

// Output file extensions. Strategies that natively produce structured full
// text declare ExtXML; everything else produces ExtPDF.
const (
	ExtPDF = ".pdf"
	ExtXML = ".xml"
)

// Strategy is the single capability shared by all acquisition methods:
// given a DOI and a destination path, produce the file or fail with a
// classified *Error.
type Strategy interface {
	// ID returns the strategy's symbolic name.
	ID() ID

	// OutputExt is the file extension this strategy's output should carry.
	OutputExt() string

	// Fetch downloads the full text for doi to destPath and returns the
	// path written.
	Fetch(client *http.Client, doi, destPath string) (string, error)
}

// doiBase is the DOI resolver used by strategies that follow the DOI to the
// publisher's landing page. Declared as a var so tests can substitute an
// httptest server.
var doiBase = "https://doi.org/"
