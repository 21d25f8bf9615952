// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package strategy

// publisherStrategies maps a resolved source name to the strategies known to
// work for it, cheapest and most likely to succeed first. Sources absent from
// the table fall back to defaultStrategies.
var publisherStrategies = map[string][]ID{
	"Elsevier BV": {Unpaywall, Elsevier},
	"Springer Science and Business Media LLC":                   {SpringerPDF, Unpaywall, SpringerOpen},
	"Wiley":                                                     {Wiley, Unpaywall},
	"American Chemical Society (ACS)":                           {Unpaywall},
	"Royal Society of Chemistry (RSC)":                          {Unpaywall},
	"American Institute of Physics (AIP)":                       {Unpaywall},
	"American Physical Society (APS)":                           {APS, Unpaywall},
	"Oxford University Press (OUP)":                             {Unpaywall},
	"Cambridge University Press (CUP)":                          {Cambridge, Unpaywall},
	"Taylor & Francis":                                          {Unpaywall},
	"Public Library of Science (PLoS)":                          {PLOS, Unpaywall},
	"bioRxiv":                                                   {Preprint, Unpaywall},
	"medRxiv":                                                   {Preprint, Unpaywall},
	"chemRxiv":                                                  {Preprint, Unpaywall},
	"arXiv":                                                     {Preprint, ArXiv, Unpaywall},
	"eLife Sciences Publications, Ltd":                          {ELife, Unpaywall},
	"Institute of Electrical and Electronics Engineers (IEEE)": {Unpaywall},
}

// defaultStrategies is the conservative list used when the source is
// unresolved or unmapped: the open-access aggregator, then CrossRef's
// metadata-driven fulltext links.
var defaultStrategies = []ID{Unpaywall, CrossRef}

// ForSource returns the ordered strategy list for a source name, copying so
// callers cannot mutate the table. An empty source means unresolved.
func ForSource(source string) []ID {
	if source != "" {
		if list, ok := publisherStrategies[source]; ok {
			return append([]ID(nil), list...)
		}
	}
	return append([]ID(nil), defaultStrategies...)
}
