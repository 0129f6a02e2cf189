package models

import "strings"

// KeyKind classifies a paper's natural key.
type KeyKind string

const (
	KeyKindDOI   KeyKind = "doi"
	KeyKindArxiv KeyKind = "arxiv"
	KeyKindNone  KeyKind = "none"
)

// NaturalKey is a paper's globally-meaningful identity, independent of any
// locally- or server-assigned id. Papers created on two clients for the same
// publication compare equal through it.
type NaturalKey struct {
	Kind  KeyKind
	Value string
}

// IsZero reports whether the paper has no usable natural key.
func (k NaturalKey) IsZero() bool {
	return k.Kind == KeyKindNone || k.Kind == "" || k.Value == ""
}

// ComputeNaturalKey derives the natural key from a paper's DOI and arXiv
// fields. Some servers encode arXiv-origin papers as a pseudo-DOI of the form
// "arXiv:<id>"; those resolve to an arxiv-kind key so they match local papers
// that track the arXiv id in its own field.
func ComputeNaturalKey(doi, arxivID string) NaturalKey {
	doi = strings.TrimSpace(doi)
	if doi != "" {
		if id, ok := ParseArxivDOI(doi); ok {
			return NaturalKey{Kind: KeyKindArxiv, Value: id}
		}
		// An arXiv-prefixed DOI with nothing after the prefix identifies
		// no paper; it must not become a DOI key either, or every such
		// record would collide on the literal prefix.
		if !hasArxivPrefix(doi) {
			return NaturalKey{Kind: KeyKindDOI, Value: strings.ToLower(doi)}
		}
	}
	if arxivID = strings.TrimSpace(arxivID); arxivID != "" {
		return NaturalKey{Kind: KeyKindArxiv, Value: arxivID}
	}
	return NaturalKey{Kind: KeyKindNone}
}

// ParseArxivDOI recognizes the "arXiv:<id>" pseudo-DOI form and returns the
// bare arXiv identifier.
func ParseArxivDOI(doi string) (string, bool) {
	if !hasArxivPrefix(doi) {
		return "", false
	}
	id := strings.TrimSpace(doi[len(arxivDOIPrefix):])
	if id == "" {
		return "", false
	}
	return id, true
}

const arxivDOIPrefix = "arxiv:"

func hasArxivPrefix(doi string) bool {
	return len(doi) >= len(arxivDOIPrefix) && strings.EqualFold(doi[:len(arxivDOIPrefix)], arxivDOIPrefix)
}

// NaturalKey returns the paper's natural key.
func (p *Paper) NaturalKey() NaturalKey {
	return ComputeNaturalKey(p.DOI, p.ArxivID)
}
