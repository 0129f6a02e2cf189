package validation

import (
	"fmt"
	"regexp"
)

// DOIPattern matches registered DOIs: "10.<registrant>/<suffix>".
// The suffix is free-form but must not contain whitespace.
var DOIPattern = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)

// ArxivIDPattern matches modern ("2301.01234", optionally versioned) and
// legacy ("hep-th/9901001") arXiv identifiers.
var ArxivIDPattern = regexp.MustCompile(`^(\d{4}\.\d{4,5}(v\d+)?|[a-z-]+(\.[A-Z]{2})?/\d{7})$`)

// ValidateDOI checks that a DOI has the registered "10.xxxx/..." form.
// An empty DOI is allowed: papers without one fall back to the arXiv id
// or carry no natural key at all.
func ValidateDOI(doi string) error {
	if doi == "" {
		return nil
	}
	if !DOIPattern.MatchString(doi) {
		return fmt.Errorf("invalid DOI %q: expected form 10.xxxx/suffix", doi)
	}
	return nil
}

// ValidateArxivID checks an arXiv identifier. Empty is allowed.
func ValidateArxivID(id string) error {
	if id == "" {
		return nil
	}
	if !ArxivIDPattern.MatchString(id) {
		return fmt.Errorf("invalid arXiv id %q", id)
	}
	return nil
}
