// Package match implements the identity matching engine: text normalization,
// rule-based name comparison, pincode extraction, weighted address scoring
// and the record-level aggregate. Everything here is pure computation over
// its inputs; a Matcher is immutable after construction and safe for
// concurrent use.
package match

import "idmatch/pkg/domain"

// Matcher evaluates extracted identities against reference records using a
// fixed set of options.
type Matcher struct {
	// options holds the thresholds and vocabulary the matcher was built with.
	options Options
	// ignore is the normalized ignore vocabulary used by NormalizeAddress.
	ignore map[string]struct{}
}

// New constructs a Matcher from the given options. Zero or empty option
// fields fall back to the engine defaults.
func New(options Options) *Matcher {
	defaults := DefaultOptions()
	if options.AddressMatchThreshold <= 0 {
		options.AddressMatchThreshold = defaults.AddressMatchThreshold
	}
	if options.SignificantTokenLength <= 0 {
		options.SignificantTokenLength = defaults.SignificantTokenLength
	}
	if len(options.AddressIgnoreTerms) == 0 {
		options.AddressIgnoreTerms = defaults.AddressIgnoreTerms
	}

	ignore := make(map[string]struct{}, len(options.AddressIgnoreTerms))
	for _, term := range options.AddressIgnoreTerms {
		if term = Normalize(term); term != "" {
			ignore[term] = struct{}{}
		}
	}

	return &Matcher{options: options, ignore: ignore}
}

// Evaluate resolves the extracted identity against the reference records and
// scores the match. Records are scanned in order and the first record with
// the same identifier wins; identifiers compare with all whitespace removed.
// When no record resolves, the zero MatchResult is returned.
func (m *Matcher) Evaluate(extracted domain.ExtractedIdentity, records []domain.ReferenceRecord) domain.MatchResult {
	id := NormalizeIdentifier(extracted.Identifier)
	if id == "" {
		return domain.MatchResult{}
	}

	for _, record := range records {
		if NormalizeIdentifier(record.Identifier) == id {
			return m.EvaluateRecord(record, extracted)
		}
	}

	return domain.MatchResult{}
}

// EvaluateRecord scores an extracted identity against a reference record that
// has already been resolved by identifier. Name and address are judged
// independently and each contributes half of the aggregate score, so the
// score is always 0, 50 or 100.
func (m *Matcher) EvaluateRecord(record domain.ReferenceRecord, extracted domain.ExtractedIdentity) domain.MatchResult {
	result := domain.MatchResult{ResolverHit: true}
	if rule, ok := MatchNameRule(record.Name, extracted.Name); ok {
		result.NameMatched = true
		result.MatchedRule = rule
	}
	result.AddressMatched = m.MatchAddress(record.Address, extracted.Address)

	var nameScore, addressScore float64
	if result.NameMatched {
		nameScore = 100
	}
	if result.AddressMatched {
		addressScore = 100
	}
	result.Score = (nameScore + addressScore) / 2

	return result
}

// Score returns the aggregate score of Evaluate, discarding the per-field
// breakdown.
func (m *Matcher) Score(extracted domain.ExtractedIdentity, records []domain.ReferenceRecord) float64 {
	return m.Evaluate(extracted, records).Score
}
