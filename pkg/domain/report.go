package domain

import "github.com/google/uuid"

// BatchID uniquely identifies a verification batch.
// It wraps uuid.UUID to provide type safety at the domain layer.
type BatchID uuid.UUID

// String returns the canonical UUID form of the batch identifier.
func (id BatchID) String() string { return uuid.UUID(id).String() }

// NameRule identifies the comparison rule that accepted a pair of names.
type NameRule string

const (
	// NameRuleExact indicates the normalized names were identical.
	NameRuleExact NameRule = "EXACT"
	// NameRuleAbbreviation indicates the names aligned position by position
	// with single-letter initials standing in for full tokens.
	NameRuleAbbreviation NameRule = "ABBREVIATION"
	// NameRuleMiddleElision indicates one name dropped its middle tokens.
	NameRuleMiddleElision NameRule = "MIDDLE_ELISION"
	// NameRuleSingleToken indicates a one-token name appeared within the other.
	NameRuleSingleToken NameRule = "SINGLE_TOKEN"
	// NameRuleReordered indicates the names carried the same tokens in a
	// different order.
	NameRuleReordered NameRule = "REORDERED"
	// NameRuleSubset indicates every token of one name appeared in the other.
	NameRuleSubset NameRule = "SUBSET"
)

// MatchResult is the outcome of evaluating one extracted identity against
// the reference dataset. It is derived on demand and never stored.
type MatchResult struct {
	// ResolverHit reports whether a reference record with the same
	// identifier was found.
	ResolverHit bool `json:"resolverHit"`
	// NameMatched reports whether one of the name rules accepted the pair.
	NameMatched bool `json:"nameMatched"`
	// MatchedRule names the rule that accepted the names. It is empty when
	// no rule matched or no record was resolved.
	MatchedRule NameRule `json:"matchedRule,omitempty"`
	// AddressMatched reports whether the weighted address score cleared the
	// configured threshold.
	AddressMatched bool `json:"addressMatched"`
	// Score is the aggregate verification score: 0, 50 or 100.
	Score float64 `json:"score"`
}

// VerificationResult pairs an extracted identity with its match outcome
// within a batch.
type VerificationResult struct {
	// BatchID is the batch this result was produced in.
	BatchID BatchID `json:"batchId"`
	// Identity is the input exactly as it was read.
	Identity ExtractedIdentity `json:"identity"`
	// Result is the match outcome for the identity.
	Result MatchResult `json:"result"`
}

// BatchSummary aggregates the outcomes of a verification batch.
type BatchSummary struct {
	// Total is the number of identities processed.
	Total int `json:"total"`
	// Full counts identities where both name and address matched.
	Full int `json:"full"`
	// Partial counts identities where exactly one of name or address matched.
	Partial int `json:"partial"`
	// NoMatch counts identities where neither matched, including identities
	// whose identifier resolved to no reference record.
	NoMatch int `json:"noMatch"`
}

// BatchReport is the complete outcome of a verification batch: one result
// per input identity, in input order, plus the aggregate summary.
type BatchReport struct {
	// BatchID identifies the batch.
	BatchID BatchID `json:"batchId"`
	// Results holds one entry per input identity, in input order.
	Results []VerificationResult `json:"results"`
	// Summary is the aggregate view of Results.
	Summary BatchSummary `json:"summary"`
}
