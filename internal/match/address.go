package match

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Weighted address score composition. A shared pincode carries weight of its
// own; without one, the weight shifts onto whole-string similarity.
const (
	weightPincode         = 0.4
	weightSimilarity      = 0.4
	weightParts           = 0.2
	weightSimilarityNoPin = 0.6
	weightPartsNoPin      = 0.4
)

// AddressScore breaks an address comparison into its component scores, each
// on a 0 to 100 scale.
type AddressScore struct {
	// Pincode is 100 when both addresses carry the same pincode, else 0.
	Pincode float64
	// Similarity is the full-string similarity ratio of the normalized
	// addresses.
	Similarity float64
	// Parts is the share of significant reference tokens found verbatim in
	// the extracted address.
	Parts float64
	// Final is the weighted combination of the components.
	Final float64
	// Matched reports whether Final cleared the match threshold.
	Matched bool
}

// NormalizeAddress canonicalizes an address for comparison: Normalize plus
// removal of the configured ignore vocabulary, generic terms like "road" or
// "nagar" that carry no discriminating power.
func (m *Matcher) NormalizeAddress(address string) string {
	if address == "" {
		return ""
	}

	tokens := strings.Fields(Normalize(address))
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ignored := m.ignore[tok]; ignored {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// ScoreAddress compares two addresses and returns their component scores.
// Either address being empty yields the zero AddressScore, which is not a
// match.
func (m *Matcher) ScoreAddress(refAddress, extAddress string) AddressScore {
	var score AddressScore
	if refAddress == "" || extAddress == "" {
		return score
	}

	refPin := ExtractPincode(refAddress)
	if refPin != "" && refPin == ExtractPincode(extAddress) {
		score.Pincode = 100
	}

	ref := m.NormalizeAddress(refAddress)
	ext := m.NormalizeAddress(extAddress)
	score.Similarity = Ratio(ref, ext)
	score.Parts = tokenOverlap(strings.Fields(ref), strings.Fields(ext), m.options.SignificantTokenLength)

	if score.Pincode > 0 {
		score.Final = weightPincode*score.Pincode + weightSimilarity*score.Similarity + weightParts*score.Parts
	} else {
		score.Final = weightSimilarityNoPin*score.Similarity + weightPartsNoPin*score.Parts
	}
	score.Matched = score.Final >= m.options.AddressMatchThreshold

	return score
}

// MatchAddress reports whether two addresses agree under the weighted score.
func (m *Matcher) MatchAddress(refAddress, extAddress string) bool {
	return m.ScoreAddress(refAddress, extAddress).Matched
}

// tokenOverlap returns the percentage of significant reference tokens, those
// longer than minLen runes, that appear verbatim among the extracted tokens.
// A reference with no significant tokens scores 0.
func tokenOverlap(ref, ext []string, minLen int) float64 {
	var significant, present int
	for _, tok := range ref {
		if utf8.RuneCountInString(tok) <= minLen {
			continue
		}
		significant++
		if slices.Contains(ext, tok) {
			present++
		}
	}
	if significant == 0 {
		return 0
	}

	return float64(present) / float64(significant) * 100
}
