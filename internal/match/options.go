package match

import "idmatch/internal/config"

// DefaultAddressIgnoreTerms is the default vocabulary removed from addresses
// during normalization. The terms are compared against single normalized
// tokens, so the two-word entries at the end can never match; they are kept
// so the vocabulary stays aligned with the datasets it was tuned on.
var DefaultAddressIgnoreTerms = []string{ //nolint: gochecknoglobals
	"road", "street", "lane", "marg", "nagar", "colony", "township",
	"apartment", "flat", "sector", "block", "phase", "district", "area",
	"near", "behind", "opposite", "beside", "next to", "across from",
}

const (
	// DefaultAddressMatchThreshold is the weighted address score required
	// for a match when none is configured.
	DefaultAddressMatchThreshold = 70
	// DefaultSignificantTokenLength is the rune length an address token must
	// exceed to count toward the token overlap score.
	DefaultSignificantTokenLength = 3
)

// Options configure the thresholds and vocabulary of the matching engine.
// These settings are typically derived from application configuration.
type Options struct {
	// AddressMatchThreshold is the minimum weighted address score, on a
	// 0 to 100 scale, for two addresses to be considered a match.
	AddressMatchThreshold float64
	// SignificantTokenLength is the rune length above which an address token
	// counts toward the token overlap score.
	SignificantTokenLength int
	// AddressIgnoreTerms is the vocabulary removed from addresses during
	// normalization. Empty means DefaultAddressIgnoreTerms.
	AddressIgnoreTerms []string
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{
		AddressMatchThreshold:  DefaultAddressMatchThreshold,
		SignificantTokenLength: DefaultSignificantTokenLength,
		AddressIgnoreTerms:     DefaultAddressIgnoreTerms,
	}
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		AddressMatchThreshold:  cfg.Matcher.AddressMatchThreshold,
		SignificantTokenLength: cfg.Matcher.SignificantTokenLength,
		AddressIgnoreTerms:     cfg.Matcher.AddressIgnoreTerms,
	}
}
