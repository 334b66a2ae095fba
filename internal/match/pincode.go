package match

import "regexp"

// pincodeRE locates a run of six digits. Applied after whitespace removal,
// so grouped forms like "411 001" still produce a hit. A longer digit run
// matches on its first six digits.
var pincodeRE = regexp.MustCompile(`[0-9]{6}`) //nolint: gochecknoglobals

// ExtractPincode returns the first six-digit sequence found in the address
// after all whitespace is removed, or the empty string when the address
// contains no such sequence.
func ExtractPincode(address string) string {
	if address == "" {
		return ""
	}

	return pincodeRE.FindString(stripWhitespace(address))
}
