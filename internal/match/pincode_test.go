package match_test

import (
	"idmatch/internal/match"
	"testing"
)

func TestExtractPincode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "plain pincode",
			in:   "MG Road, Pune 411001",
			out:  "411001",
		},
		{
			name: "digits grouped by spaces",
			in:   "MG Road, Pune 411 001",
			out:  "411001",
		},
		{
			name: "first window of a longer digit run",
			in:   "account 12345678",
			out:  "123456",
		},
		{
			name: "first of two pincodes",
			in:   "560001 forwarded from 411001",
			out:  "560001",
		},
		{
			name: "house number joins a shorter code",
			in:   "No 41 1001",
			out:  "411001",
		},
		{
			name: "punctuation does not join digits",
			in:   "411-001",
			out:  "",
		},
		{
			name: "too few digits",
			in:   "sector 41100",
			out:  "",
		},
		{
			name: "no digits",
			in:   "MG Road",
			out:  "",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := match.ExtractPincode(tc.in); got != tc.out {
				t.Fatalf("ExtractPincode(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}
