package match

// Ratio measures the similarity of two strings on a 0 to 100 scale using the
// classic 2*M/T measure, where M is the length of the longest common
// subsequence of the two rune sequences and T is the sum of their lengths.
// The measure is symmetric, identical strings score exactly 100 and strings
// with no runes in common score 0. An empty input always scores 0.
func Ratio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 100
	}

	ar := []rune(a)
	br := []rune(b)
	common := lcsLength(ar, br)

	return 200 * float64(common) / float64(len(ar)+len(br))
}

// lcsLength computes the longest common subsequence length with the two-row
// dynamic program: O(len(a)*len(b)) time, O(len(b)) space.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				cur[j] = prev[j-1] + 1
			case prev[j] >= cur[j-1]:
				cur[j] = prev[j]
			default:
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}

	return prev[len(b)]
}
