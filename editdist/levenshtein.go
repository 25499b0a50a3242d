package editdist

// Levenshtein — edit distance
//
// Description:
//
//	Levenshtein(a, b) counts the minimum number of single-rune insertions,
//	deletions and substitutions turning a into b. Strings are compared at
//	rune level, so multi-byte characters count as one edit each.
//
// Properties (hold for all inputs):
//   - Levenshtein(a, a) == 0
//   - Levenshtein(a, b) == Levenshtein(b, a)
//   - 0 ≤ distance ≤ max(len(a), len(b)) in runes
//
// Complexity: O(n·m) time, O(min(n, m)) memory (two-row DP).
func Levenshtein(a, b string) int {
	return LevenshteinSeq([]rune(a), []rune(b))
}

// LevenshteinSeq is Levenshtein over arbitrary comparable element
// sequences: tokens, ints, states — anything with ==.
func LevenshteinSeq[T comparable](a, b []T) int {
	// Keep the shorter sequence as the DP row.
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			curr[j] = min3(prev[j]+1, curr[j-1]+1, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// SetsLevenshtein measures dissimilarity between a and b viewed as sets:
// the number of distinct elements present in exactly one of them (the
// symmetric difference size). Order and multiplicity are ignored, which
// makes it a cheaper, non-positional cousin of the edit distance:
// SetsLevenshtein(a, a) == 0 and the metric is symmetric.
func SetsLevenshtein[T comparable](a, b []T) int {
	as := make(map[T]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[T]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}

	d := 0
	for v := range as {
		if _, ok := bs[v]; !ok {
			d++
		}
	}
	for v := range bs {
		if _, ok := as[v]; !ok {
			d++
		}
	}

	return d
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}

	return a
}
