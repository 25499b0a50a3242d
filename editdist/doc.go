// Package editdist measures dissimilarity between sequences and sets.
//
// ✨ Key features:
//   - Levenshtein — classic edit distance between strings (rune-level)
//   - LevenshteinSeq — the same distance over any comparable element type
//   - SetsLevenshtein — order-insensitive set variant: the size of the
//     symmetric difference of the distinct elements
//
// The dynamic program keeps only two rows of the cost matrix, so memory
// is O(min(n, m)) while time stays O(n·m). Insertions, deletions and
// substitutions all cost 1; the distance is symmetric and zero exactly
// for equal inputs.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathx/editdist"
//
//	d := editdist.Levenshtein("hello", "world") // 4
//	s := editdist.SetsLevenshtein([]int{1, 2, 3}, []int{2, 3, 4}) // 2
//
// Every input is valid, empty sequences included, so there is no error
// surface. Functions are pure; concurrent use needs no locking.
package editdist
