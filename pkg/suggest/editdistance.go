package suggest

import "unicode/utf8"

// Distance computes the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions, and substitutions
// needed to turn one into the other.
//
// Wagner-Fischer dynamic programming over a single rolling row keeps the cost
// at O(n*m) time and O(min(n,m)) space. Inputs are compared rune-wise, so
// multi-byte identifiers are counted correctly.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	// Keep the shorter string as the DP row.
	if utf8.RuneCountInString(a) < utf8.RuneCountInString(b) {
		a, b = b, a
	}
	short := []rune(b)
	long := []rune(a)

	if len(short) == 0 {
		return len(long)
	}

	row := make([]int, len(short)+1)
	for j := range row {
		row[j] = j
	}

	for i, lr := range long {
		prev := row[0] // row[i-1][j-1] before this row overwrites it
		row[0] = i + 1
		for j, sr := range short {
			insert := row[j] + 1
			remove := row[j+1] + 1
			replace := prev
			if lr != sr {
				replace++
			}

			prev = row[j+1]
			row[j+1] = minOf(insert, remove, replace)
		}
	}
	return row[len(short)]
}

func minOf(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
