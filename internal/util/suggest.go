// Package util provides common utility functions used across the codebase.
package util

import "strings"

// LevenshteinDistance returns the minimum number of single-character edits
// (insertions, deletions, substitutions) required to change a into b.
// Comparison is case-sensitive; callers wanting case-insensitive matching
// should lowercase both inputs first.
func LevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Single-row dynamic programming over b.
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// SuggestSimilar returns candidates whose edit distance from input is small
// enough to be a plausible typo. Matching is case-insensitive and preserves
// candidate order. The effective threshold is maxDist, tightened to half the
// input length so short inputs only match near-identical candidates. Returns
// nil when input is empty or nothing is close enough.
func SuggestSimilar(input string, candidates []string, maxDist int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}

	threshold := maxDist
	if half := (len(input) + 1) / 2; half < threshold {
		threshold = half
	}

	lowered := strings.ToLower(input)

	var matches []string
	for _, c := range candidates {
		if LevenshteinDistance(lowered, strings.ToLower(c)) <= threshold {
			matches = append(matches, c)
		}
	}
	return matches
}
