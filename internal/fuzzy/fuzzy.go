// Package fuzzy picks "did you mean" candidates for unrecognized options.
package fuzzy

import "strings"

// Best returns the candidate closest to input within maxDistance edits, or
// "" when nothing is close enough. Ties go to the candidate sharing the
// longer prefix with the input. Inputs shorter than two bytes never match:
// a single-letter typo could be anything.
func Best(input string, candidates []string, maxDistance int) string {
	if len(input) < 2 {
		return ""
	}
	input = strings.ToLower(input)

	best := ""
	bestDist := maxDistance + 1
	bestPrefix := -1
	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			// An exact match is not a typo.
			continue
		}
		dist := levenshtein(input, lower, maxDistance)
		if dist > maxDistance {
			continue
		}
		prefix := commonPrefix(input, lower)
		if dist < bestDist || (dist == bestDist && prefix > bestPrefix) {
			best = candidate
			bestDist = dist
			bestPrefix = prefix
		}
	}
	return best
}

// levenshtein computes the edit distance between a and b, giving up with
// limit+1 as soon as the distance is known to exceed limit.
func levenshtein(a, b string, limit int) int {
	if d := len(a) - len(b); d > limit || -d > limit {
		return limit + 1
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)
	for i := range prev {
		prev[i] = i
	}
	for i := 1; i <= len(b); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(a); j++ {
			cost := 0
			if a[j-1] != b[i-1] {
				cost = 1
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, curr[j])
		}
		if rowMin > limit {
			return limit + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(a)]
}

func commonPrefix(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
