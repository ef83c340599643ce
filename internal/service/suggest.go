package service

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// SuggestLabel returns the label closest to query, if any is near enough to
// be a plausible typo.
func SuggestLabel(labels []string, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, label := range labels {
		d := levenshtein.ComputeDistance(q, strings.ToLower(label))
		if bestDist < 0 || d < bestDist {
			best, bestDist = label, d
		}
	}
	if bestDist < 0 || float64(bestDist)/float64(max(len(q), len(best))) >= 0.5 {
		return "", false
	}
	return best, true
}
