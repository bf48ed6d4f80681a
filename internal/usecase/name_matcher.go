package usecase

import (
	"regexp"
	"sort"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	punctuationRegex    = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
)

// Scoring weights for name suggestions
const (
	tokenMatchWeight     = 70.0 // Share of query tokens found in the candidate
	substringMatchBonus  = 20.0 // Query is a substring of the candidate
	prefixMatchBonus     = 10.0 // Candidate starts with the query
	minSuggestionScore   = 35.0
	defaultSuggestionCap = 3
	fuzzyEditDistance    = 1 // Max edits for a near-miss token to count
)

// NameMatcher proposes catalog names close to a name that did not match exactly.
// It never changes which record a name resolves to; lookups stay exact.
type NameMatcher struct {
	limit int
}

// NewNameMatcher creates a matcher returning at most limit suggestions.
func NewNameMatcher(limit int) *NameMatcher {
	if limit <= 0 {
		limit = defaultSuggestionCap
	}
	return &NameMatcher{limit: limit}
}

type scoredName struct {
	name  string
	score float64
}

// Suggest returns candidates scoring above the threshold, best first.
func (m *NameMatcher) Suggest(query string, candidates []string) []string {
	normalizedQuery := normalizeName(query)
	if normalizedQuery == "" {
		return nil
	}
	queryTokens := strings.Fields(normalizedQuery)

	var scored []scoredName
	for _, candidate := range candidates {
		score := matchScore(normalizedQuery, queryTokens, normalizeName(candidate))
		if score >= minSuggestionScore {
			scored = append(scored, scoredName{name: candidate, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var names []string
	for i := 0; i < len(scored) && i < m.limit; i++ {
		names = append(names, scored[i].name)
	}
	return names
}

// matchScore scores a normalized candidate against a normalized query on a 0-100 scale.
func matchScore(query string, queryTokens []string, candidate string) float64 {
	if candidate == "" {
		return 0
	}

	fields := strings.Fields(candidate)
	candidateTokens := make(map[string]bool, len(fields))
	for _, t := range fields {
		candidateTokens[t] = true
	}

	matched := 0
	for _, t := range queryTokens {
		if candidateTokens[t] {
			matched++
			continue
		}
		for _, c := range fields {
			if fuzzyTokenMatch(t, c, fuzzyEditDistance) {
				matched++
				break
			}
		}
	}

	score := tokenMatchWeight * float64(matched) / float64(len(queryTokens))
	if strings.Contains(candidate, query) {
		score += substringMatchBonus
	}
	if strings.HasPrefix(candidate, query) {
		score += prefixMatchBonus
	}
	return score
}

// normalizeName lowercases s, turns punctuation into spaces and collapses whitespace.
func normalizeName(s string) string {
	result := strings.ToLower(s)
	result = punctuationRegex.ReplaceAllString(result, " ")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// fuzzyTokenMatch reports whether two tokens are within threshold edits.
// Tokens shorter than 4 characters never match fuzzily.
func fuzzyTokenMatch(token1, token2 string, threshold int) bool {
	if len(token1) < 4 || len(token2) < 4 {
		return false
	}

	lenDiff := len(token1) - len(token2)
	if lenDiff < 0 {
		lenDiff = -lenDiff
	}
	if lenDiff > threshold {
		return false
	}

	return levenshteinDistance(token1, token2) <= threshold
}

// levenshteinDistance calculates the edit distance between two strings
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// Two rows instead of the full matrix
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
