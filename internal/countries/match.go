package countries

import (
	"strings"
	"unicode"
)

// matchThreshold is the minimum score accepted from fuzzy matching. The input
// set is curated, so the top match is accepted without disambiguation; the
// threshold only rejects nonsense input.
const matchThreshold = 0.6

// normalizeName lowercases, folds punctuation to spaces and collapses runs of
// whitespace, so "D.R. Congo" and "d r congo" compare equal.
func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "&", " and ")
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// score rates how well a normalized query matches a normalized candidate name,
// in [0, 1]. Ranking, best first: exact match, match on the candidate's
// leading comma segment ("Iran, Islamic Republic of" -> "Iran"), query tokens
// contained in the candidate, edit-distance ratio.
func score(query, candidate, candidateHead string) float64 {
	if query == "" || candidate == "" {
		return 0
	}
	if query == candidate {
		return 1
	}
	best := 0.0
	if candidateHead != "" && query == candidateHead {
		best = 0.95
	}
	if tokensContained(query, candidate) {
		ratio := float64(len(query)) / float64(len(candidate))
		if s := 0.6 + 0.4*ratio; s > best {
			best = s
		}
	}
	if s := levenshteinRatio(query, candidate); s > best {
		best = s
	}
	return best
}

// tokensContained reports whether every query token appears in the candidate,
// either verbatim or as a prefix of a candidate token ("russia" matches
// "russian federation").
func tokensContained(query, candidate string) bool {
	queryTokens := strings.Fields(query)
	candidateTokens := strings.Fields(candidate)
	if len(queryTokens) == 0 {
		return false
	}
	for _, qt := range queryTokens {
		found := false
		for _, ct := range candidateTokens {
			if qt == ct || strings.HasPrefix(ct, qt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// levenshteinRatio is 1 - distance/maxLen over runes.
func levenshteinRatio(s1, s2 string) float64 {
	r1 := []rune(s1)
	r2 := []rune(s2)
	longest := len(r1)
	if len(r2) > longest {
		longest = len(r2)
	}
	if longest == 0 {
		return 0
	}
	return 1 - float64(levenshteinDistance(r1, r2))/float64(longest)
}

func levenshteinDistance(r1, r2 []rune) int {
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	previous := make([]int, len(r2)+1)
	current := make([]int, len(r2)+1)
	for j := 0; j <= len(r2); j++ {
		previous[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		current[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			current[j] = min3(
				previous[j]+1,      // deletion
				current[j-1]+1,     // insertion
				previous[j-1]+cost, // substitution
			)
		}
		previous, current = current, previous
	}
	return previous[len(r2)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
