package engine

import (
	"regexp"
	"strings"
)

// Tuning constants. Behavior and fixtures depend on the exact values,
// so treat them as frozen even though they are empirical.
const (
	// longPhraseLen is the phrase length from which a synonym hit is
	// worth two points instead of one.
	longPhraseLen = 4
	// minColumnScore is the acceptance floor of BestColumn: a single
	// short synonym hit is not enough evidence to bind a column.
	minColumnScore = 2
)

var reSpaces = regexp.MustCompile(`\s+`)

// Normalize trims, collapses internal whitespace runs to a single
// space and lowercases.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return reSpaces.ReplaceAllString(s, " ")
}

// HeaderKey reduces a header to lowercase letters, digits and single
// spaces, so punctuation variants like "PO(L) Code" and "pol code"
// compare equal.
func HeaderKey(s string) string {
	s = Normalize(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			b.WriteRune(r)
		}
	}
	// Stripping punctuation may leave fresh double spaces.
	return strings.TrimSpace(reSpaces.ReplaceAllString(b.String(), " "))
}

// MatchScore scores one column header against a synonym list. Every
// phrase contained in the header key counts: two points for phrases of
// four or more characters, one point otherwise. Longer phrases carry
// more weight because short ones risk false positives.
func MatchScore(column string, phrases []string) int {
	key := HeaderKey(column)
	if key == "" {
		return 0
	}
	score := 0
	for _, phrase := range phrases {
		if phrase == "" || !strings.Contains(key, phrase) {
			continue
		}
		if len(phrase) >= longPhraseLen {
			score += 2
		} else {
			score++
		}
	}
	return score
}

// BestColumn picks the column with the highest synonym score, provided
// the score reaches the acceptance floor. Ties go to the first column
// in input order, which keeps resolution stable.
func BestColumn(columns []string, phrases []string) (string, bool) {
	best := ""
	bestScore := 0
	for _, col := range columns {
		if score := MatchScore(col, phrases); score > bestScore {
			best = col
			bestScore = score
		}
	}
	if bestScore < minColumnScore {
		return "", false
	}
	return best, true
}

// containsAnyPhrase reports whether the header key contains at least
// one phrase, regardless of phrase length.
func containsAnyPhrase(key string, phrases []string) bool {
	for _, phrase := range phrases {
		if phrase != "" && strings.Contains(key, phrase) {
			return true
		}
	}
	return false
}
