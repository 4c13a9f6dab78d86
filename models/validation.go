package models

import (
	"fmt"
	"unicode/utf8"
)

// Field limits, counted in runes.
const (
	TitleMaxLen    = 255
	ContentMaxLen  = 10000
	CategoryMaxLen = 50
	TagMaxLen      = 30
)

// ValidateNote checks every field constraint and returns one message per
// violated field, in field order. An empty result means the note is storable.
func ValidateNote(n Note) []string {
	var violations []string

	if l := utf8.RuneCountInString(n.Title); l < 1 || l > TitleMaxLen {
		violations = append(violations, fmt.Sprintf("title must be between 1 and %d characters", TitleMaxLen))
	}
	if utf8.RuneCountInString(n.Content) > ContentMaxLen {
		violations = append(violations, fmt.Sprintf("content must be at most %d characters", ContentMaxLen))
	}
	if l := utf8.RuneCountInString(n.Category); l < 1 || l > CategoryMaxLen {
		violations = append(violations, fmt.Sprintf("category must be between 1 and %d characters", CategoryMaxLen))
	}
	for _, tag := range n.Tags {
		if utf8.RuneCountInString(tag) > TagMaxLen {
			violations = append(violations, fmt.Sprintf("tags must each be at most %d characters", TagMaxLen))
			break
		}
	}
	if n.Mood != "" && !ValidMood(n.Mood) {
		violations = append(violations, "mood must be one of: calm, inspired, reflective, grateful, neutral")
	}

	return violations
}
