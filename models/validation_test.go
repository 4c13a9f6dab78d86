package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func storableNote() Note {
	return Note{
		ID:       "8f14e45f-ceea-4673-9bcd-0d1b2a42c0a1",
		Title:    "A",
		Content:  "x",
		Category: "C",
		Tags:     []string{},
	}
}

func TestValidateNote(t *testing.T) {
	t.Run("Storable Note", func(t *testing.T) {
		assert.Empty(t, ValidateNote(storableNote()))
	})

	t.Run("Title Bounds", func(t *testing.T) {
		n := storableNote()
		n.Title = strings.Repeat("a", TitleMaxLen)
		assert.Empty(t, ValidateNote(n))

		n.Title = strings.Repeat("a", TitleMaxLen+1)
		assert.Equal(t, []string{"title must be between 1 and 255 characters"}, ValidateNote(n))

		n.Title = ""
		assert.Equal(t, []string{"title must be between 1 and 255 characters"}, ValidateNote(n))
	})

	t.Run("Empty Content Allowed", func(t *testing.T) {
		n := storableNote()
		n.Content = ""
		assert.Empty(t, ValidateNote(n))
	})

	t.Run("Content Too Long", func(t *testing.T) {
		n := storableNote()
		n.Content = strings.Repeat("a", ContentMaxLen+1)
		assert.Equal(t, []string{"content must be at most 10000 characters"}, ValidateNote(n))
	})

	t.Run("Category Bounds", func(t *testing.T) {
		n := storableNote()
		n.Category = strings.Repeat("c", CategoryMaxLen)
		assert.Empty(t, ValidateNote(n))

		n.Category = strings.Repeat("c", CategoryMaxLen+1)
		assert.Equal(t, []string{"category must be between 1 and 50 characters"}, ValidateNote(n))
	})

	t.Run("Limits Count Runes Not Bytes", func(t *testing.T) {
		n := storableNote()
		n.Title = strings.Repeat("ä", TitleMaxLen)
		assert.Empty(t, ValidateNote(n))
	})

	t.Run("One Message Per Field", func(t *testing.T) {
		n := storableNote()
		n.Tags = []string{strings.Repeat("x", TagMaxLen+1), strings.Repeat("y", TagMaxLen+1)}
		assert.Equal(t, []string{"tags must each be at most 30 characters"}, ValidateNote(n))
	})

	t.Run("All Fields Violated", func(t *testing.T) {
		n := Note{
			Title:    "",
			Content:  strings.Repeat("a", ContentMaxLen+1),
			Category: "",
			Tags:     []string{strings.Repeat("x", TagMaxLen+1)},
			Mood:     "furious",
		}
		assert.Len(t, ValidateNote(n), 5)
	})
}
