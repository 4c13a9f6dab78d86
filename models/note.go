package models

import (
	"encoding/json"
	"time"
)

// Mood expresses the emotional context of a note. It is optional; the empty
// string means no mood was recorded.
type Mood string

const (
	MoodCalm       Mood = "calm"
	MoodInspired   Mood = "inspired"
	MoodReflective Mood = "reflective"
	MoodGrateful   Mood = "grateful"
	MoodNeutral    Mood = "neutral"
)

// Moods lists every accepted mood value.
var Moods = []Mood{MoodCalm, MoodInspired, MoodReflective, MoodGrateful, MoodNeutral}

func ValidMood(m Mood) bool {
	for _, mood := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	Mood      Mood      `json:"mood,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n *Note) FromJSON(data []byte) error {
	return json.Unmarshal(data, n)
}

func (n *Note) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// Clone returns a copy sharing no mutable state with the receiver, so callers
// cannot reach into store-owned notes through the tags slice.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = make([]string, len(n.Tags))
		copy(c.Tags, n.Tags)
	}
	return c
}

// CreateNoteRequest carries the caller-supplied fields of a new note. Tags and
// mood are optional; identity and timestamps are assigned by the store.
type CreateNoteRequest struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Mood     Mood     `json:"mood"`
}

// NoteList is one page of a category read, with the pre-pagination total.
type NoteList struct {
	Notes    []Note `json:"notes"`
	Total    int    `json:"total"`
	Category string `json:"category"`
}

type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
