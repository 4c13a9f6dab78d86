package models

import (
	"encoding/json"
	"time"
)

// NoteEvent is the payload published on note lifecycle changes, both to the
// broker and to connected WebSocket clients. For store-wide events (clear)
// the note fields stay empty.
type NoteEvent struct {
	Event      string    `json:"event"`
	NoteID     string    `json:"note_id,omitempty"`
	Category   string    `json:"category,omitempty"`
	Title      string    `json:"title,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewNoteEvent(event string, note Note) NoteEvent {
	return NoteEvent{
		Event:      event,
		NoteID:     note.ID,
		Category:   note.Category,
		Title:      note.Title,
		OccurredAt: time.Now().UTC(),
	}
}

func (e *NoteEvent) FromJSON(data []byte) error {
	return json.Unmarshal(data, e)
}

func (e *NoteEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
