package broker

type EventType string

// Event types double as NATS subjects, in <resource>.<action> format.
const (
	NoteCreated  EventType = "note.created"
	NoteDeleted  EventType = "note.deleted"
	NotesCleared EventType = "note.cleared"
)

// Subjects lists every subject the producer publishes to, for consumers that
// want to subscribe to the full stream.
var Subjects = []EventType{NoteCreated, NoteDeleted, NotesCleared}
