package services

import (
	"time"

	log "github.com/sirupsen/logrus"

	"stillpad-notes/stillpad/broker"
	"stillpad-notes/stillpad/models"
	"stillpad-notes/stillpad/store"
)

// Broadcaster pushes an event to every connected listener. Implemented by the
// WebSocket service; the note service runs fine without one.
type Broadcaster interface {
	BroadcastEvent(event models.NoteEvent)
}

type NoteServiceInterface interface {
	CreateNote(req models.CreateNoteRequest) (models.Note, error)
	ReadNotesByCategory(category string, limit, offset int) (models.NoteList, error)
	GetNoteByID(id string) (models.Note, error)
	GetCategories() []models.CategorySummary
	DeleteNote(id string) bool
	ClearAllNotes()
	NoteCount() int
}

// NoteService wraps the in-memory store with event emission. The store is the
// source of truth: event publishing failures are logged and never change the
// outcome of an operation.
type NoteService struct {
	store       *store.NoteStore
	producer    *broker.Producer
	broadcaster Broadcaster
}

var _ NoteServiceInterface = (*NoteService)(nil)

func NewNoteService(noteStore *store.NoteStore, producer *broker.Producer, broadcaster Broadcaster) *NoteService {
	return &NoteService{
		store:       noteStore,
		producer:    producer,
		broadcaster: broadcaster,
	}
}

func (s *NoteService) CreateNote(req models.CreateNoteRequest) (models.Note, error) {
	note, err := s.store.Create(req)
	if err != nil {
		return models.Note{}, err
	}

	s.emit(models.NewNoteEvent(string(broker.NoteCreated), note))
	log.Debugf("note created: %s [%s]", note.ID, note.Category)
	return note, nil
}

func (s *NoteService) ReadNotesByCategory(category string, limit, offset int) (models.NoteList, error) {
	return s.store.ReadByCategory(category, limit, offset)
}

func (s *NoteService) GetNoteByID(id string) (models.Note, error) {
	note, ok := s.store.GetByID(id)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}
	return note, nil
}

func (s *NoteService) GetCategories() []models.CategorySummary {
	return s.store.ListCategories()
}

func (s *NoteService) DeleteNote(id string) bool {
	// Look the note up first so the event can carry its category and title.
	// If another caller wins the race, Delete reports false and no event
	// goes out.
	note, ok := s.store.GetByID(id)
	if !ok {
		return false
	}
	if !s.store.Delete(id) {
		return false
	}

	s.emit(models.NewNoteEvent(string(broker.NoteDeleted), note))
	log.Debugf("note deleted: %s [%s]", note.ID, note.Category)
	return true
}

func (s *NoteService) ClearAllNotes() {
	s.store.Clear()
	s.emit(models.NoteEvent{
		Event:      string(broker.NotesCleared),
		OccurredAt: time.Now().UTC(),
	})
	log.Debug("all notes cleared")
}

func (s *NoteService) NoteCount() int {
	return s.store.Len()
}

func (s *NoteService) emit(event models.NoteEvent) {
	if s.producer != nil {
		if err := s.producer.Publish(event); err != nil {
			log.Warnf("failed to publish %s event: %v", event.Event, err)
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastEvent(event)
	}
}
