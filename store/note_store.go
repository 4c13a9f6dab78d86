package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"stillpad-notes/stillpad/models"
)

// DefaultReadLimit is the page size used when a category read does not ask
// for one.
const DefaultReadLimit = 100

// NoteStore holds every note in memory behind two indexes: one by id and one
// by category in insertion order. Both indexes are owned exclusively by the
// store; callers only ever see copies of stored notes. The RWMutex makes the
// store safe to share across concurrent request handlers.
type NoteStore struct {
	mu         sync.RWMutex
	byID       map[string]*models.Note
	byCategory map[string][]*models.Note
}

func NewNoteStore() *NoteStore {
	return &NoteStore{
		byID:       make(map[string]*models.Note),
		byCategory: make(map[string][]*models.Note),
	}
}

// Create assigns a fresh id and timestamps, validates the fully constructed
// note and indexes it. A validation failure returns a ValidationError with
// every violated-field message and leaves both indexes untouched.
func (s *NoteStore) Create(req models.CreateNoteRequest) (models.Note, error) {
	now := time.Now().UTC()
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Tags:      tags,
		Mood:      req.Mood,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if violations := models.ValidateNote(note); len(violations) > 0 {
		return models.Note{}, &ValidationError{Messages: violations}
	}

	// Detach from the caller's tags slice before indexing. Both indexes hold
	// the same instance; it is never mutated after this point.
	stored := note.Clone()

	s.mu.Lock()
	s.byID[stored.ID] = &stored
	s.byCategory[stored.Category] = append(s.byCategory[stored.Category], &stored)
	s.mu.Unlock()

	return stored.Clone(), nil
}

// ReadByCategory returns one page of a category's notes, newest first, along
// with the total count before pagination. An unknown category yields an empty
// page and total 0, not an error.
func (s *NoteStore) ReadByCategory(category string, limit, offset int) (models.NoteList, error) {
	if limit < 1 {
		return models.NoteList{}, NewValidationError("limit must be a positive integer")
	}
	if offset < 0 {
		return models.NoteList{}, NewValidationError("offset must be a non-negative integer")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.byCategory[category]
	sorted := make([]*models.Note, len(bucket))
	copy(sorted, bucket)

	// Newest first; the stable sort keeps insertion order among equal
	// timestamps.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := len(sorted)
	start := offset
	if start > total {
		start = total
	}
	// Clamp before adding: start+limit can overflow for huge limits.
	end := total
	if limit < total-start {
		end = start + limit
	}

	notes := make([]models.Note, 0, end-start)
	for _, n := range sorted[start:end] {
		notes = append(notes, n.Clone())
	}

	return models.NoteList{Notes: notes, Total: total, Category: category}, nil
}

// GetByID returns a copy of the note, or false when no note has that id.
func (s *NoteStore) GetByID(id string) (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	note, ok := s.byID[id]
	if !ok {
		return models.Note{}, false
	}
	return note.Clone(), true
}

// ListCategories reports every category holding at least one note and its
// current count. Order reflects map iteration and is unspecified.
func (s *NoteStore) ListCategories() []models.CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.CategorySummary, 0, len(s.byCategory))
	for name, notes := range s.byCategory {
		categories = append(categories, models.CategorySummary{Name: name, Count: len(notes)})
	}
	return categories
}

// Delete removes the note from both indexes and reports whether anything was
// removed. Emptying a category removes the category itself.
func (s *NoteStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)

	bucket := s.byCategory[note.Category]
	for i, n := range bucket {
		if n.ID == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.byCategory, note.Category)
	} else {
		s.byCategory[note.Category] = bucket
	}

	return true
}

// Clear drops all notes and categories.
func (s *NoteStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]*models.Note)
	s.byCategory = make(map[string][]*models.Note)
}

// Len returns the number of stored notes.
func (s *NoteStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
