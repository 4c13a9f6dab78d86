package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stillpad-notes/stillpad/broker"
	"stillpad-notes/stillpad/models"
	"stillpad-notes/stillpad/store"
)

type recordingBroadcaster struct {
	events []models.NoteEvent
}

func (b *recordingBroadcaster) BroadcastEvent(event models.NoteEvent) {
	b.events = append(b.events, event)
}

func newTestService() (*NoteService, *recordingBroadcaster) {
	broadcaster := &recordingBroadcaster{}
	svc := NewNoteService(store.NewNoteStore(), broker.NewDisabledProducer(), broadcaster)
	return svc, broadcaster
}

func TestCreateNoteService(t *testing.T) {
	t.Run("Emits Created Event", func(t *testing.T) {
		svc, broadcaster := newTestService()

		note, err := svc.CreateNote(models.CreateNoteRequest{
			Title:    "A",
			Content:  "x",
			Category: "C",
		})
		require.NoError(t, err)

		require.Len(t, broadcaster.events, 1)
		event := broadcaster.events[0]
		assert.Equal(t, string(broker.NoteCreated), event.Event)
		assert.Equal(t, note.ID, event.NoteID)
		assert.Equal(t, "C", event.Category)
	})

	t.Run("Validation Failure Emits Nothing", func(t *testing.T) {
		svc, broadcaster := newTestService()

		_, err := svc.CreateNote(models.CreateNoteRequest{Category: "C"})
		require.Error(t, err)
		assert.Equal(t, "Validation failed: title must be between 1 and 255 characters", err.Error())
		assert.Empty(t, broadcaster.events)
	})
}

func TestGetNoteByIDService(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.CreateNote(models.CreateNoteRequest{Title: "A", Category: "C"})
	require.NoError(t, err)

	got, err := svc.GetNoteByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetNoteByID("missing")
	assert.True(t, errors.Is(err, ErrNoteNotFound))
}

func TestDeleteNoteService(t *testing.T) {
	t.Run("Emits Deleted Event", func(t *testing.T) {
		svc, broadcaster := newTestService()

		created, err := svc.CreateNote(models.CreateNoteRequest{Title: "A", Category: "C"})
		require.NoError(t, err)

		assert.True(t, svc.DeleteNote(created.ID))

		require.Len(t, broadcaster.events, 2)
		event := broadcaster.events[1]
		assert.Equal(t, string(broker.NoteDeleted), event.Event)
		assert.Equal(t, created.ID, event.NoteID)
		assert.Equal(t, "C", event.Category)
	})

	t.Run("Unknown ID Emits Nothing", func(t *testing.T) {
		svc, broadcaster := newTestService()

		assert.False(t, svc.DeleteNote("missing"))
		assert.Empty(t, broadcaster.events)
	})
}

func TestClearAllNotesService(t *testing.T) {
	svc, broadcaster := newTestService()

	_, err := svc.CreateNote(models.CreateNoteRequest{Title: "A", Category: "C"})
	require.NoError(t, err)

	svc.ClearAllNotes()

	assert.Zero(t, svc.NoteCount())
	assert.Empty(t, svc.GetCategories())
	require.Len(t, broadcaster.events, 2)
	assert.Equal(t, string(broker.NotesCleared), broadcaster.events[1].Event)
	assert.Empty(t, broadcaster.events[1].NoteID)
}

func TestReadNotesByCategoryService(t *testing.T) {
	svc, _ := newTestService()

	list, err := svc.ReadNotesByCategory("unknown", store.DefaultReadLimit, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Notes)
	assert.Equal(t, 0, list.Total)
	assert.Equal(t, "unknown", list.Category)
}

func TestSeedDemoNotes(t *testing.T) {
	t.Run("Fills Empty Store", func(t *testing.T) {
		svc, _ := newTestService()

		SeedDemoNotes(svc, 10)

		assert.Equal(t, 10, svc.NoteCount())
		for _, category := range svc.GetCategories() {
			assert.Contains(t, seedCategories, category.Name)
		}
	})

	t.Run("Skips Non-Empty Store", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.CreateNote(models.CreateNoteRequest{Title: "A", Category: "C"})
		require.NoError(t, err)

		SeedDemoNotes(svc, 10)
		assert.Equal(t, 1, svc.NoteCount())
	})
}
