package services

import (
	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"stillpad-notes/stillpad/models"
)

var seedCategories = []string{"journal", "ideas", "reading", "work", "travel"}

// seedMoods includes the empty mood so some notes stay mood-less.
var seedMoods = []models.Mood{
	"",
	models.MoodCalm,
	models.MoodInspired,
	models.MoodReflective,
	models.MoodGrateful,
	models.MoodNeutral,
}

// SeedDemoNotes fills an empty store with generated notes so a fresh instance
// has something to show. Seeding goes through the service, so validation and
// event emission apply like to any other create. A non-empty store is left
// alone.
func SeedDemoNotes(noteService NoteServiceInterface, count int) {
	if noteService.NoteCount() > 0 {
		log.Debug("store not empty, skipping demo seed")
		return
	}

	created := 0
	for i := 0; i < count; i++ {
		req := models.CreateNoteRequest{
			Title:    gofakeit.Sentence(gofakeit.Number(2, 5)),
			Content:  gofakeit.Paragraph(1, gofakeit.Number(1, 4), 12, " "),
			Category: seedCategories[gofakeit.Number(0, len(seedCategories)-1)],
			Tags:     []string{gofakeit.Word(), gofakeit.Word()},
			Mood:     seedMoods[gofakeit.Number(0, len(seedMoods)-1)],
		}
		if _, err := noteService.CreateNote(req); err != nil {
			log.Warnf("failed to seed demo note: %v", err)
			continue
		}
		created++
	}

	log.Infof("seeded %d demo notes", created)
}
