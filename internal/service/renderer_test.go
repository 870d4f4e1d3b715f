package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
	"github.com/stretchr/testify/assert"
)

func TestSnapshot_EmptyByDefault(t *testing.T) {
	view := NewSnapshot().View()

	assert.Equal(t, models.FilterAll, view.Filter)
	assert.NotNil(t, view.Ticker)
	assert.NotNil(t, view.Feed)
	assert.NotNil(t, view.Moderation)
	assert.NotNil(t, view.Markers)
	assert.Empty(t, view.Markers)
}

func TestSnapshot_RenderReplacesContents(t *testing.T) {
	s := NewSnapshot()
	first := []projection.FeedCard{{ID: uuid.New(), Title: "one"}, {ID: uuid.New(), Title: "two"}}
	second := []projection.FeedCard{{ID: uuid.New(), Title: "three"}}

	s.RenderFeed(first)
	s.RenderFeed(second)

	view := s.View()
	assert.Len(t, view.Feed, 1)
	assert.Equal(t, "three", view.Feed[0].Title)
}

func TestSnapshot_ViewIsACopy(t *testing.T) {
	s := NewSnapshot()
	entries := []projection.TickerEntry{{Title: "original"}}
	s.RenderTicker(entries)

	// Изменение входа и результата View не влияет на снимок
	entries[0].Title = "changed input"
	view := s.View()
	view.Ticker[0].Title = "changed output"

	assert.Equal(t, "original", s.View().Ticker[0].Title)
}
