package service

import (
	"sync"

	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
)

// Renderer принимает готовые представления доски. Реализация не должна изменять входные данные.
type Renderer interface {
	RenderTicker(entries []projection.TickerEntry)
	RenderFeed(cards []projection.FeedCard)
	RenderModeration(cards []projection.ModerationCard)
	RenderMarkers(markers []projection.Marker)
	RenderSummary(summary projection.Summary)
}

// Snapshot - Renderer, запоминающий последние представления для отдачи по HTTP.
// Каждый Render* полностью заменяет соответствующую часть снимка.
type Snapshot struct {
	mu   sync.RWMutex
	view projection.Board
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		view: projection.Board{
			Filter:     models.FilterAll,
			Ticker:     []projection.TickerEntry{},
			Feed:       []projection.FeedCard{},
			Moderation: []projection.ModerationCard{},
			Markers:    []projection.Marker{},
		},
	}
}

func (s *Snapshot) RenderTicker(entries []projection.TickerEntry) {
	s.mu.Lock()
	s.view.Ticker = append([]projection.TickerEntry(nil), entries...)
	s.mu.Unlock()
}

func (s *Snapshot) RenderFeed(cards []projection.FeedCard) {
	s.mu.Lock()
	s.view.Feed = append([]projection.FeedCard(nil), cards...)
	s.mu.Unlock()
}

func (s *Snapshot) RenderModeration(cards []projection.ModerationCard) {
	s.mu.Lock()
	s.view.Moderation = append([]projection.ModerationCard(nil), cards...)
	s.mu.Unlock()
}

func (s *Snapshot) RenderMarkers(markers []projection.Marker) {
	s.mu.Lock()
	s.view.Markers = append([]projection.Marker(nil), markers...)
	s.mu.Unlock()
}

func (s *Snapshot) RenderSummary(summary projection.Summary) {
	s.mu.Lock()
	s.view.Summary = summary
	s.mu.Unlock()
}

func (s *Snapshot) setFilter(filter models.SeverityFilter) {
	s.mu.Lock()
	s.view.Filter = filter
	s.mu.Unlock()
}

// View возвращает копию снимка
func (s *Snapshot) View() projection.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return projection.Board{
		Filter:     s.view.Filter,
		Ticker:     append([]projection.TickerEntry{}, s.view.Ticker...),
		Feed:       append([]projection.FeedCard{}, s.view.Feed...),
		Moderation: append([]projection.ModerationCard{}, s.view.Moderation...),
		Markers:    append([]projection.Marker{}, s.view.Markers...),
		Summary:    s.view.Summary,
	}
}
