package projection

import (
	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
)

// TickerEntry - карточка ленты срочных тревог
type TickerEntry struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Time            string          `json:"time"`
	Image           string          `json:"image"`
	Severity        models.Severity `json:"severity"`
	PredictedImpact int             `json:"predicted_impact"`
}

type Source struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

type Badge struct {
	Severity models.Severity `json:"severity"`
	Label    string          `json:"label"`
}

// FeedCard - карточка основной ленты
type FeedCard struct {
	ID              uuid.UUID `json:"id"`
	Source          Source    `json:"source"`
	Time            string    `json:"time"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Image           string    `json:"image"`
	Badge           Badge     `json:"badge"`
	PredictedImpact int       `json:"predicted_impact"`
}

// ModerationCard - карточка списка модерации со счетчиками
type ModerationCard struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	LocationText string          `json:"location_text"`
	Severity     models.Severity `json:"severity"`
	Verified     uint            `json:"verified"`
	Flagged      uint            `json:"flagged"`
	BorderClass  string          `json:"border_class"`
}

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker - маркер карты
type Marker struct {
	ID           uuid.UUID `json:"id"`
	Position     Position  `json:"position"`
	Color        string    `json:"color"`
	Radius       int       `json:"radius"`
	Pulse        bool      `json:"pulse"`
	Approximate  bool      `json:"approximate"`
	PopupContent string    `json:"popup_content"`
}

// Summary - счетчик над списком модерации
type Summary struct {
	Total         int    `json:"total"`
	VerifiedCount int    `json:"verified_count"`
	Text          string `json:"text"`
}

// Board - полный набор представлений доски на момент последней отрисовки
type Board struct {
	Filter     models.SeverityFilter `json:"filter"`
	Ticker     []TickerEntry         `json:"ticker"`
	Feed       []FeedCard            `json:"feed"`
	Moderation []ModerationCard      `json:"moderation"`
	Markers    []Marker              `json:"markers"`
	Summary    Summary               `json:"summary"`
}
