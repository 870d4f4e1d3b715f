package projection

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(impact int) *Engine {
	return &Engine{
		Impact:      func(int) int { return impact },
		Placeholder: func(size string) string { return "ph-" + size },
	}
}

func ptr(v float64) *float64 { return &v }

func TestTicker_SelectsHighPriorityInOrder(t *testing.T) {
	e := newTestEngine(0)
	incidents := []*models.Incident{
		{ID: uuid.New(), Title: "mild", Severity: models.SeverityMild},
		{ID: uuid.New(), Title: "alltime", Severity: models.SeverityAlltime, Image: "https://img/own.jpg"},
		{ID: uuid.New(), Title: "average", Severity: models.SeverityAverage},
		{ID: uuid.New(), Title: "critical", Severity: models.SeverityCritical},
	}

	entries := e.Ticker(incidents, 10)

	require.Len(t, entries, 2)
	assert.Equal(t, "alltime", entries[0].Title)
	assert.Equal(t, "https://img/own.jpg", entries[0].Image)
	assert.Equal(t, "critical", entries[1].Title)
	assert.Equal(t, "ph-780x520", entries[1].Image)
}

func TestTicker_Limit(t *testing.T) {
	e := newTestEngine(0)
	incidents := make([]*models.Incident, 0, 15)
	for i := 0; i < 15; i++ {
		incidents = append(incidents, &models.Incident{
			ID:       uuid.New(),
			Title:    fmt.Sprintf("c%d", i),
			Severity: models.SeverityCritical,
		})
	}

	assert.Len(t, e.Ticker(incidents, 3), 3)
	assert.Len(t, e.Ticker(incidents, 0), DefaultTickerLimit)
	assert.Equal(t, "c0", e.Ticker(incidents, 3)[0].Title)
}

func TestPredictedImpactRanges(t *testing.T) {
	e := NewEngine(nil)
	incidents := []*models.Incident{{ID: uuid.New(), Severity: models.SeverityCritical}}

	for i := 0; i < 200; i++ {
		ticker := e.Ticker(incidents, 1)[0].PredictedImpact
		assert.GreaterOrEqual(t, ticker, 70)
		assert.Less(t, ticker, 100)

		feed := e.Feed(incidents)[0].PredictedImpact
		assert.GreaterOrEqual(t, feed, 60)
		assert.Less(t, feed, 100)
	}
}

func TestFeed_Cards(t *testing.T) {
	e := newTestEngine(5)
	incidents := make([]*models.Incident, 0, 7)
	for i := 0; i < 7; i++ {
		incidents = append(incidents, &models.Incident{ID: uuid.New(), Severity: models.SeverityAverage})
	}
	incidents[0].Time = "2024-05-01 08:00:00"

	cards := e.Feed(incidents)

	require.Len(t, cards, 7)
	assert.Equal(t, "2024-05-01 08:00:00", cards[0].Time)
	assert.Equal(t, "Just now", cards[1].Time)
	assert.Equal(t, "ph-800x600", cards[0].Image)
	assert.Equal(t, Badge{Severity: models.SeverityAverage, Label: "AVERAGE"}, cards[0].Badge)
	assert.Equal(t, 65, cards[0].PredictedImpact)

	// Источники выдаются по кругу
	assert.Equal(t, "CoastWatch", cards[0].Source.Name)
	assert.Equal(t, "OceanWatch", cards[4].Source.Name)
	assert.Equal(t, cards[0].Source, cards[5].Source)
	assert.Equal(t, cards[1].Source, cards[6].Source)
}

func TestFeed_Empty(t *testing.T) {
	cards := newTestEngine(0).Feed(nil)

	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestModeration_LocationText(t *testing.T) {
	e := newTestEngine(0)
	incidents := []*models.Incident{
		{ID: uuid.New(), Severity: models.SeverityMild, Location: "Kochi", Lat: ptr(1), Lng: ptr(2)},
		{ID: uuid.New(), Severity: models.SeverityCritical, Lat: ptr(9.5), Lng: ptr(-76.25)},
		{ID: uuid.New(), Severity: models.SeverityAlltime, Lat: ptr(0), Lng: ptr(0)},
		{ID: uuid.New(), Severity: models.SeverityAverage, Verified: 4, Flagged: 2},
	}

	cards := e.Moderation(incidents)

	require.Len(t, cards, 4)
	assert.Equal(t, "Kochi", cards[0].LocationText)
	assert.Equal(t, "9.5, -76.25", cards[1].LocationText)
	assert.Equal(t, "0, 0", cards[2].LocationText)
	assert.Equal(t, "Unknown", cards[3].LocationText)
	assert.Equal(t, uint(4), cards[3].Verified)
	assert.Equal(t, uint(2), cards[3].Flagged)
	assert.Equal(t, "border-average", cards[3].BorderClass)
}

func TestMarkerColorAndBorderClass(t *testing.T) {
	testCases := []struct {
		severity models.Severity
		color    string
		border   string
	}{
		{models.SeverityMild, "#16a34a", "border-mild"},
		{models.SeverityAverage, "#f59e0b", "border-average"},
		{models.SeverityCritical, "#f97316", "border-critical"},
		{models.SeverityAlltime, "#dc2626", "border-alltime"},
		{models.Severity("unknown"), "#0ea5e9", ""},
	}

	for _, tc := range testCases {
		t.Run(string(tc.severity), func(t *testing.T) {
			assert.Equal(t, tc.color, MarkerColor(tc.severity))
			assert.Equal(t, tc.border, BorderClass(tc.severity))
		})
	}
}

func TestMarkers_Positions(t *testing.T) {
	e := newTestEngine(0)
	located := &models.Incident{ID: uuid.New(), Severity: models.SeverityAlltime, Lat: ptr(0), Lng: ptr(0)}
	addressed := &models.Incident{ID: uuid.New(), Severity: models.SeverityMild, Location: "Kochi"}
	nowhere := &models.Incident{ID: uuid.New(), Severity: models.SeverityAverage}
	halfLocated := &models.Incident{ID: uuid.New(), Severity: models.SeverityMild, Lat: ptr(5)}

	markers := e.Markers([]*models.Incident{located, addressed, nowhere, halfLocated})

	require.Len(t, markers, 4)

	assert.Equal(t, Position{Lat: 0, Lng: 0}, markers[0].Position)
	assert.False(t, markers[0].Approximate)
	assert.True(t, markers[0].Pulse)
	assert.Equal(t, 10, markers[0].Radius)

	assert.True(t, markers[1].Approximate)
	assert.False(t, markers[1].Pulse)
	assert.GreaterOrEqual(t, markers[1].Position.Lat, 8.0)
	assert.Less(t, markers[1].Position.Lat, 12.0)
	assert.GreaterOrEqual(t, markers[1].Position.Lng, 68.0)
	assert.Less(t, markers[1].Position.Lng, 138.0)

	assert.Equal(t, Position{Lat: 20, Lng: 78}, markers[2].Position)
	assert.True(t, markers[2].Approximate)

	// Одна координата без второй считается отсутствием координат
	assert.True(t, markers[3].Approximate)
	assert.Equal(t, Position{Lat: 20, Lng: 78}, markers[3].Position)
}

func TestMarkers_FallbackIsDeterministic(t *testing.T) {
	e := newTestEngine(0)
	incident := &models.Incident{ID: uuid.New(), Severity: models.SeverityMild, Location: "Somewhere"}

	first := e.Markers([]*models.Incident{incident})[0].Position
	second := e.Markers([]*models.Incident{incident})[0].Position

	assert.Equal(t, first, second)
}

func TestMarkers_FallbackCoversWholeBox(t *testing.T) {
	e := newTestEngine(0)
	incidents := make([]*models.Incident, 200)
	for i := range incidents {
		incidents[i] = &models.Incident{ID: uuid.New(), Severity: models.SeverityMild, Location: "Arabian Sea"}
	}

	minLng, maxLng := 180.0, -180.0
	for _, m := range e.Markers(incidents) {
		minLng = min(minLng, m.Position.Lng)
		maxLng = max(maxLng, m.Position.Lng)
	}

	assert.GreaterOrEqual(t, minLng, 68.0)
	assert.Less(t, maxLng, 138.0)
	// Восточная часть прямоугольника тоже используется
	assert.Greater(t, maxLng, 110.0)
}

func TestMarkers_PopupIsEscaped(t *testing.T) {
	e := newTestEngine(0)
	incident := &models.Incident{
		ID:          uuid.New(),
		Title:       "<script>alert(1)</script>",
		Description: "Tom & Jerry",
		Time:        "now",
		Severity:    models.SeverityMild,
	}

	popup := e.Markers([]*models.Incident{incident})[0].PopupContent

	assert.Equal(t, "<b>&lt;script&gt;alert(1)&lt;/script&gt;</b><br>Tom &amp; Jerry<br><i>now</i>", popup)
}

func TestSummary(t *testing.T) {
	e := newTestEngine(0)
	incidents := []*models.Incident{
		{Verified: 0},
		{Verified: 1},
		{Verified: 5},
	}

	summary := e.Summary(incidents)

	assert.Equal(t, Summary{Total: 3, VerifiedCount: 2, Text: "3 incidents · 2 verified"}, summary)
	assert.Equal(t, "0 incidents · 0 verified", e.Summary(nil).Text)
}

func TestRandomPlaceholder(t *testing.T) {
	url := RandomPlaceholder("800x600")

	assert.True(t, strings.HasPrefix(url, "https://source.unsplash.com/random/800x600/?"))
	assert.NotContains(t, url, " ")
}
