package projection

import (
	"fmt"
	"html"
	"math/rand"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
)

const (
	DefaultTickerLimit = 10

	defaultMarkerColor = "#0ea5e9"
	markerRadius       = 10

	// Центр региона для записей без координат и без текстового адреса
	regionCenterLat = 20.0
	regionCenterLng = 78.0
)

// Прямоугольник, внутри которого размещаются записи с адресом, но без координат
var fallbackBox = struct{ minLat, latSpan, minLng, lngSpan float64 }{8, 4, 68, 70}

var markerColors = map[models.Severity]string{
	models.SeverityMild:     "#16a34a",
	models.SeverityAverage:  "#f59e0b",
	models.SeverityCritical: "#f97316",
	models.SeverityAlltime:  "#dc2626",
}

// Источники, по кругу приписываемые карточкам ленты
var feedSources = []Source{
	{Name: "CoastWatch", AvatarURL: "https://img.icons8.com/?size=512&id=102523&format=png"},
	{Name: "Indian Coast Guard", AvatarURL: "https://img.icons8.com/fluency/48/000000/ship.png"},
	{Name: "Maritime News", AvatarURL: "https://img.icons8.com/fluency/48/000000/news.png"},
	{Name: "CitizenReport", AvatarURL: "https://img.icons8.com/fluency/48/000000/user-male-circle.png"},
	{Name: "OceanWatch", AvatarURL: "https://img.icons8.com/fluency/48/000000/waves.png"},
}

// PlaceholderFunc возвращает ссылку на картинку-заглушку заданного размера
type PlaceholderFunc func(size string) string

// Engine строит представления коллекции для отрисовки.
// Не хранит состояния между вызовами; Impact и Placeholder подменяются в тестах.
type Engine struct {
	Impact      func(n int) int
	Placeholder PlaceholderFunc
}

func NewEngine(placeholder PlaceholderFunc) *Engine {
	if placeholder == nil {
		placeholder = RandomPlaceholder
	}
	return &Engine{
		Impact:      rand.Intn,
		Placeholder: placeholder,
	}
}

// Ticker отбирает critical и alltime записи в порядке коллекции, не более limit штук
func (e *Engine) Ticker(incidents []*models.Incident, limit int) []TickerEntry {
	if limit <= 0 {
		limit = DefaultTickerLimit
	}

	entries := make([]TickerEntry, 0, limit)
	for _, incident := range incidents {
		if len(entries) == limit {
			break
		}
		if !incident.Severity.HighPriority() {
			continue
		}
		entries = append(entries, TickerEntry{
			ID:              incident.ID,
			Title:           incident.Title,
			Description:     incident.Description,
			Time:            incident.Time,
			Image:           e.image(incident, "780x520"),
			Severity:        incident.Severity,
			PredictedImpact: 70 + e.Impact(30),
		})
	}
	return entries
}

// Feed строит карточки ленты; источник выбирается по позиции в переданной (отфильтрованной) последовательности
func (e *Engine) Feed(incidents []*models.Incident) []FeedCard {
	cards := make([]FeedCard, 0, len(incidents))
	for idx, incident := range incidents {
		timeLabel := incident.Time
		if timeLabel == "" {
			timeLabel = "Just now"
		}
		cards = append(cards, FeedCard{
			ID:          incident.ID,
			Source:      feedSources[idx%len(feedSources)],
			Time:        timeLabel,
			Title:       incident.Title,
			Description: incident.Description,
			Image:       e.image(incident, "800x600"),
			Badge: Badge{
				Severity: incident.Severity,
				Label:    strings.ToUpper(string(incident.Severity)),
			},
			PredictedImpact: 60 + e.Impact(40),
		})
	}
	return cards
}

// Moderation строит карточки модерации. Список модерации никогда не фильтруется.
func (e *Engine) Moderation(incidents []*models.Incident) []ModerationCard {
	cards := make([]ModerationCard, 0, len(incidents))
	for _, incident := range incidents {
		cards = append(cards, ModerationCard{
			ID:           incident.ID,
			Title:        incident.Title,
			Description:  incident.Description,
			LocationText: locationText(incident),
			Severity:     incident.Severity,
			Verified:     incident.Verified,
			Flagged:      incident.Flagged,
			BorderClass:  BorderClass(incident.Severity),
		})
	}
	return cards
}

// Markers строит маркеры карты. Для записей без координат позиция вычисляется
// детерминированно из id и помечается как приблизительная.
func (e *Engine) Markers(incidents []*models.Incident) []Marker {
	markers := make([]Marker, 0, len(incidents))
	for _, incident := range incidents {
		position, approximate := markerPosition(incident)
		markers = append(markers, Marker{
			ID:           incident.ID,
			Position:     position,
			Color:        MarkerColor(incident.Severity),
			Radius:       markerRadius,
			Pulse:        incident.Severity == models.SeverityAlltime,
			Approximate:  approximate,
			PopupContent: popupContent(incident),
		})
	}
	return markers
}

// Summary считает общее число записей и число подтвержденных хотя бы раз
func (e *Engine) Summary(incidents []*models.Incident) Summary {
	summary := Summary{Total: len(incidents)}
	for _, incident := range incidents {
		if incident.Verified > 0 {
			summary.VerifiedCount++
		}
	}
	summary.Text = fmt.Sprintf("%d incidents · %d verified", summary.Total, summary.VerifiedCount)
	return summary
}

func (e *Engine) image(incident *models.Incident, size string) string {
	if incident.Image != "" {
		return incident.Image
	}
	return e.Placeholder(size)
}

// MarkerColor возвращает цвет маркера по уровню
func MarkerColor(s models.Severity) string {
	if color, ok := markerColors[s]; ok {
		return color
	}
	return defaultMarkerColor
}

// BorderClass возвращает css-класс рамки карточки модерации
func BorderClass(s models.Severity) string {
	if !s.Valid() {
		return ""
	}
	return "border-" + string(s)
}

func locationText(incident *models.Incident) string {
	if incident.Location != "" {
		return incident.Location
	}
	if incident.Located() {
		return formatCoord(*incident.Lat) + ", " + formatCoord(*incident.Lng)
	}
	return "Unknown"
}

func markerPosition(incident *models.Incident) (Position, bool) {
	if incident.Located() {
		return Position{Lat: *incident.Lat, Lng: *incident.Lng}, false
	}
	if incident.Location == "" {
		return Position{Lat: regionCenterLat, Lng: regionCenterLng}, true
	}

	latFrac, lngFrac := hashFractions(incident.ID)
	return Position{
		Lat: fallbackBox.minLat + latFrac*fallbackBox.latSpan,
		Lng: fallbackBox.minLng + lngFrac*fallbackBox.lngSpan,
	}, true
}

// hashFractions раскладывает хеш id на две доли в [0,1)
func hashFractions(id uuid.UUID) (float64, float64) {
	sum := xxhash.Sum64(id[:])
	const mask = 1<<32 - 1
	return float64(sum>>32) / (mask + 1), float64(sum&mask) / (mask + 1)
}

func popupContent(incident *models.Incident) string {
	return "<b>" + html.EscapeString(incident.Title) + "</b><br>" +
		html.EscapeString(incident.Description) + "<br><i>" +
		html.EscapeString(incident.Time) + "</i>"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
