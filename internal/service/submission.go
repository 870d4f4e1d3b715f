package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
)

const (
	defaultTitle        = "Untitled"
	submissionImageSize = "800x600"
	submissionTimeFmt   = "2006-01-02 15:04:05"
)

// Submission превращает сырые поля формы в готовую запись.
// Уровень строгий (неизвестное значение - ошибка), координаты разбираются мягко.
type Submission struct {
	placeholder projection.PlaceholderFunc
	now         func() time.Time
	newID       func() uuid.UUID
}

func NewSubmission(placeholder projection.PlaceholderFunc) *Submission {
	if placeholder == nil {
		placeholder = projection.RandomPlaceholder
	}
	return &Submission{
		placeholder: placeholder,
		now:         time.Now,
		newID:       uuid.New,
	}
}

// Normalize проверяет форму и заполняет значения по умолчанию
func (s *Submission) Normalize(form models.SubmissionForm) (*models.Incident, error) {
	severity := models.SeverityMild
	if raw := strings.TrimSpace(form.Severity); raw != "" {
		parsed, err := models.ParseSeverity(raw)
		if err != nil {
			return nil, err
		}
		severity = parsed
	}

	title := strings.TrimSpace(form.Title)
	if title == "" {
		title = defaultTitle
	}

	image := strings.TrimSpace(form.Image)
	if image == "" {
		image = s.placeholder(submissionImageSize)
	}

	stamp := strings.TrimSpace(form.Time)
	if stamp == "" {
		stamp = s.now().Format(submissionTimeFmt)
	}

	return &models.Incident{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(form.Description),
		Location:    strings.TrimSpace(form.Location),
		Lat:         parseCoordinate(form.Lat, 90),
		Lng:         parseCoordinate(form.Lng, 180),
		Severity:    severity,
		Image:       image,
		Time:        stamp,
		Verified:    0,
		Flagged:     0,
		Submitted:   true,
	}, nil
}

// parseCoordinate возвращает nil для пустого, нечислового или выходящего за пределы значения
func parseCoordinate(raw string, limit float64) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return nil
	}
	return &v
}
