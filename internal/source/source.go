package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/config"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/sirupsen/logrus"
)

// Source - однократно читаемый источник начальных инцидентов
type Source interface {
	Load(ctx context.Context) ([]SeedRecord, error)
}

// SeedRecord - запись в формате начального набора данных
type SeedRecord struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Severity    string   `json:"severity"`
	Image       string   `json:"image,omitempty"`
	Time        string   `json:"time,omitempty"`
	Verified    uint     `json:"verified,omitempty"`
	Flagged     uint     `json:"flagged,omitempty"`
	Submitted   bool     `json:"submitted,omitempty"`
}

// Ограничение размера начального набора данных
const maxSeedBytes = 10 << 20

type kind int

const (
	kindFile kind = iota
	kindHTTP
	kindS3
	kindPostgres
)

// detectKind определяет тип источника по схеме адреса; без схемы - путь к файлу
func detectKind(raw string) kind {
	u, err := url.Parse(raw)
	if err != nil {
		return kindFile
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return kindHTTP
	case "s3":
		return kindS3
	case "postgres", "postgresql":
		return kindPostgres
	default:
		return kindFile
	}
}

// Open создает источник по адресу из конфигурации
func Open(ctx context.Context, cfg *config.Config) (Source, error) {
	raw := strings.TrimSpace(cfg.DataSource)
	if raw == "" {
		return nil, errors.New("DATA_SOURCE is empty")
	}

	switch detectKind(raw) {
	case kindHTTP:
		return NewHTTPSource(raw, cfg.DataSourceTimeout), nil
	case kindS3:
		src, err := OpenS3Source(ctx, raw, cfg)
		if err != nil {
			return nil, err
		}
		return src, nil
	case kindPostgres:
		return NewPostgresSource(raw), nil
	default:
		return NewFileSource(strings.TrimPrefix(raw, "file://")), nil
	}
}

// LoadOrEmpty читает источник и превращает записи в инциденты.
// Любая ошибка источника логируется и дает пустую коллекцию.
func LoadOrEmpty(ctx context.Context, src Source, logger *logrus.Logger) []*models.Incident {
	log := logger.WithField("component", "source")
	if src == nil {
		log.WithError(models.ErrDataSourceUnavailable).Warn("No data source configured, starting empty")
		return []*models.Incident{}
	}

	records, err := src.Load(ctx)
	if err != nil {
		log.WithError(fmt.Errorf("%w: %w", models.ErrDataSourceUnavailable, err)).
			Warn("Could not load initial incidents, starting empty")
		return []*models.Incident{}
	}

	incidents := ToIncidents(records, logger)
	log.WithField("count", len(incidents)).Info("Initial incidents loaded")
	return incidents
}

// ToIncidents присваивает записям id и отбрасывает записи с неизвестным уровнем
func ToIncidents(records []SeedRecord, logger *logrus.Logger) []*models.Incident {
	incidents := make([]*models.Incident, 0, len(records))
	for i, rec := range records {
		severity, err := models.ParseSeverity(rec.Severity)
		if err != nil {
			logger.WithError(err).WithField("position", i).Warn("Skipping seed record with invalid severity")
			continue
		}

		title := strings.TrimSpace(rec.Title)
		if title == "" {
			title = "Untitled"
		}

		incidents = append(incidents, &models.Incident{
			ID:          uuid.New(),
			Title:       title,
			Description: rec.Description,
			Location:    rec.Location,
			Lat:         rec.Lat,
			Lng:         rec.Lng,
			Severity:    severity,
			Image:       rec.Image,
			Time:        rec.Time,
			Verified:    rec.Verified,
			Flagged:     rec.Flagged,
			Submitted:   rec.Submitted,
		})
	}
	return incidents
}

func decodeRecords(body []byte) ([]SeedRecord, error) {
	var records []SeedRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to decode seed incidents: %w", err)
	}
	return records, nil
}

func decodeBody(r io.Reader) ([]SeedRecord, error) {
	body, err := io.ReadAll(io.LimitReader(r, maxSeedBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read seed incidents: %w", err)
	}
	return decodeRecords(body)
}
