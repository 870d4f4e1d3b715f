package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/config"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/projection"
	"github.com/shenikar/incident_board/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks

// IncidentRepository определяет контракт хранилища инцидентов
type IncidentRepository interface {
	Load(ctx context.Context, incidents []*models.Incident)
	InsertFront(ctx context.Context, incident *models.Incident)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	IncrementVerified(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	IncrementFlagged(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	Remove(ctx context.Context, id uuid.UUID) error
	All(ctx context.Context) []*models.Incident
	Filter(ctx context.Context, filter models.SeverityFilter) []*models.Incident
}

// IncidentService определяет контракт доски: изменения коллекции и синхронизацию представлений
type IncidentService interface {
	LoadIncidents(ctx context.Context, incidents []*models.Incident)
	SubmitIncident(ctx context.Context, form models.SubmissionForm) (*models.Incident, error)
	VerifyIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	FlagIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.SeverityFilter) []*models.Incident
	SetFilter(ctx context.Context, filter models.SeverityFilter)
	NotifyMutation(ctx context.Context, action webhook.Action, incidentID uuid.UUID)
	Board(ctx context.Context) projection.Board
}

type incidentService struct {
	// mu упорядочивает пары "изменение + перерисовка", чтобы представления
	// всегда соответствовали последнему изменению
	mu         sync.Mutex
	repo       IncidentRepository
	engine     *projection.Engine
	submission *Submission
	snapshot   *Snapshot
	renderers  []Renderer
	publisher  webhook.WebhookPublisher
	logger     *logrus.Logger
	cfg        *config.Config
	filter     models.SeverityFilter
}

func NewIncidentService(
	repo IncidentRepository,
	engine *projection.Engine,
	logger *logrus.Logger,
	cfg *config.Config,
	publisher webhook.WebhookPublisher,
	renderers ...Renderer,
) IncidentService {
	if engine == nil {
		engine = projection.NewEngine(nil)
	}
	if publisher == nil {
		publisher = webhook.NopPublisher{}
	}

	filter, err := models.ParseSeverityFilter(cfg.DefaultFilter)
	if err != nil {
		logger.WithError(err).Warn("Invalid default filter, falling back to all")
		filter = models.FilterAll
	}

	snapshot := NewSnapshot()
	snapshot.setFilter(filter)

	return &incidentService{
		repo:       repo,
		engine:     engine,
		submission: NewSubmission(engine.Placeholder),
		snapshot:   snapshot,
		renderers:  append([]Renderer{snapshot}, renderers...),
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
		filter:     filter,
	}
}

// LoadIncidents заменяет коллекцию начальными данными и перерисовывает доску
func (s *incidentService) LoadIncidents(ctx context.Context, incidents []*models.Incident) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "LoadIncidents",
		"count":   len(incidents),
	})

	s.mu.Lock()
	s.repo.Load(ctx, incidents)
	event := s.renderLocked(ctx, webhook.ActionLoad, uuid.Nil)
	s.mu.Unlock()

	s.publish(ctx, event)
	log.Info("Incidents loaded")
}

// SubmitIncident проверяет форму, добавляет запись в начало коллекции и перерисовывает доску
func (s *incidentService) SubmitIncident(ctx context.Context, form models.SubmissionForm) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SubmitIncident",
		"title":   form.Title,
	})
	log.Info("Attempting to submit a new incident")

	incident, err := s.submission.Normalize(form)
	if err != nil {
		log.WithError(err).Warn("Submission rejected")
		return nil, fmt.Errorf("service: could not submit incident: %w", err)
	}

	s.mu.Lock()
	s.repo.InsertFront(ctx, incident)
	event := s.renderLocked(ctx, webhook.ActionSubmit, incident.ID)
	s.mu.Unlock()

	s.publish(ctx, event)
	log.WithField("incident_id", incident.ID).Info("Incident submitted successfully")
	return incident, nil
}

// VerifyIncident увеличивает счетчик подтверждений
func (s *incidentService) VerifyIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return s.increment(ctx, "VerifyIncident", webhook.ActionVerify, id, s.repo.IncrementVerified)
}

// FlagIncident увеличивает счетчик жалоб
func (s *incidentService) FlagIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	return s.increment(ctx, "FlagIncident", webhook.ActionFlag, id, s.repo.IncrementFlagged)
}

func (s *incidentService) increment(
	ctx context.Context,
	method string,
	action webhook.Action,
	id uuid.UUID,
	inc func(context.Context, uuid.UUID) (*models.Incident, error),
) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      method,
		"incident_id": id,
	})

	s.mu.Lock()
	incident, err := inc(ctx, id)
	if err != nil {
		s.mu.Unlock()
		log.WithError(err).Warn("Attempted to moderate a non-existent incident")
		return nil, fmt.Errorf("service: could not %s incident: %w", action, err)
	}
	event := s.renderLocked(ctx, action, id)
	s.mu.Unlock()

	s.publish(ctx, event)
	log.WithFields(logrus.Fields{
		"verified": incident.Verified,
		"flagged":  incident.Flagged,
	}).Info("Incident moderated successfully")
	return incident, nil
}

// DeleteIncident удаляет инцидент
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	s.mu.Lock()
	if err := s.repo.Remove(ctx, id); err != nil {
		s.mu.Unlock()
		log.WithError(err).Warn("Attempted to delete a non-existent incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	event := s.renderLocked(ctx, webhook.ActionDelete, id)
	s.mu.Unlock()

	s.publish(ctx, event)
	log.Info("Incident deleted successfully")
	return nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает записи в порядке отображения, отфильтрованные по уровню
func (s *incidentService) ListIncidents(ctx context.Context, filter models.SeverityFilter) []*models.Incident {
	return s.repo.Filter(ctx, filter)
}

// SetFilter запоминает активный фильтр и перерисовывает ленту и карту.
// Тикер, модерация и счетчик от фильтра не зависят.
func (s *incidentService) SetFilter(ctx context.Context, filter models.SeverityFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filter = filter
	s.snapshot.setFilter(filter)

	filtered := s.repo.Filter(ctx, filter)
	feed := s.engine.Feed(filtered)
	markers := s.engine.Markers(filtered)
	for _, r := range s.renderers {
		r.RenderFeed(feed)
		r.RenderMarkers(markers)
	}

	s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "SetFilter",
		"filter":  filter,
		"count":   len(filtered),
	}).Debug("Filter applied")
}

// NotifyMutation пересчитывает все представления по текущему состоянию хранилища
func (s *incidentService) NotifyMutation(ctx context.Context, action webhook.Action, incidentID uuid.UUID) {
	s.mu.Lock()
	event := s.renderLocked(ctx, action, incidentID)
	s.mu.Unlock()

	s.publish(ctx, event)
}

// Board возвращает последний отрисованный снимок
func (s *incidentService) Board(_ context.Context) projection.Board {
	return s.snapshot.View()
}

// renderLocked вызывается под s.mu: перерисовывает все представления
// и возвращает событие для публикации после снятия блокировки
func (s *incidentService) renderLocked(ctx context.Context, action webhook.Action, incidentID uuid.UUID) webhook.BoardEvent {
	all := s.repo.All(ctx)
	filtered := all
	if s.filter != models.FilterAll {
		filtered = s.repo.Filter(ctx, s.filter)
	}

	ticker := s.engine.Ticker(all, s.cfg.TickerLimit)
	feed := s.engine.Feed(filtered)
	moderation := s.engine.Moderation(all)
	markers := s.engine.Markers(filtered)
	summary := s.engine.Summary(all)

	for _, r := range s.renderers {
		r.RenderTicker(ticker)
		r.RenderFeed(feed)
		r.RenderModeration(moderation)
		r.RenderMarkers(markers)
		r.RenderSummary(summary)
	}

	return webhook.BoardEvent{
		Action:     action,
		IncidentID: incidentID,
		Filter:     s.filter,
		Summary:    summary,
		Timestamp:  time.Now().UTC(),
	}
}

// publish вызывается без s.mu: медленный приемник не задерживает другие изменения
func (s *incidentService) publish(ctx context.Context, event webhook.BoardEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{
			"service": "incident",
			"action":  event.Action,
		}).Warn("Failed to publish board event")
	}
}
