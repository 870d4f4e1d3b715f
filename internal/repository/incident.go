package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/shenikar/incident_board/internal/service"
)

// IncidentRepository хранит упорядоченную коллекцию инцидентов в памяти процесса.
// Порядок среза - порядок отображения ленты, поиск всегда идет по id, а не по позиции.
type IncidentRepository struct {
	mu        sync.RWMutex
	incidents []*models.Incident
}

func NewIncidentRepository() service.IncidentRepository {
	return &IncidentRepository{
		incidents: make([]*models.Incident, 0),
	}
}

// Load заменяет коллекцию целиком. nil трактуется как пустая коллекция.
func (r *IncidentRepository) Load(_ context.Context, incidents []*models.Incident) {
	loaded := make([]*models.Incident, 0, len(incidents))
	for _, incident := range incidents {
		if incident == nil {
			continue
		}
		loaded = append(loaded, incident.Clone())
	}

	r.mu.Lock()
	r.incidents = loaded
	r.mu.Unlock()
}

// InsertFront добавляет запись в начало коллекции без валидации
func (r *IncidentRepository) InsertFront(_ context.Context, incident *models.Incident) {
	r.mu.Lock()
	defer r.mu.Unlock()

	incidents := make([]*models.Incident, 0, len(r.incidents)+1)
	incidents = append(incidents, incident.Clone())
	r.incidents = append(incidents, r.incidents...)
}

// GetByID возвращает копию инцидента по его UUID
func (r *IncidentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("incident with id %s: %w", id, models.ErrIncidentNotFound)
	}
	return r.incidents[idx].Clone(), nil
}

// IncrementVerified увеличивает счетчик подтверждений на единицу
func (r *IncidentRepository) IncrementVerified(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	return r.update(id, func(incident *models.Incident) {
		incident.Verified++
	})
}

// IncrementFlagged увеличивает счетчик жалоб на единицу
func (r *IncidentRepository) IncrementFlagged(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	return r.update(id, func(incident *models.Incident) {
		incident.Flagged++
	})
}

// Remove удаляет инцидент, сохраняя порядок остальных записей
func (r *IncidentRepository) Remove(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("incident with id %s not found for remove: %w", id, models.ErrIncidentNotFound)
	}

	incidents := make([]*models.Incident, 0, len(r.incidents)-1)
	incidents = append(incidents, r.incidents[:idx]...)
	r.incidents = append(incidents, r.incidents[idx+1:]...)
	return nil
}

// All возвращает копию всей коллекции в порядке отображения
func (r *IncidentRepository) All(ctx context.Context) []*models.Incident {
	return r.Filter(ctx, models.FilterAll)
}

// Filter возвращает подпоследовательность записей, проходящих фильтр по уровню
func (r *IncidentRepository) Filter(_ context.Context, filter models.SeverityFilter) []*models.Incident {
	r.mu.RLock()
	defer r.mu.RUnlock()

	incidents := make([]*models.Incident, 0, len(r.incidents))
	for _, incident := range r.incidents {
		if filter.Match(incident.Severity) {
			incidents = append(incidents, incident.Clone())
		}
	}
	return incidents
}

func (r *IncidentRepository) update(id uuid.UUID, mutate func(*models.Incident)) (*models.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("incident with id %s not found for update: %w", id, models.ErrIncidentNotFound)
	}
	mutate(r.incidents[idx])
	return r.incidents[idx].Clone(), nil
}

// indexOf вызывается под блокировкой
func (r *IncidentRepository) indexOf(id uuid.UUID) int {
	for i, incident := range r.incidents {
		if incident.ID == id {
			return i
		}
	}
	return -1
}
