package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/incident_board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIncidents() []*models.Incident {
	lat, lng := 10.0, 76.0
	return []*models.Incident{
		{ID: uuid.New(), Title: "first", Severity: models.SeverityCritical, Lat: &lat, Lng: &lng},
		{ID: uuid.New(), Title: "second", Severity: models.SeverityMild, Verified: 2},
		{ID: uuid.New(), Title: "third", Severity: models.SeverityCritical, Flagged: 1},
	}
}

func TestLoad_ReplacesCollectionAndCopiesInput(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()

	repo.Load(ctx, []*models.Incident{{ID: uuid.New(), Severity: models.SeverityMild}})
	repo.Load(ctx, append(seed, nil))

	all := repo.All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "first", all[0].Title)

	// Изменение исходных данных не затрагивает хранилище
	*seed[0].Lat = 0
	seed[1].Title = "changed"
	all = repo.All(ctx)
	assert.Equal(t, 10.0, *all[0].Lat)
	assert.Equal(t, "second", all[1].Title)
}

func TestLoad_Nil(t *testing.T) {
	repo := NewIncidentRepository()

	repo.Load(context.Background(), nil)

	assert.NotNil(t, repo.All(context.Background()))
	assert.Empty(t, repo.All(context.Background()))
}

func TestInsertFront(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	repo.Load(ctx, seedIncidents())
	fresh := &models.Incident{ID: uuid.New(), Title: "fresh", Severity: models.SeverityAverage}

	repo.InsertFront(ctx, fresh)

	all := repo.All(ctx)
	require.Len(t, all, 4)
	assert.Equal(t, fresh.ID, all[0].ID)
	assert.Equal(t, "first", all[1].Title)
}

func TestGetByID(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()
	repo.Load(ctx, seed)

	got, err := repo.GetByID(ctx, seed[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "third", got.Title)

	// Возвращается копия
	got.Title = "mutated"
	again, err := repo.GetByID(ctx, seed[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "third", again.Title)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestIncrementCounters(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()
	repo.Load(ctx, seed)

	for i := 0; i < 3; i++ {
		_, err := repo.IncrementVerified(ctx, seed[0].ID)
		require.NoError(t, err)
	}
	updated, err := repo.IncrementFlagged(ctx, seed[0].ID)
	require.NoError(t, err)

	assert.Equal(t, uint(3), updated.Verified)
	assert.Equal(t, uint(1), updated.Flagged)

	// Остальные записи не меняются
	other, err := repo.GetByID(ctx, seed[1].ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), other.Verified)
	assert.Equal(t, uint(0), other.Flagged)
}

func TestIncrement_NotFound(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	repo.Load(ctx, seedIncidents())

	_, err := repo.IncrementVerified(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)

	_, err = repo.IncrementFlagged(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrIncidentNotFound)
}

func TestRemove_PreservesIdentityAndOrder(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()
	repo.Load(ctx, seed)
	before := repo.All(ctx)

	require.NoError(t, repo.Remove(ctx, seed[0].ID))

	after := repo.All(ctx)
	require.Len(t, after, 2)
	assert.Equal(t, before[1], after[0])
	assert.Equal(t, before[2], after[1])

	// Повторное удаление - ошибка
	assert.ErrorIs(t, repo.Remove(ctx, seed[0].ID), models.ErrIncidentNotFound)
}

func TestFilter(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()
	repo.Load(ctx, seed)

	critical := repo.Filter(ctx, models.SeverityFilter(models.SeverityCritical))
	require.Len(t, critical, 2)
	assert.Equal(t, seed[0].ID, critical[0].ID)
	assert.Equal(t, seed[2].ID, critical[1].ID)

	assert.Len(t, repo.Filter(ctx, models.FilterAll), 3)
	assert.Empty(t, repo.Filter(ctx, models.SeverityFilter(models.SeverityAlltime)))
}

func TestConcurrentIncrements(t *testing.T) {
	repo := NewIncidentRepository()
	ctx := context.Background()
	seed := seedIncidents()
	repo.Load(ctx, seed)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = repo.IncrementVerified(ctx, seed[1].ID)
			_ = repo.All(ctx)
		}()
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, seed[1].ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2+workers), got.Verified)
}
