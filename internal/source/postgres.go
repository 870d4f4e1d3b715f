package source

import (
	"context"
	"fmt"

	"github.com/shenikar/incident_board/pkg/postgres"
)

// Таблица начальных данных читается только один раз при старте:
//
//	CREATE TABLE seed_incidents (
//		position    INT PRIMARY KEY,
//		title       TEXT NOT NULL,
//		description TEXT NOT NULL DEFAULT '',
//		location    TEXT,
//		lat         DOUBLE PRECISION,
//		lng         DOUBLE PRECISION,
//		severity    TEXT NOT NULL,
//		image       TEXT,
//		time        TEXT,
//		verified    INT NOT NULL DEFAULT 0,
//		flagged     INT NOT NULL DEFAULT 0,
//		submitted   BOOLEAN NOT NULL DEFAULT FALSE
//	);
const seedQuery = `
	SELECT
		title,
		description,
		COALESCE(location, ''),
		lat,
		lng,
		severity,
		COALESCE(image, ''),
		COALESCE(time, ''),
		verified,
		flagged,
		submitted
	FROM seed_incidents
	ORDER BY position;
`

// PostgresSource читает начальные инциденты из таблицы seed_incidents
type PostgresSource struct {
	databaseURL string
}

func NewPostgresSource(databaseURL string) *PostgresSource {
	return &PostgresSource{databaseURL: databaseURL}
}

func (s *PostgresSource) Load(ctx context.Context) ([]SeedRecord, error) {
	dbpool, err := postgres.NewPostgresDB(ctx, s.databaseURL)
	if err != nil {
		return nil, err
	}
	defer dbpool.Close()

	rows, err := dbpool.Query(ctx, seedQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query seed incidents: %w", err)
	}
	defer rows.Close()

	records := make([]SeedRecord, 0)
	for rows.Next() {
		var (
			rec               SeedRecord
			verified, flagged int64
		)
		err := rows.Scan(
			&rec.Title,
			&rec.Description,
			&rec.Location,
			&rec.Lat,
			&rec.Lng,
			&rec.Severity,
			&rec.Image,
			&rec.Time,
			&verified,
			&flagged,
			&rec.Submitted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan seed incident row: %w", err)
		}
		rec.Verified = nonNegative(verified)
		rec.Flagged = nonNegative(flagged)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error seed list iteration: %w", err)
	}
	return records, nil
}

func nonNegative(v int64) uint {
	if v < 0 {
		return 0
	}
	return uint(v)
}
