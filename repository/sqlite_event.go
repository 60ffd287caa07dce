package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/teenspace/database"
	"github.com/akinalp/teenspace/models"
)

// sqliteEventRepo, EventRepository interface'inin SQLite implementasyonu.
//
// Tarih kolonu TEXT olarak 'YYYY-MM-DD' tutar — models.Date string'e
// çevrilerek yazılır, okurken ParseDate ile geri çevrilir.
type sqliteEventRepo struct {
	db database.TxQuerier
}

// NewSQLiteEventRepo, constructor.
func NewSQLiteEventRepo(db database.TxQuerier) EventRepository {
	return &sqliteEventRepo{db: db}
}

func (r *sqliteEventRepo) Create(ctx context.Context, event *models.Event) error {
	event.ID = uuid.NewString()

	query := `
		INSERT INTO events (id, name, date, club_id, user_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		event.ID,
		event.Name,
		event.Date.String(),
		event.ClubID,
		event.UserID,
	).Scan(&event.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *sqliteEventRepo) GetAll(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, name, date, club_id, user_id, created_at
		FROM events ORDER BY date`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *sqliteEventRepo) GetByClubID(ctx context.Context, clubID string) ([]models.Event, error) {
	query := `
		SELECT id, name, date, club_id, user_id, created_at
		FROM events WHERE club_id = ? ORDER BY date`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get events by club: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// scanEvents, event satırlarını iterasyonla okur.
// Date TEXT kolonundan string olarak gelir, models.Date'e parse edilir.
func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var e models.Event
		var date string
		if err := rows.Scan(&e.ID, &e.Name, &date, &e.ClubID, &e.UserID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}

		parsed, err := models.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("corrupt event date in store: %w", err)
		}
		e.Date = parsed

		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}
