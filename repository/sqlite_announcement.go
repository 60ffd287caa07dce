package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/teenspace/database"
	"github.com/akinalp/teenspace/models"
)

// sqliteAnnouncementRepo, AnnouncementRepository'nin SQLite implementasyonu.
type sqliteAnnouncementRepo struct {
	db database.TxQuerier
}

// NewSQLiteAnnouncementRepo, constructor.
func NewSQLiteAnnouncementRepo(db database.TxQuerier) AnnouncementRepository {
	return &sqliteAnnouncementRepo{db: db}
}

func (r *sqliteAnnouncementRepo) Create(ctx context.Context, announcement *models.Announcement) error {
	announcement.ID = uuid.NewString()

	query := `
		INSERT INTO announcements (id, content, club_id, user_id)
		VALUES (?, ?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		announcement.ID,
		announcement.Content,
		announcement.ClubID,
		announcement.UserID,
	).Scan(&announcement.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	return nil
}

func (r *sqliteAnnouncementRepo) GetAll(ctx context.Context) ([]models.Announcement, error) {
	query := `
		SELECT id, content, club_id, user_id, created_at
		FROM announcements ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all announcements: %w", err)
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

func (r *sqliteAnnouncementRepo) GetByClubID(ctx context.Context, clubID string) ([]models.Announcement, error) {
	query := `
		SELECT id, content, club_id, user_id, created_at
		FROM announcements WHERE club_id = ? ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements by club: %w", err)
	}
	defer rows.Close()

	return scanAnnouncements(rows)
}

func scanAnnouncements(rows *sql.Rows) ([]models.Announcement, error) {
	var announcements []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Content, &a.ClubID, &a.UserID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}
