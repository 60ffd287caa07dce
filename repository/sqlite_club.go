package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/akinalp/teenspace/database"
	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
)

// sqliteClubRepo, ClubRepository interface'inin SQLite implementasyonu.
type sqliteClubRepo struct {
	db database.TxQuerier
}

// NewSQLiteClubRepo, constructor.
func NewSQLiteClubRepo(db database.TxQuerier) ClubRepository {
	return &sqliteClubRepo{db: db}
}

func (r *sqliteClubRepo) Create(ctx context.Context, club *models.Club) error {
	club.ID = uuid.NewString()

	query := `
		INSERT INTO clubs (id, name, description)
		VALUES (?, ?, ?)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		club.ID,
		club.Name,
		club.Description,
	).Scan(&club.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create club: %w", err)
	}

	return nil
}

func (r *sqliteClubRepo) GetByID(ctx context.Context, id string) (*models.Club, error) {
	query := `SELECT id, name, description, created_at FROM clubs WHERE id = ?`

	club := &models.Club{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&club.ID, &club.Name, &club.Description, &club.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get club by id: %w", err)
	}

	return club, nil
}

func (r *sqliteClubRepo) GetAll(ctx context.Context) ([]models.Club, error) {
	query := `SELECT id, name, description, created_at FROM clubs ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all clubs: %w", err)
	}
	defer rows.Close()

	var clubs []models.Club
	for rows.Next() {
		var c models.Club
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan club row: %w", err)
		}
		clubs = append(clubs, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club rows: %w", err)
	}

	return clubs, nil
}
