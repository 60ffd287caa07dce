package repository

import (
	"context"
	"fmt"

	"github.com/akinalp/teenspace/database"
	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
)

// sqliteMembershipRepo, MembershipRepository'nin SQLite implementasyonu.
type sqliteMembershipRepo struct {
	db database.TxQuerier
}

// NewSQLiteMembershipRepo, constructor.
func NewSQLiteMembershipRepo(db database.TxQuerier) MembershipRepository {
	return &sqliteMembershipRepo{db: db}
}

func (r *sqliteMembershipRepo) Create(ctx context.Context, membership *models.Membership) error {
	query := `
		INSERT INTO memberships (user_id, club_id)
		VALUES (?, ?)
		RETURNING joined_at`

	err := r.db.QueryRowContext(ctx, query,
		membership.UserID,
		membership.ClubID,
	).Scan(&membership.JoinedAt)

	if err != nil {
		// Composite PK violation → kullanıcı bu kulübe zaten üye
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user is already a member of this club", pkg.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create membership: %w", err)
	}

	return nil
}

func (r *sqliteMembershipRepo) Delete(ctx context.Context, userID, clubID string) error {
	query := `DELETE FROM memberships WHERE user_id = ? AND club_id = ?`

	result, err := r.db.ExecContext(ctx, query, userID, clubID)
	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	// RowsAffected 0 ise üyelik yoktu
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: membership not found", pkg.ErrNotFound)
	}

	return nil
}

func (r *sqliteMembershipRepo) GetByClubID(ctx context.Context, clubID string) ([]models.Membership, error) {
	query := `
		SELECT user_id, club_id, joined_at
		FROM memberships WHERE club_id = ? ORDER BY joined_at`

	rows, err := r.db.QueryContext(ctx, query, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships by club: %w", err)
	}
	defer rows.Close()

	var memberships []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.UserID, &m.ClubID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		memberships = append(memberships, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}

	return memberships, nil
}
