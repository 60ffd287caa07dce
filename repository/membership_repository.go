package repository

import (
	"context"

	"github.com/akinalp/teenspace/models"
)

// MembershipRepository, user ↔ club üyelik işlemleri için interface.
//
// Üyelik, API yüzeyinde silinebilen tek ilişkidir (leave). Composite PK
// (user_id, club_id) aynı üyeliğin ikinci kez INSERT edilmesini DB
// seviyesinde engeller — Create bu durumda ErrAlreadyExists döner.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	Delete(ctx context.Context, userID, clubID string) error
	GetByClubID(ctx context.Context, clubID string) ([]models.Membership, error)
}
