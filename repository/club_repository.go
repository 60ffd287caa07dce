package repository

import (
	"context"

	"github.com/akinalp/teenspace/models"
)

// ClubRepository, kulüp veritabanı işlemleri için interface.
// Kulüpler oluşturulduktan sonra değiştirilmez ve silinmez — API yüzeyinde
// update/delete verb'ü yoktur.
type ClubRepository interface {
	Create(ctx context.Context, club *models.Club) error
	GetByID(ctx context.Context, id string) (*models.Club, error)
	GetAll(ctx context.Context) ([]models.Club, error)
}
