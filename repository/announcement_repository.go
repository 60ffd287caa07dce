package repository

import (
	"context"

	"github.com/akinalp/teenspace/models"
)

// AnnouncementRepository, duyuru veritabanı işlemleri için interface.
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *models.Announcement) error
	GetAll(ctx context.Context) ([]models.Announcement, error)
	GetByClubID(ctx context.Context, clubID string) ([]models.Announcement, error)
}
