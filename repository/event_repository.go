package repository

import (
	"context"

	"github.com/akinalp/teenspace/models"
)

// EventRepository, etkinlik veritabanı işlemleri için interface.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetAll(ctx context.Context) ([]models.Event, error)
	// GetByClubID, bir kulübün etkinliklerini döner — kulüp detay sayfası
	// için path-scoped filtre.
	GetByClubID(ctx context.Context, clubID string) ([]models.Event, error)
}
