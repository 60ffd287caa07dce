// Package services — ClubService: kulüp iş mantığı.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

// ClubService, kulüp işlemleri interface'i.
// Kulüpler oluşturulduktan sonra değiştirilemez — update/delete yok.
type ClubService interface {
	Create(ctx context.Context, req *models.CreateClubRequest) (*models.Club, error)
	List(ctx context.Context) ([]models.Club, error)
	// GetDetail, kulübü etkinlikleri ve duyuruları ile birlikte döner.
	GetDetail(ctx context.Context, clubID string) (*models.ClubDetail, error)
}

type clubService struct {
	clubRepo         repository.ClubRepository
	eventRepo        repository.EventRepository
	announcementRepo repository.AnnouncementRepository
}

// NewClubService, constructor.
func NewClubService(
	clubRepo repository.ClubRepository,
	eventRepo repository.EventRepository,
	announcementRepo repository.AnnouncementRepository,
) ClubService {
	return &clubService{
		clubRepo:         clubRepo,
		eventRepo:        eventRepo,
		announcementRepo: announcementRepo,
	}
}

func (s *clubService) Create(ctx context.Context, req *models.CreateClubRequest) (*models.Club, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	club := &models.Club{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}

	return club, nil
}

func (s *clubService) List(ctx context.Context) ([]models.Club, error) {
	clubs, err := s.clubRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if clubs == nil {
		clubs = []models.Club{}
	}
	return clubs, nil
}

// GetDetail, kulüp + path-scoped etkinlik/duyuru listeleri.
//
// Yeni kulüpte events ve announcements BOŞ ARRAY olarak döner, null değil —
// frontend iterate edebilmeli. Go'da nil slice JSON'da null olur, bu yüzden
// boş slice'a normalize edilir.
func (s *clubService) GetDetail(ctx context.Context, clubID string) (*models.ClubDetail, error) {
	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: Club not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	events, err := s.eventRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}

	announcements, err := s.announcementRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}

	return &models.ClubDetail{
		ID:            club.ID,
		Name:          club.Name,
		Description:   club.Description,
		Events:        events,
		Announcements: announcements,
	}, nil
}
