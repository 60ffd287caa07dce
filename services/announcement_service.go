// Package services — AnnouncementService: duyuru iş mantığı.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

// AnnouncementService, duyuru işlemleri interface'i.
type AnnouncementService interface {
	// Create, yeni duyuru oluşturur. Yazar, body'deki user_id'dir —
	// token'daki kimlik değil (API kontratı).
	Create(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error)
	List(ctx context.Context) ([]models.Announcement, error)
	ListByClub(ctx context.Context, clubID string) ([]models.Announcement, error)
}

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
	clubRepo         repository.ClubRepository
	userRepo         repository.UserRepository
}

// NewAnnouncementService, constructor.
func NewAnnouncementService(
	announcementRepo repository.AnnouncementRepository,
	clubRepo repository.ClubRepository,
	userRepo repository.UserRepository,
) AnnouncementService {
	return &announcementService{
		announcementRepo: announcementRepo,
		clubRepo:         clubRepo,
		userRepo:         userRepo,
	}
}

func (s *announcementService) Create(ctx context.Context, req *models.CreateAnnouncementRequest) (*models.Announcement, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	if _, err := s.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: Club not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: User not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	announcement := &models.Announcement{
		Content: req.Announcement,
		ClubID:  req.ClubID,
		UserID:  req.UserID,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, err
	}

	return announcement, nil
}

func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}

// ListByClub, bir kulübün duyurularını döner.
// Kulüp var mı kontrol edilmez — orijinal API bilinmeyen kulüp için
// boş liste döner, 404 değil.
func (s *announcementService) ListByClub(ctx context.Context, clubID string) ([]models.Announcement, error) {
	announcements, err := s.announcementRepo.GetByClubID(ctx, clubID)
	if err != nil {
		return nil, err
	}
	if announcements == nil {
		announcements = []models.Announcement{}
	}
	return announcements, nil
}
