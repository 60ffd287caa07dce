// Package services — EventService: etkinlik iş mantığı.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

// EventService, etkinlik işlemleri interface'i.
type EventService interface {
	// Create, yeni etkinlik oluşturur. Yaratıcı kullanıcı body'deki
	// username'den çözülür — token'daki kimlikten DEĞİL (API kontratı).
	Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
}

type eventService struct {
	eventRepo repository.EventRepository
	userRepo  repository.UserRepository
	clubRepo  repository.ClubRepository
}

// NewEventService, constructor.
func NewEventService(
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
) EventService {
	return &eventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		clubRepo:  clubRepo,
	}
}

func (s *eventService) Create(ctx context.Context, req *models.CreateEventRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", pkg.ErrBadRequest, err.Error())
	}

	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: User not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	// FK ihlalini generic 500 olarak görmek yerine kulübü burada kontrol et
	if _, err := s.clubRepo.GetByID(ctx, req.ClubID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: Club not found", pkg.ErrNotFound)
		}
		return nil, err
	}

	event := &models.Event{
		Name:   req.Name,
		Date:   date,
		ClubID: req.ClubID,
		UserID: user.ID,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}
