// Package services — MembershipService: kulüp üyelik iş mantığı.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
)

// MembershipService, kulübe katılma/ayrılma interface'i.
//
// Etkiyen kullanıcı her iki operasyonda da body'deki username'den çözülür,
// token'daki kimlikten değil — orijinal API'nin belgelenmiş davranışı.
type MembershipService interface {
	Join(ctx context.Context, clubID, username string) error
	Leave(ctx context.Context, clubID, username string) error
}

type membershipService struct {
	membershipRepo repository.MembershipRepository
	userRepo       repository.UserRepository
	clubRepo       repository.ClubRepository
}

// NewMembershipService, constructor.
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	userRepo repository.UserRepository,
	clubRepo repository.ClubRepository,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		userRepo:       userRepo,
		clubRepo:       clubRepo,
	}
}

// Join, kullanıcıyı kulübe üye yapar.
// Aynı üyeliğin ikinci kez kurulması composite PK'ya takılır ve
// ErrAlreadyExists olarak döner — üyelik satırı asla duplicate olmaz.
func (s *membershipService) Join(ctx context.Context, clubID, username string) error {
	user, club, err := s.resolve(ctx, clubID, username)
	if err != nil {
		return err
	}

	return s.membershipRepo.Create(ctx, &models.Membership{
		UserID: user.ID,
		ClubID: club.ID,
	})
}

// Leave, kullanıcının kulüp üyeliğini siler.
// Üyelik yoksa ErrNotFound döner.
func (s *membershipService) Leave(ctx context.Context, clubID, username string) error {
	user, club, err := s.resolve(ctx, clubID, username)
	if err != nil {
		return err
	}

	return s.membershipRepo.Delete(ctx, user.ID, club.ID)
}

// resolve, body'deki username'i ve path'teki club id'yi varlıklara çözer.
// İkisi de bulunamazsa 404 mesajları orijinal API ile aynıdır.
func (s *membershipService) resolve(ctx context.Context, clubID, username string) (*models.User, *models.Club, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: User not found", pkg.ErrNotFound)
		}
		return nil, nil, err
	}

	club, err := s.clubRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: Club not found", pkg.ErrNotFound)
		}
		return nil, nil, err
	}

	return user, club, nil
}
