// Package main — Service katmanı başlatma.
//
// initServices, tüm service implementasyonlarını repository'lerden oluşturur.
// Service'ler birbirine değil repository interface'lerine bağımlıdır.
package main

import (
	"github.com/akinalp/teenspace/config"
	"github.com/akinalp/teenspace/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth         services.AuthService
	Club         services.ClubService
	Event        services.EventService
	Announcement services.AnnouncementService
	Membership   services.MembershipService
}

// initServices, repository container'ından service katmanını kurar.
func initServices(repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:         services.NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Club:         services.NewClubService(repos.Club, repos.Event, repos.Announcement),
		Event:        services.NewEventService(repos.Event, repos.User, repos.Club),
		Announcement: services.NewAnnouncementService(repos.Announcement, repos.Club, repos.User),
		Membership:   services.NewMembershipService(repos.Membership, repos.User, repos.Club),
	}
}
