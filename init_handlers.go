// Package main — Handler katmanı başlatma.
package main

import (
	"time"

	"github.com/akinalp/teenspace/handlers"
	"github.com/akinalp/teenspace/pkg/ratelimit"
)

// Handlers, tüm HTTP handler instance'larını tutan container struct.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Club         *handlers.ClubHandler
	Event        *handlers.EventHandler
	Announcement *handlers.AnnouncementHandler

	// loginLimiter'ın cleanup goroutine'i var — shutdown'da durdurulması
	// için referansı burada tutuyoruz.
	loginLimiter *ratelimit.Limiter
}

// initHandlers, service container'ından handler katmanını kurar.
//
// Login rate limiter: IP başına 5 dakikada 10 deneme. Başarılı login
// sayacı sıfırladığı için normal kullanıcı limite takılmaz.
func initHandlers(svcs *Services) *Handlers {
	loginLimiter := ratelimit.New(10, 5*time.Minute)

	return &Handlers{
		Auth:         handlers.NewAuthHandler(svcs.Auth, loginLimiter),
		Club:         handlers.NewClubHandler(svcs.Club, svcs.Membership),
		Event:        handlers.NewEventHandler(svcs.Event),
		Announcement: handlers.NewAnnouncementHandler(svcs.Announcement),
		loginLimiter: loginLimiter,
	}
}

// Close, handler katmanının arkaplan kaynaklarını serbest bırakır.
func (h *Handlers) Close() {
	h.loginLimiter.Stop()
}
