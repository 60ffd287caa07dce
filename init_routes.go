// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar.
// Middleware chain helper'ı burada tanımlıdır:
//   - auth: cookie'deki JWT token doğrulaması
package main

import (
	"net/http"
	"time"

	"github.com/akinalp/teenspace/middleware"
	"github.com/akinalp/teenspace/pkg"
)

// initRoutes, auth middleware'ı kurar ve tüm endpoint'leri mux'a bağlar.
//
// Route sıralama kuralı: Literal path'ler parametrik path'lerden ÖNCE
// tanımlanmalı. Go 1.22 router'ı "POST /clubs/{id}/leave" gibi daha
// spesifik pattern'leri zaten önceliklendirir ama okunabilirlik için
// sıralamayı koruyoruz.
//
// RefreshExpiring burada DEĞİL — tüm route'ları (public dahil) sarması
// gerektiği için main.go'da mux'ın dışına sarılır.
func initRoutes(mux *http.ServeMux, h *Handlers, authMw *middleware.AuthMiddleware) {
	// ─── Middleware Chain Helper ───
	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}

	// Index — karşılama mesajı. "GET /{$}" sadece kökü eşler,
	// "/" tüm eşleşmeyen path'leri de yutardı.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"index": "Welcome to the Teen Space API"})
	})

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		pkg.JSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "teenspace"})
	})

	// Auth — public endpoint'ler (token gerekmez)
	mux.HandleFunc("POST /register", h.Auth.Register)
	mux.HandleFunc("POST /login", h.Auth.Login)

	// Auth — protected endpoint'ler
	mux.Handle("GET /protected", auth(h.Auth.Protected))
	mux.Handle("GET /checksession", auth(h.Auth.CheckSession))
	mux.Handle("DELETE /logout", auth(h.Auth.Logout))

	// Clubs — okuma herkese açık, yazma token gerektirir
	mux.HandleFunc("GET /clubs", h.Club.List)
	mux.Handle("POST /clubs", auth(h.Club.Create))
	mux.HandleFunc("GET /clubs/{id}", h.Club.Get)

	// Memberships — katılan/ayrılan kullanıcı request body'den çözülür
	mux.Handle("POST /api/clubs/{id}", auth(h.Club.Join))
	mux.Handle("POST /clubs/{id}/leave", auth(h.Club.Leave))

	// Events
	mux.HandleFunc("GET /events", h.Event.List)
	mux.Handle("POST /events", auth(h.Event.Create))

	// Announcements
	mux.HandleFunc("GET /announcements", h.Announcement.List)
	mux.Handle("POST /announcements", auth(h.Announcement.Create))
	mux.HandleFunc("GET /club/{id}/announcements", h.Announcement.ListByClub)
}

// refreshWindowDuration, dakika cinsinden config değerini Duration'a çevirir.
func refreshWindowDuration(minutes int) time.Duration {
	return time.Duration(minutes) * time.Minute
}
