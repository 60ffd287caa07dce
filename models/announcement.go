// Package models — Announcement domain modeli.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Announcement, bir kulüp duyurusunu temsil eder.
// Yanıt gövdeleri {"id","content"} içerir.
type Announcement struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	ClubID    string    `json:"-"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// CreateAnnouncementRequest, duyuru oluşturma isteği.
// İçerik alanının wire adı "announcement"tır (API kontratı), yazar
// user_id olarak body'den gelir — token'dan değil.
type CreateAnnouncementRequest struct {
	Announcement string `json:"announcement"`
	ClubID       string `json:"club_id"`
	UserID       string `json:"user_id"`
}

// Validate, zorunlu alan kontrolü.
func (r *CreateAnnouncementRequest) Validate() error {
	if strings.TrimSpace(r.Announcement) == "" {
		return fmt.Errorf("announcement is required")
	}
	if strings.TrimSpace(r.ClubID) == "" {
		return fmt.Errorf("club_id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("user_id is required")
	}
	return nil
}
