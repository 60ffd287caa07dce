// Package models — Club domain modeli.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Club, bir kulübü temsil eder.
// API kontratı kulüp gövdesini {"id","name","description"} olarak sabitler —
// created_at sadece DB'de yaşar.
type Club struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"-"`
}

// CreateClubRequest, kulüp oluşturma isteği.
type CreateClubRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate, zorunlu alan kontrolü.
func (r *CreateClubRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return fmt.Errorf("description is required")
	}
	return nil
}

// ClubDetail, GET /clubs/{id} yanıtı: kulüp + etkinlikleri + duyuruları.
// Events ve Announcements hiç kayıt yokken de boş array olarak serialize
// edilir (null değil) — service katmanı slice'ları boş başlatır.
type ClubDetail struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Events        []Event        `json:"events"`
	Announcements []Announcement `json:"announcements"`
}

// MembershipRequest, kulübe katılma/ayrılma isteği.
//
// Dikkat: etkiyen kullanıcı token'dan DEĞİL, body'deki username'den bulunur.
// Orijinal API'nin belgelenmiş davranışı budur — token sadece endpoint'e
// erişimi korur.
type MembershipRequest struct {
	Username string `json:"username"`
}

// Validate, zorunlu alan kontrolü.
func (r *MembershipRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}
