// Package models — Event domain modeli ve takvim günü (Date) tipi.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout, etkinlik tarihlerinin wire formatı.
// Orijinal API takvim günü kullanır, saat hassasiyeti yoktur.
const DateLayout = "2006-01-02"

// Date, saat bilgisi olmayan takvim günü. time.Time'ı sarar ama JSON'da
// her zaman "YYYY-MM-DD" olarak görünür — time.Time'ın RFC3339 çıktısı
// API kontratına uymaz.
type Date struct {
	time.Time
}

// ParseDate, "YYYY-MM-DD" string'ini Date'e çevirir.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// MarshalJSON, Date'i "YYYY-MM-DD" olarak serialize eder.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON, "YYYY-MM-DD" string'ini parse eder.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// String, DB'ye yazılacak değeri döner.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Event, bir kulüp etkinliğini temsil eder.
// Liste ve detay yanıtları {"id","name","date"} içerir; club_id ve user_id
// foreign key olarak DB'de yaşar, response'a dahil edilmez.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      Date      `json:"date"`
	ClubID    string    `json:"-"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// CreateEventRequest, etkinlik oluşturma isteği.
// Username body'den gelir (etkiyen kullanıcı token'dan bağımsızdır) ve
// etkinliğin yaratıcısı olarak çözülür.
type CreateEventRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	ClubID   string `json:"club_id"`
}

// Validate, zorunlu alan kontrolü. Date formatı service katmanında
// ParseDate ile doğrulanır.
func (r *CreateEventRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(r.Date) == "" {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(r.ClubID) == "" {
		return fmt.Errorf("club_id is required")
	}
	return nil
}
