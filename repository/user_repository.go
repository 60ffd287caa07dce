// Package repository, veritabanı erişim katmanını tanımlar.
//
// Repository Pattern: veritabanı işlemlerini (CRUD) soyutlayan katman.
// Service katmanı doğrudan SQL yazmaz — repository interface'i üzerinden
// çalışır.
//
// Neden interface?
// 1. Test: Mock repository yazarak DB olmadan test edebilirsin
// 2. Esneklik: SQLite'tan başka bir store'a geçiş sadece yeni implementasyon
// 3. Dependency Inversion: Service, concrete struct'a değil interface'e bağımlı
//
// Go'da interface "implicit"tır — bir struct, interface'deki tüm method'ları
// implement ediyorsa otomatik olarak o interface'i sağlar.
package repository

import (
	"context"

	"github.com/akinalp/teenspace/models"
)

// UserRepository, kullanıcı veritabanı işlemleri için interface.
//
// context.Context, iptal sinyali ve deadline taşır — client bağlantıyı
// koparırsa devam eden DB sorgusu da durur.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
}
