// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Middleware Pattern nedir?
// Her HTTP request, handler'a ulaşmadan önce bir veya daha fazla middleware'dan geçer.
// Middleware'lar zincir şeklinde çalışır: Refresh → Auth → Handler
//
// Go'da middleware bir fonksiyondur:
//   func(next http.Handler) http.Handler
//
// "next" parametresi zincirdeki bir sonraki handler'dır.
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Eğer hata varsa next'i çağırmaz → request burada durur.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/akinalp/teenspace/handlers"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/repository"
	"github.com/akinalp/teenspace/services"
)

// AuthMiddleware, cookie taşınan JWT token'ı doğrulayan middleware.
type AuthMiddleware struct {
	authService   services.AuthService
	userRepo      repository.UserRepository
	refreshWindow time.Duration
}

// NewAuthMiddleware, constructor.
// refreshWindow: token'ın bitimine bu süreden az kaldıysa RefreshExpiring
// yeni bir cookie üretir (sliding session).
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository, refreshWindow time.Duration) *AuthMiddleware {
	return &AuthMiddleware{
		authService:   authService,
		userRepo:      userRepo,
		refreshWindow: refreshWindow,
	}
}

// Require, geçerli bir session cookie zorunlu kılan middleware.
// Cookie yoksa veya token geçersizse → 401 Unauthorized.
//
// Akış:
// 1. "access_token_cookie" cookie'sini oku
// 2. AuthService.ValidateAccessToken() ile doğrula
// 3. Token geçerliyse → kullanıcıyı DB'den getir → context'e ekle → next handler'ı çağır
// 4. Geçersizse → 401 döndür, next ÇAĞIRILMAZ
//
// Kullanıcı DB'den doğrulanır çünkü token geçerli olsa bile kullanıcı
// silinmiş olabilir.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(handlers.AccessTokenCookie)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := m.authService.ValidateAccessToken(cookie.Value)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// Hash hiçbir handler'a sızmasın
		user.PasswordHash = ""

		ctx := context.WithValue(r.Context(), handlers.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RefreshExpiring, süresi dolmak üzere olan token'ları sessizce yeniler.
//
// Her request'te cookie'deki token kontrol edilir: geçerli VE bitimine
// refreshWindow'dan az kaldıysa, aynı kullanıcı için yeni bir token üretilip
// cookie değiştirilir. Aktif kullanıcının oturumu böylece hiç kopmaz.
//
// Cookie, next handler ÇAĞRILMADAN ÖNCE set edilir — Go'da response body
// yazılmaya başlandıktan sonra header eklenemez.
//
// Herhangi bir adım başarısız olursa (cookie yok, token geçersiz, kullanıcı
// silinmiş) middleware hiçbir şey yapmaz ve request'i aynen geçirir; karar
// vermek Require'ın işidir.
func (m *AuthMiddleware) RefreshExpiring(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(handlers.AccessTokenCookie)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.authService.ValidateAccessToken(cookie.Value)
		if err != nil || claims.ExpiresAt == nil {
			next.ServeHTTP(w, r)
			return
		}

		if time.Until(claims.ExpiresAt.Time) >= m.refreshWindow {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), claims.UserID)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		token, err := m.authService.GenerateToken(user)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		handlers.SetAccessCookie(w, token)
		next.ServeHTTP(w, r)
	})
}
