// Package handlers, HTTP request/response işlemlerini yönetir.
//
// Handler'ın görevi çok basit ve "ince" (thin) olmalı:
// 1. Request body'yi parse et (JSON → struct)
// 2. Service katmanını çağır
// 3. Sonucu HTTP response olarak döndür
//
// Handler ASLA iş mantığı içermez, ASLA doğrudan DB'ye erişmez.
// Tüm akıl service'de, handler sadece köprü.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/akinalp/teenspace/models"
	"github.com/akinalp/teenspace/pkg"
	"github.com/akinalp/teenspace/pkg/ratelimit"
	"github.com/akinalp/teenspace/services"
)

// AuthHandler, auth endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService  services.AuthService
	loginLimiter *ratelimit.Limiter
}

// NewAuthHandler, constructor.
// loginLimiter: Login brute-force koruması. nil ise rate limiting devre dışı.
func NewAuthHandler(authService services.AuthService, loginLimiter *ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		loginLimiter: loginLimiter,
	}
}

// Register godoc
// POST /register
// Body: { "username", "password", "email" }
// Yanıt: 201 {"id", "username"} — şifre hash'i asla dönmez.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, map[string]string{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login godoc
// POST /login
//
// Başarılı girişte token hem body'de ("access_token") hem de cookie olarak
// döner — sonraki istekler cookie ile doğrulanır.
//
// Rate limiting: IP bazlı brute-force koruması. Limit aşılınca 429 döner,
// başarılı login sayacı sıfırlar.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ip := ratelimit.ExtractIP(r)
	if h.loginLimiter != nil && !h.loginLimiter.Allow(ip) {
		retryAfter := h.loginLimiter.RetryAfterSeconds(ip)
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
		pkg.ErrorWithMessage(w, http.StatusTooManyRequests, "too many login attempts, please try again later")
		return
	}

	var req models.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if h.loginLimiter != nil {
		h.loginLimiter.Reset(ip)
	}

	SetAccessCookie(w, result.AccessToken)
	pkg.JSON(w, http.StatusOK, result)
}

// Protected godoc
// GET /protected
// Auth middleware gerektirir — context'te user bilgisi olur.
func (h *AuthHandler) Protected(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "user not found in context")
		return
	}

	pkg.JSON(w, http.StatusOK, user)
}

// CheckSession godoc
// GET /checksession
// Protected ile aynı davranış: geçerli cookie → kullanıcı, yoksa 401.
// Frontend sayfa yenilendiğinde oturumun hâlâ geçerli olup olmadığını sorar.
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	h.Protected(w, r)
}

// Logout godoc
// DELETE /logout
// Cookie'yi temizler — server tarafında tutulan session state yoktur,
// token'ın kendisi cookie ile birlikte gider.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ClearAccessCookie(w)
	pkg.JSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// contextKey, context'te kullanıcı bilgisi taşımak için kullanılan key tipi.
// String key kullanmak çakışmaya neden olabilir — özel tip namespace
// collision'ı önler.
type contextKey string

// UserContextKey, auth middleware'ın doğrulanmış kullanıcıyı koyduğu key.
const UserContextKey contextKey = "user"
