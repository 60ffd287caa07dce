// Package handlers — access token cookie yardımcıları.
//
// Token TEK taşıma kanalı olarak cookie kullanır — Authorization header
// yok. Cookie hem login handler'ı hem de refresh middleware'ı tarafından
// set edildiği için yardımcılar burada, paylaşılan noktada yaşar
// (middleware zaten handlers'a bağımlıdır, tersi değil).
package handlers

import "net/http"

// AccessTokenCookie, session token'ını taşıyan cookie'nin adı.
const AccessTokenCookie = "access_token_cookie"

// SetAccessCookie, access token'ı response cookie'sine yazar.
//
// MaxAge verilmez (session cookie) — token zaten kendi mutlak expiry'sini
// taşır, cookie ömrünü ayrıca yönetmeye gerek yok. HttpOnly: JavaScript
// erişemez (XSS'e karşı). SameSite=Lax: cross-site POST'larda gönderilmez.
func SetAccessCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAccessCookie, logout'ta cookie'yi geçersiz kılar.
// MaxAge: -1 → tarayıcı cookie'yi hemen siler.
func ClearAccessCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
