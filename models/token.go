package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, session token'ın payload'ı.
//
// Token cookie ile taşınan, imzalı bir kimlik iddiasıdır: user_id + mutlak
// expiry. Server her request'te imzayı doğrular — DB'ye gitmeden token
// sahibinin kim olduğunu bilir (kullanıcının hâlâ var olduğu ayrıca
// kontrol edilir).
//
// Bu struct models paketinde tanımlanır çünkü birden fazla katman
// (services, middleware) tarafından kullanılır — her katman models'e
// bağımlı olabilir, circular dependency oluşmaz.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
