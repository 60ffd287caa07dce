// Package config, uygulamanın tüm konfigürasyonunu merkezi olarak yönetir.
// Environment variable'lardan okur, .env dosyasını da destekler.
//
// Config struct'ı tüm ayarları tek bir yerde toplar — her yerde ayrı ayrı
// os.Getenv() çağırmak yerine tek bir Config nesnesi taşırız. JWT imzalama
// secret'ı da burada yaşar: ambient global YOK, secret constructor injection
// ile token service'e geçilir.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config, uygulamanın tüm konfigürasyon değerlerini taşır.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

// ServerConfig, HTTP server ayarları.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig, SQLite database ayarları.
type DatabaseConfig struct {
	Path string // SQLite dosya yolu (ör: ./data/teenspace.db)
}

// JWTConfig, session token ayarları.
//
// Secret, access token'ları imzalayan HMAC anahtarıdır. Env'de verilmemişse
// process başında rastgele üretilir — bu durumda restart, dışarıdaki tüm
// token'ları geçersiz kılar (bilinçli sınırlama, bug değil).
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // Dakika cinsinden (varsayılan: 120 → 2 saat)
	RefreshWindow     int // Dakika cinsinden — kalan ömür bunun altındaysa cookie yenilenir (varsayılan: 30)
}

// CORSConfig, cross-origin ayarları.
// Cookie bazlı auth kullanıldığı için credentials şart — bu da tek ve sabit
// bir allowed origin gerektirir (wildcard credentials ile çalışmaz).
type CORSConfig struct {
	AllowedOrigin string
}

// Load, environment variable'lardan Config oluşturur.
// .env dosyası varsa önce onu yükler (development kolaylığı için).
func Load() (*Config, error) {
	// .env yoksa hata vermez, sessizce devam eder.
	// Production'da gerçek env variable'lar kullanılır.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("SERVER_PORT", "5000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	accessExpiry, err := strconv.Atoi(getEnv("JWT_ACCESS_EXPIRY_MINUTES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_EXPIRY_MINUTES: %w", err)
	}

	refreshWindow, err := strconv.Atoi(getEnv("JWT_REFRESH_WINDOW_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_REFRESH_WINDOW_MINUTES: %w", err)
	}

	jwtSecret := getEnv("JWT_SECRET", "")
	if jwtSecret == "" {
		// Process başına rastgele secret — process ömrü boyunca sabit kalır,
		// restart sonrası eski token'lar doğal olarak geçersizleşir.
		jwtSecret, err = generateSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		log.Println("[config] JWT_SECRET not set, generated an ephemeral secret — tokens will not survive a restart")
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: port,
		},
		Database: DatabaseConfig{
			Path: getEnv("DATABASE_PATH", "./data/teenspace.db"),
		},
		JWT: JWTConfig{
			Secret:            jwtSecret,
			AccessTokenExpiry: accessExpiry,
			RefreshWindow:     refreshWindow,
		},
		CORS: CORSConfig{
			AllowedOrigin: getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		},
	}

	return cfg, nil
}

// Addr, HTTP server'ın dinleyeceği adresi döner (ör: "0.0.0.0:5000").
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// generateSecret, 32 byte'lık rastgele bir HMAC anahtarı üretir.
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// getEnv, environment variable'ı okur, yoksa fallback değeri döner.
func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
