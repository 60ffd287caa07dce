package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// clearEnv, değişkeni test süresince unset eder. t.Setenv boş string set
// eder, unset etmez — getEnv LookupEnv kullandığı için ikisi farklıdır.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if val, ok := os.LookupEnv(key); ok {
			t.Setenv(key, val) // orijinal değeri cleanup'ta geri koy
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "JWT_SECRET", "SERVER_PORT", "DATABASE_PATH",
		"JWT_ACCESS_EXPIRY_MINUTES", "JWT_REFRESH_WINDOW_MINUTES", "CORS_ALLOWED_ORIGIN")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Server.Port)
	require.Equal(t, "./data/teenspace.db", cfg.Database.Path)
	require.Equal(t, 120, cfg.JWT.AccessTokenExpiry)
	require.Equal(t, 30, cfg.JWT.RefreshWindow)
	require.Equal(t, "http://localhost:3000", cfg.CORS.AllowedOrigin)

	// Secret verilmediyse ephemeral üretilir, boş kalamaz
	require.NotEmpty(t, cfg.JWT.Secret)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "fixed-secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("JWT_ACCESS_EXPIRY_MINUTES", "15")
	t.Setenv("CORS_ALLOWED_ORIGIN", "https://teenspace.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "fixed-secret", cfg.JWT.Secret)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, 15, cfg.JWT.AccessTokenExpiry)
	require.Equal(t, "https://teenspace.example.com", cfg.CORS.AllowedOrigin)
}

func TestAddr(t *testing.T) {
	c := &ServerConfig{Host: "0.0.0.0", Port: 5000}
	require.Equal(t, "0.0.0.0:5000", c.Addr())
}
