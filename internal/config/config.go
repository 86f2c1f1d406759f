package config

import (
	"os"
	"strings"
	"time"
)

// Config junta toda la configuración del servicio.
// Valores por defecto pensados para dev local; en prod se sobreescriben por env.
type Config struct {
	Port string
	Env  string // development | production

	// Upstream (API remota de mascotas/cuentas)
	APIBaseURL     string
	APIKey         string
	APIKeyHeader   string
	APIBearerToken string
	APITimeout     time.Duration

	// Sesión
	SessionSecret string

	// Storage opcional (favoritos/preferencias). Vacío => in-memory.
	DBDSN string

	// Dominio de email exigido al registrar. Vacío => cualquier dominio.
	EmailDomain string
}

func Load() Config {
	return Config{
		Port: getString("PORT", "8080"),
		Env:  getString("APP_ENV", "development"),

		APIBaseURL:     getString("API_BASE_URL", "http://localhost:9090"),
		APIKey:         getString("API_KEY", ""),
		APIKeyHeader:   getString("API_KEY_HEADER", "X-Api-Key"),
		APIBearerToken: getString("API_BEARER_TOKEN", ""),
		APITimeout:     getDuration("API_TIMEOUT", 10*time.Second),

		SessionSecret: getString("SESSION_SECRET", "fallback-secret-key-for-development"),

		DBDSN: getString("DB_DSN", ""),

		EmailDomain: getString("PAWSITIVE_EMAIL_DOMAIN", ""),
	}
}

// IsProduction decide atributos sensibles (cookie Secure, etc).
func (c Config) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "production")
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
