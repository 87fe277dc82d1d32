package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"PORT", "JWT_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD", "STORE_BACKEND"} {
		t.Setenv(v, "")
	}

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("Port = %q, ожидается %q", cfg.Port, "3000")
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "admin123" {
		t.Errorf("учетная запись по умолчанию = %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.StoreBackend != "json" {
		t.Errorf("StoreBackend = %q, ожидается %q", cfg.StoreBackend, "json")
	}
	if cfg.TokenTTL != time.Hour {
		t.Errorf("TokenTTL = %v, ожидается %v", cfg.TokenTTL, time.Hour)
	}
	if !cfg.SecretIsDefault || cfg.JWTSecret != DefaultJWTSecret {
		t.Errorf("без JWT_SECRET должен использоваться встроенный секрет")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("STORE_BACKEND", "sqlite")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, ожидается %q", cfg.Port, "8080")
	}
	if cfg.JWTSecret != "env-secret" || cfg.SecretIsDefault {
		t.Errorf("JWT_SECRET из окружения не применился: %+v", cfg)
	}
	if cfg.AdminUsername != "root" {
		t.Errorf("AdminUsername = %q, ожидается %q", cfg.AdminUsername, "root")
	}
	if cfg.StoreBackend != "sqlite" {
		t.Errorf("StoreBackend = %q, ожидается %q", cfg.StoreBackend, "sqlite")
	}
}
