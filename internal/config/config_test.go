package config

import (
	"encoding/base64"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Fatalf("unexpected default addr: %s", cfg.Server.Addr())
	}
	if cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("unexpected default redis addr: %s", cfg.Redis.Addr)
	}
	if cfg.Log.Level != "info" || !cfg.Log.JSON {
		t.Fatalf("unexpected default log config: %+v", cfg.Log)
	}

	key, err := cfg.QR.Key()
	if err != nil {
		t.Fatalf("default key must validate: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("expected a 32-byte key, got %d", len(key))
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("FACE_SERVICE_ADDR", "localhost:50099")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Fatalf("environment override not applied: %s", cfg.Server.Addr())
	}
	if cfg.FaceService.Addr != "localhost:50099" {
		t.Fatalf("environment override not applied: %s", cfg.FaceService.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("environment override not applied: %s", cfg.Log.Level)
	}
}

func TestLoadRejectsBadKey(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "not base64!")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an undecodable key")
	}

	short := base64.URLEncoding.EncodeToString([]byte("too short"))
	t.Setenv("QR_SECRET_KEY", short)
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a short key")
	}
}
