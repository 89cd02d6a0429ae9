package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.TablesPath != "tables.json" {
		t.Fatalf("expected default tables path tables.json, got %s", cfg.TablesPath)
	}
	if cfg.Mode != "CBC" {
		t.Fatalf("expected default mode CBC, got %s", cfg.Mode)
	}
	if cfg.Padding != "BLOCK_COUNT" {
		t.Fatalf("expected default padding BLOCK_COUNT, got %s", cfg.Padding)
	}
	if cfg.BlockSize != 16 {
		t.Fatalf("expected default block size 16, got %d", cfg.BlockSize)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CHARCIPHER_MODE", "ECB")
	t.Setenv("CHARCIPHER_BLOCK_SIZE", "32")
	t.Setenv("CHARCIPHER_SALT", "test-salt")

	cfg := Load()
	if cfg.Mode != "ECB" {
		t.Fatalf("expected mode ECB, got %s", cfg.Mode)
	}
	if cfg.BlockSize != 32 {
		t.Fatalf("expected block size 32, got %d", cfg.BlockSize)
	}
	if cfg.Salt != "test-salt" {
		t.Fatalf("expected salt test-salt, got %s", cfg.Salt)
	}
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("CHARCIPHER_BLOCK_SIZE", "sixteen")

	if cfg := Load(); cfg.BlockSize != 16 {
		t.Fatalf("malformed int should fall back to default, got %d", cfg.BlockSize)
	}
}
