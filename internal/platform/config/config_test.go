package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"studytrack/internal/platform/config"
)

func TestLoadFillsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data_dir: /var/lib/studytrack\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataDir != "/var/lib/studytrack" {
		t.Fatalf("data dir = %q", cfg.DataDir)
	}
	if cfg.Addr != ":3000" || cfg.BcryptCost != 10 || cfg.TokenTTLDays != 30 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.DBPath() != filepath.Join("/var/lib/studytrack", "studytrack.db") {
		t.Fatalf("db path = %q", cfg.DBPath())
	}
}

func TestLoadKeepsExplicitValues(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	payload := "data_dir: /tmp/st\naddr: \":8080\"\nbcrypt_cost: 4\ntoken_ttl_days: 7\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.BcryptCost != 4 || cfg.TokenTTLDays != 7 {
		t.Fatalf("explicit values overridden: %+v", cfg)
	}
}

func TestLoadRequiresDataDir(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":8080\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatal("config without data_dir must be rejected")
	}
}
