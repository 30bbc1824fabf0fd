package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawler.yaml")
	content := `
host: 192.168.1.42
port: 17000
connectTimeout: 2s
device: emulator-5554
scrcpy:
  path: /opt/scrcpy/scrcpy
  args: ["--max-fps", "30"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "192.168.1.42" {
		t.Errorf("got Host=%q", cfg.Host)
	}
	if cfg.Port != 17000 {
		t.Errorf("got Port=%d", cfg.Port)
	}
	if cfg.ConnectTimeout.Std() != 2*time.Second {
		t.Errorf("got ConnectTimeout=%v", cfg.ConnectTimeout)
	}
	// Unset fields get defaults.
	if cfg.ReadTimeout.Std() != 10*time.Second {
		t.Errorf("got ReadTimeout=%v, want default 10s", cfg.ReadTimeout)
	}
	if cfg.Device != "emulator-5554" {
		t.Errorf("got Device=%q", cfg.Device)
	}
	if cfg.Scrcpy.Path != "/opt/scrcpy/scrcpy" {
		t.Errorf("got Scrcpy.Path=%q", cfg.Scrcpy.Path)
	}
	if len(cfg.Scrcpy.Args) != 2 {
		t.Errorf("got Scrcpy.Args=%v", cfg.Scrcpy.Args)
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawler.yaml")
	if err := os.WriteFile(path, []byte("host: [not closed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadFromDir_Missing(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Host != "127.0.0.1" || cfg.Port != 16688 {
		t.Errorf("expected defaults, got %s:%d", cfg.Host, cfg.Port)
	}
}

func TestLoadFromDir_YmlFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "crawler.yml"), []byte("device: ABC"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Device != "ABC" {
		t.Errorf("got Device=%q", cfg.Device)
	}
}
