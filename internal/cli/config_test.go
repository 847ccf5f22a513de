package cli

import (
	"os"
	"path/filepath"
	"testing"
	"udpsyslog/internal/global"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err != nil {
		t.Fatalf("expected missing file to not be an error, got %v", err)
	}
	if cfg.Network.Address != "" || cfg.Network.Port != 0 {
		t.Fatalf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoadConfigInvalidSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	err := os.WriteFile(path, []byte("{not valid json"), 0644)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	_, err = LoadConfig(path)
	if err == nil {
		t.Fatalf("expected error for invalid config syntax, got none")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	expected := global.JSONConfig{
		Network: global.NetConf{
			Address: "logs.example.com",
			Port:    5514,
		},
		Tag: "myapp",
		Queue: global.QueueConf{
			MinSize: 128,
			MaxSize: 2048,
		},
	}

	err := WriteConfig(path, expected)
	if err != nil {
		t.Fatalf("expected write to succeed, got %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}

	if cfg.Network.Address != expected.Network.Address {
		t.Errorf("expected address '%s', got '%s'", expected.Network.Address, cfg.Network.Address)
	}
	if cfg.Network.Port != expected.Network.Port {
		t.Errorf("expected port %d, got %d", expected.Network.Port, cfg.Network.Port)
	}
	if cfg.Tag != expected.Tag {
		t.Errorf("expected tag '%s', got '%s'", expected.Tag, cfg.Tag)
	}
	if cfg.Queue != expected.Queue {
		t.Errorf("expected queue config %+v, got %+v", expected.Queue, cfg.Queue)
	}
}
