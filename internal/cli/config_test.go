package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Point the default location at an empty home dir.
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format = %q, want %q", cfg.Render.Format, "svg")
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partbench.toml")
	content := `
[server]
addr = ":9090"

[server.redis]
addr = "localhost:6379"
db = 2

[render]
format = "png"
detailed = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig(%q) = %v", path, err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":9090")
	}
	if cfg.Server.Redis.Addr != "localhost:6379" {
		t.Errorf("Server.Redis.Addr = %q, want %q", cfg.Server.Redis.Addr, "localhost:6379")
	}
	if cfg.Server.Redis.DB != 2 {
		t.Errorf("Server.Redis.DB = %d, want 2", cfg.Server.Redis.DB)
	}
	if cfg.Render.Format != "png" || !cfg.Render.Detailed {
		t.Errorf("Render = %+v, want png/detailed", cfg.Render)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partbench.toml")
	if err := os.WriteFile(path, []byte("[render]\nformat = \"dot\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig(%q) = %v", path, err)
	}
	if cfg.Render.Format != "dot" {
		t.Errorf("Render.Format = %q, want %q", cfg.Render.Format, "dot")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want default %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("loadConfig(missing explicit path) = nil, want error")
	}
}
