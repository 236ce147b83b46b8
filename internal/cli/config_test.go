package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPOLENS_ADDR", "")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("REPOLENS_COMMIT_LIMIT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":8000" {
		t.Errorf("Addr = %q, want :8000", cfg.Addr)
	}
	if cfg.CommitLimit != 100 {
		t.Errorf("CommitLimit = %d, want 100", cfg.CommitLimit)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "addr = \":9000\"\ncommit_limit = 50\n"
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("REPOLENS_ADDR", "")
	t.Setenv("REPOLENS_COMMIT_LIMIT", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("Addr = %q, want :9000", cfg.Addr)
	}
	if cfg.CommitLimit != 50 {
		t.Errorf("CommitLimit = %d, want 50", cfg.CommitLimit)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("addr = \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("REPOLENS_ADDR", ":7777")
	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("REPOLENS_COMMIT_LIMIT", "10")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":7777" {
		t.Errorf("Addr = %q, want :7777", cfg.Addr)
	}
	if cfg.Token != "tok" {
		t.Errorf("Token = %q, want tok", cfg.Token)
	}
	if cfg.CommitLimit != 10 {
		t.Errorf("CommitLimit = %d, want 10", cfg.CommitLimit)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("addr = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig = nil error for malformed TOML, want error")
	}
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GITHUB_TOKEN=from-dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	// godotenv does not override variables already present, even when empty,
	// so the token must be fully unset. t.Setenv registers the restore.
	t.Setenv("GITHUB_TOKEN", "")
	os.Unsetenv("GITHUB_TOKEN")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Token != "from-dotenv" {
		t.Errorf("Token = %q, want from-dotenv", cfg.Token)
	}
}
