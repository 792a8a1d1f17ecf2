package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := `app:
  port: 7878
  data_dir: .
fetch:
  render_delay_ms: 500
  req_per_sec: 2
email:
  enabled: false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != 7878 {
		t.Fatalf("port = %d", cfg.App.Port)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("validate: %v", err)
	}

	cfg = Normalized(cfg)
	if cfg.Email.Mailbox != "INBOX" || cfg.Fetch.TimeoutS != 20 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestValidate_Failures(t *testing.T) {
	var cfg Config
	cfg.App.Port = 0
	cfg.Fetch.RenderDelayMS = 9000
	cfg.Email.Enabled = true

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"app.port", "render_delay_ms", "imap_host", "poll_seconds"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error missing %q: %v", want, err)
		}
	}
}

func TestEnsureUserConfig_CopiesDefaultOnce(t *testing.T) {
	dir := t.TempDir()
	defPath := filepath.Join(dir, "default.yml")
	if err := os.WriteFile(defPath, []byte("app:\n  port: 7878\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}

	userPath, err := EnsureUserConfig(dataDir, defPath)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	// user edits survive a second bootstrap
	if err := os.WriteFile(userPath, []byte("app:\n  port: 9999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	again, err := EnsureUserConfig(dataDir, defPath)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(again)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.App.Port != 9999 {
		t.Fatalf("bootstrap overwrote user config: %d", cfg.App.Port)
	}
}

func TestSaveAtomic_RejectsInvalid(t *testing.T) {
	var cfg Config // port 0
	if err := SaveAtomic(filepath.Join(t.TempDir(), "config.yml"), cfg); err == nil {
		t.Fatal("expected validation failure")
	}
}
