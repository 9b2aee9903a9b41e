package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHostKeyDefaultsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultSSHServerConfig().hostKey()
	if err != nil {
		t.Fatalf("hostKey() failed: %v", err)
	}
	if want := filepath.Join(home, ".baseball", "host_key"); path != want {
		t.Errorf("hostKey() = %q, want %q", path, want)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("host key directory not created: %v", err)
	}
}

func TestHostKeyCustomPath(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "nested", "id")

	path, err := cfg.hostKey()
	if err != nil {
		t.Fatalf("hostKey() failed: %v", err)
	}
	if path != cfg.HostKeyPath {
		t.Errorf("hostKey() = %q, want %q", path, cfg.HostKeyPath)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Errorf("nested key directory not created: %v", err)
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 || cfg.IdleTimeout != 30*time.Minute {
		t.Errorf("DefaultSSHServerConfig() = %+v", cfg)
	}
	if cfg.Game.Game.Innings != 3 {
		t.Errorf("default innings = %d, want 3", cfg.Game.Game.Innings)
	}
}

func TestSessionRuntime(t *testing.T) {
	s := &SSHServer{cfg: DefaultSSHServerConfig()}
	rc := s.runtime(120, 40)
	if rc.ScreenW != 120 || rc.ScreenH != 40 || rc.TickRate != 60 {
		t.Errorf("runtime() = %+v", rc)
	}
	if rc.Seed == 0 {
		t.Error("each session should get its own seed")
	}
}

func TestPlayerFor(t *testing.T) {
	if got := playerFor(""); got != "guest" {
		t.Errorf("playerFor(\"\") = %q, want guest", got)
	}
	if got := playerFor("alice"); got != "alice" {
		t.Errorf("playerFor(alice) = %q", got)
	}
}
