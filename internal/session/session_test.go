package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPathUsesStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)
	got, err := Path()
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if want := filepath.Join(dir, "sevenguis", "session.json"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("state dir not created: %v", err)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := newManager(path)
	values := map[string]string{"start": "01.01.2030", "kind": "return"}
	m.SetValues("flight", values)
	values["start"] = "mutated"
	if err := m.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	m2 := newManager(path)
	got, ok := m2.Values("flight")
	if !ok || got["start"] != "01.01.2030" || got["kind"] != "return" {
		t.Fatalf("reloaded values = %v, %v", got, ok)
	}
	if m2.LastDemo() != "flight" {
		t.Fatalf("LastDemo = %q, want flight", m2.LastDemo())
	}
	if _, ok := m2.Values("counter"); ok {
		t.Fatalf("unexpected counter values")
	}
}

func TestSaveSkipsCleanSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := newManager(path)
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("clean session written to disk")
	}
	m.SetValues("counter", map[string]string{"count": "1"})
	if err := m.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("session not written: %v", err)
	}
	m.SetValues("counter", map[string]string{"count": "1"})
	if m.dirty {
		t.Fatalf("identical values marked the session dirty")
	}
}

func TestCorruptSessionStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	m := newManager(path)
	if _, ok := m.Values("counter"); ok {
		t.Fatalf("values loaded from a corrupt file")
	}
	m.SetValues("counter", map[string]string{"count": "2"})
	if err := m.ForceSave(); err != nil {
		t.Fatalf("ForceSave: %v", err)
	}
}

func TestAutosaveLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	m := newManager(path)
	go m.autosaveLoop(5 * time.Millisecond)
	defer m.Stop()
	m.SetValues("temperature", map[string]string{"celsius": "20"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("autosave never wrote %s", path)
}
