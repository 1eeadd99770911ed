package session

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/kobzarvs/sevenguis/internal/logger"
)

const autosaveInterval = 15 * time.Second

// Session stores the last values of every demo
type Session struct {
	Demos     map[string]map[string]string `json:"demos"`
	LastDemo  string                       `json:"last_demo,omitempty"`
	LastSaved time.Time                    `json:"last_saved"`
}

// Manager handles session persistence. The host writes demo values from
// its event loop while the autosave loop reads them, so access is locked.
type Manager struct {
	mu       sync.RWMutex
	session  Session
	path     string
	dirty    bool
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewManager loads the session from the state directory and starts the
// autosave loop.
func NewManager() (*Manager, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	m := newManager(path)
	go m.autosaveLoop(autosaveInterval)
	return m, nil
}

func newManager(path string) *Manager {
	m := &Manager{
		session:  Session{Demos: make(map[string]map[string]string)},
		path:     path,
		stopChan: make(chan struct{}),
	}
	m.load()
	return m
}

// Path returns the session file location, creating its directory.
func Path() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "sevenguis")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return // No existing session, start fresh
	}
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		logger.Warn("ignoring unreadable session", "path", m.path, "error", err)
		return
	}
	if session.Demos == nil {
		session.Demos = make(map[string]map[string]string)
	}
	m.session = session
}

// Save persists the session to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.dirty {
		return nil
	}

	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}

	m.dirty = false
	return nil
}

// ForceSave saves even if not dirty
func (m *Manager) ForceSave() error {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
	return m.Save()
}

// Values returns a copy of the saved values for a demo
func (m *Manager) Values(demo string) (map[string]string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	values, ok := m.session.Demos[demo]
	return maps.Clone(values), ok
}

// SetValues replaces the saved values for a demo and marks it last used
func (m *Manager) SetValues(demo string, values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if maps.Equal(m.session.Demos[demo], values) && m.session.LastDemo == demo {
		return
	}
	m.session.Demos[demo] = maps.Clone(values)
	m.session.LastDemo = demo
	m.dirty = true
}

// LastDemo returns the demo that was running when the session was saved
func (m *Manager) LastDemo() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.LastDemo
}

func (m *Manager) autosaveLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := m.Save(); err != nil {
				logger.Warn("session autosave failed", "error", err)
			}
		case <-m.stopChan:
			return
		}
	}
}

// Stop stops the autosave loop and saves final state
func (m *Manager) Stop() error {
	m.stopOnce.Do(func() { close(m.stopChan) })
	return m.Save()
}
