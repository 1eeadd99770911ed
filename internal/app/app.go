package app

import (
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/sevenguis/internal/clipboard"
	"github.com/kobzarvs/sevenguis/internal/config"
	"github.com/kobzarvs/sevenguis/internal/demo"
	"github.com/kobzarvs/sevenguis/internal/logger"
	"github.com/kobzarvs/sevenguis/internal/measure"
	"github.com/kobzarvs/sevenguis/internal/session"
	"github.com/kobzarvs/sevenguis/internal/ui"
)

// App is the top-level runtime for sevenguis.
type App struct {
	args []string
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Init(false); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	km, err := ui.NewKeymap(cfg.Keymap)
	if err != nil {
		return err
	}
	clip, err := clipboard.New(cfg.Clipboard.Backend)
	if err != nil {
		return err
	}

	sm, err := session.NewManager()
	if err != nil {
		logger.Warn("session disabled", "error", err)
	}

	name := a.demoName(cfg, sm)
	view, err := NewDemo(name, demo.Env{
		Clipboard: clip,
		Measurer:  measure.NewCells(cfg.Demo.EastAsianWidth),
	})
	if err != nil {
		return err
	}
	defer view.Close()
	if sm != nil {
		if values, ok := sm.Values(name); ok {
			view.Restore(values)
		}
	}
	logger.Info("starting demo", "demo", name)

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	s.EnableMouse()
	defer s.Fini()

	h := NewHost(view, km, ui.NewTheme(cfg.Theme))
	h.Draw(s)
	for {
		ev := s.PollEvent()
		if ev == nil {
			break
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			s.Sync()
		}
		quit := h.HandleEvent(ev)
		if sm != nil {
			sm.SetValues(name, view.Snapshot())
		}
		if quit {
			break
		}
		h.Draw(s)
	}

	if sm != nil {
		if err := sm.Stop(); err != nil {
			logger.Warn("session save failed", "error", err)
		}
	}
	return nil
}

// demoName picks the demo from the command line, then the demo that ran
// last, then the configured default.
func (a *App) demoName(cfg config.Config, sm *session.Manager) string {
	if len(a.args) > 0 {
		return a.args[0]
	}
	if sm != nil {
		if last := sm.LastDemo(); slices.Contains(config.Demos, last) {
			return last
		}
	}
	return cfg.Demo.Default
}
