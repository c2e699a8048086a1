package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func init() {
	registry.Register("menu_stub_a", func() registry.Game { return &stubGame{} })
	registry.Register("menu_stub_b", func() registry.Game { return &stubGame{} })
}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected MenuModel", next)
	}
	return nm, cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	games := registry.List()
	if len(games) < 2 {
		t.Fatalf("registry.List() has %d games, expected at least 2", len(games))
	}

	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != games[1].ID {
		t.Errorf("Selected() = %q, expected %q", m.Selected(), games[1].ID)
	}
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
}

func TestMenuCursorStaysInRange(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != registry.List()[0].ID {
		t.Errorf("Selected() = %q, expected the first game", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m, _ = updateMenu(t, m, runeKey('q'))

	if !m.IsQuitting() {
		t.Error("IsQuitting() = false after 'q'")
	}
	if m.Selected() != "" {
		t.Errorf("Selected() = %q, expected none", m.Selected())
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m, _ = updateMenu(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("Config() = %+v, expected 120x40", cfg)
	}
}
