package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	resets int
	frames []core.InputFrame
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60}
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), nil)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("Init should reset the game once, got %d", g.resets)
	}
}

func TestModelKeyReachesNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	update(t, m, TickMsg(time.Now()))

	if len(g.frames) != 2 {
		t.Fatalf("Expected 2 steps, got %d", len(g.frames))
	}
	if !g.frames[0].Has(core.ActionJump) {
		t.Error("first step should carry the jump")
	}
	if g.frames[1].Has(core.ActionJump) {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelMouseClickJumps(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), nil)

	m, _ = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	update(t, m, TickMsg(time.Now()))

	if len(g.frames) != 1 || !g.frames[0].Has(core.ActionJump) {
		t.Error("left click should jump")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&fakeGame{}, testRuntime(), nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if cmd == nil {
		t.Error("quit should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelBackOnlyWhenStill(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), nil)
	back := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}

	// Mid-run: back is ignored
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, back)
	if m.IsGoingBack() {
		t.Error("back should be ignored while the run is in motion")
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, back)
	if !m.IsGoingBack() {
		t.Error("back should leave once the run is over")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, testRuntime(), nil)
	m.Init()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if g.resets != 1 {
		t.Error("resize should not reset the game")
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
