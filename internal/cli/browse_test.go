package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/fcactx/pkg/fca"
)

func browseContext(t *testing.T) *fca.Context {
	t.Helper()
	c, err := fca.New(
		[]string{"duck", "eagle", "penguin"},
		[]string{"flies", "swims", "lays eggs"},
		[]fca.Pair{
			{Object: "duck", Attribute: "flies"},
			{Object: "duck", Attribute: "swims"},
			{Object: "duck", Attribute: "lays eggs"},
			{Object: "eagle", Attribute: "flies"},
			{Object: "eagle", Attribute: "lays eggs"},
			{Object: "penguin", Attribute: "swims"},
			{Object: "penguin", Attribute: "lays eggs"},
		},
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func press(m BrowseModel, keys ...tea.KeyMsg) BrowseModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(BrowseModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestBrowseModelNavigation(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"start", nil, 0},
		{"down", []tea.KeyMsg{keyDown}, 1},
		{"stops at end", []tea.KeyMsg{keyDown, keyDown, keyDown, keyDown}, 2},
		{"stops at start", []tea.KeyMsg{keyUp}, 0},
		{"vim keys", []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
			{Type: tea.KeyRunes, Runes: []rune{'j'}},
			{Type: tea.KeyRunes, Runes: []rune{'k'}},
		}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := press(m, tt.keys...)
			if got.Cursor != tt.want {
				t.Errorf("Cursor = %d, want %d", got.Cursor, tt.want)
			}
		})
	}
}

func TestBrowseModelScrolls(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))
	m.Height = 2

	m = press(m, keyDown, keyDown)
	if m.Offset != 1 {
		t.Errorf("Offset = %d, want 1", m.Offset)
	}
	m = press(m, keyUp, keyUp)
	if m.Offset != 0 {
		t.Errorf("Offset = %d, want 0", m.Offset)
	}
}

func TestBrowseModelSelection(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))

	// Select duck and penguin.
	m = press(m, keyEnter, keyDown, keyDown, keyEnter)
	if got := m.selection(); len(got) != 2 || got[0] != "duck" || got[1] != "penguin" {
		t.Fatalf("selection() = %v, want [duck penguin]", got)
	}

	view := m.View()
	if !strings.Contains(view, "swims, lays eggs") {
		t.Errorf("view does not show the shared attributes:\n%s", view)
	}
	if !strings.Contains(view, "duck, penguin") {
		t.Errorf("view does not show the objects sharing them:\n%s", view)
	}

	// Toggling again deselects.
	m = press(m, keyEnter)
	if got := m.selection(); len(got) != 1 || got[0] != "duck" {
		t.Errorf("selection() = %v, want [duck]", got)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if got := m.selection(); len(got) != 0 {
		t.Errorf("selection() after clear = %v", got)
	}
}

func TestBrowseModelQuit(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(k)
		if cmd == nil {
			t.Fatalf("%s: no command returned", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: command is not quit", k)
		}
	}
}

func TestBrowseModelView(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))
	view := m.View()

	for _, want := range []string{"birds", "duck", "eagle", "penguin", "flies, lays eggs", "[1/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Selected") {
		t.Errorf("view shows a selection before anything is selected:\n%s", view)
	}
}

func TestBrowseModelWindowSize(t *testing.T) {
	m := NewBrowseModel("birds", browseContext(t))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if got := next.(BrowseModel).Height; got != 28 {
		t.Errorf("Height = %d, want 28", got)
	}
	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(BrowseModel).Height; got != 5 {
		t.Errorf("Height = %d, want 5", got)
	}
}
