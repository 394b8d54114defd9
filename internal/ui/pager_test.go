package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testContent() string {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		switch i {
		case 3:
			b.WriteString("name: 1_setup.txt\n")
		case 20:
			b.WriteString("name: 2_build.txt\n")
		case 25:
			b.WriteString("  7 error: boom\n")
		case 33:
			b.WriteString("  9 \x1b[35merror: styled\x1b[0m\n")
		default:
			fmt.Fprintf(&b, "line %d\n", i)
		}
	}
	return b.String()
}

func sizedModel(t *testing.T) Model {
	t.Helper()
	m := New("logs.zip", testContent())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	if !model.ready {
		t.Fatalf("model not ready after WindowSizeMsg")
	}
	return model
}

func TestNew_IndexesMemberHeaders(t *testing.T) {
	m := New("logs.zip", testContent())
	want := []int{3, 20}
	if len(m.members) != len(want) || m.members[0] != want[0] || m.members[1] != want[1] {
		t.Fatalf("members = %v, want %v", m.members, want)
	}
}

func TestSetQuery_FindsMatchesThroughColorCodes(t *testing.T) {
	m := sizedModel(t)
	m.setQuery("ERROR")
	if len(m.matches) != 2 {
		t.Fatalf("matches = %v, want plain and styled error lines", m.matches)
	}
	if m.matches[0] != 25 || m.matches[1] != 33 {
		t.Fatalf("matches = %v, want [25 33]", m.matches)
	}
	if m.viewport.YOffset != 25 {
		t.Fatalf("YOffset = %d, want jump to first match 25", m.viewport.YOffset)
	}
}

func TestSetQuery_EmptyClearsMatches(t *testing.T) {
	m := sizedModel(t)
	m.setQuery("error")
	m.setQuery("")
	if len(m.matches) != 0 {
		t.Fatalf("matches = %v, want none after clearing", m.matches)
	}
}

func TestJumpMatch_CyclesThroughMatches(t *testing.T) {
	m := sizedModel(t)
	m.setQuery("error")

	m.jumpMatch(1)
	if m.matchIdx != 1 {
		t.Fatalf("matchIdx = %d after next, want 1", m.matchIdx)
	}
	m.jumpMatch(1)
	if m.matchIdx != 0 {
		t.Fatalf("matchIdx = %d after wrap, want 0", m.matchIdx)
	}
	m.jumpMatch(-1)
	if m.matchIdx != 1 {
		t.Fatalf("matchIdx = %d after prev wrap, want 1", m.matchIdx)
	}
}

func TestJumpMember_MovesBetweenHeaders(t *testing.T) {
	m := sizedModel(t)

	m.jumpMember(1)
	if m.viewport.YOffset != 3 {
		t.Fatalf("YOffset = %d, want first member header 3", m.viewport.YOffset)
	}
	m.jumpMember(1)
	if m.viewport.YOffset != 20 {
		t.Fatalf("YOffset = %d, want second member header 20", m.viewport.YOffset)
	}
	m.jumpMember(-1)
	if m.viewport.YOffset != 3 {
		t.Fatalf("YOffset = %d, want back to first header 3", m.viewport.YOffset)
	}
	m.jumpMember(-1)
	if m.viewport.YOffset != 0 {
		t.Fatalf("YOffset = %d, want top", m.viewport.YOffset)
	}
}

func TestQuitKey(t *testing.T) {
	m := sizedModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q returned nil cmd, want tea.Quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Fatalf("q produced %v, want tea.QuitMsg", msg)
	}
}
