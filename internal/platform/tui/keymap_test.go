package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/snake"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestDirectionFor(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      string
		expected snake.Direction
	}{
		{"w", snake.DirUp},
		{"up", snake.DirUp},
		{"s", snake.DirDown},
		{"down", snake.DirDown},
		{"a", snake.DirLeft},
		{"left", snake.DirLeft},
		{"d", snake.DirRight},
		{"right", snake.DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			d, ok := km.DirectionFor(keyMsg(tc.key))
			if !ok {
				t.Fatalf("DirectionFor(%q) did not match", tc.key)
			}
			if d != tc.expected {
				t.Errorf("DirectionFor(%q) = %v, expected %v", tc.key, d, tc.expected)
			}
		})
	}

	for _, k := range []string{"x", "enter", "p", "q", "esc"} {
		if _, ok := km.DirectionFor(keyMsg(k)); ok {
			t.Errorf("DirectionFor(%q) matched, expected no direction", k)
		}
	}
}

func TestViewSubscriptionCancel(t *testing.T) {
	v := &gameView{}

	var got []snake.Direction
	sub := v.OnDirectionInput(func(d snake.Direction) {
		got = append(got, d)
	})

	v.dispatch(snake.DirUp)
	if len(got) != 1 || got[0] != snake.DirUp {
		t.Fatalf("dispatch delivered %v, expected [up]", got)
	}

	sub.Cancel()
	v.dispatch(snake.DirDown)
	if len(got) != 1 {
		t.Error("dispatch after cancel should be dropped")
	}
}

func TestStaleSubscriptionDoesNotCancelNewer(t *testing.T) {
	v := &gameView{}

	stale := v.OnDirectionInput(func(snake.Direction) {})

	var got []snake.Direction
	v.OnDirectionInput(func(d snake.Direction) {
		got = append(got, d)
	})

	// Cancelling the superseded handle must leave the newer binding
	// intact.
	stale.Cancel()
	v.dispatch(snake.DirLeft)
	if len(got) != 1 {
		t.Errorf("newer binding received %d events, expected 1", len(got))
	}
}

func TestAckGameOver(t *testing.T) {
	v := &gameView{}

	if v.ackGameOver() {
		t.Error("ack without a pending game over should report false")
	}

	v.NotifyGameOver()
	if !v.ackGameOver() {
		t.Error("ack should consume the pending game over")
	}
	if v.ackGameOver() {
		t.Error("second ack should report false")
	}
}
