package window

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kmacinski/harvest/internal/keys"
	"github.com/kmacinski/harvest/internal/ui"
)

var five = []string{"one", "two", "three", "four", "five"}

func TestFocusClampsAtTop(t *testing.T) {
	env, _ := newTestEnv(t)
	l := NewList(env, five)

	if quit := l.HandleKey(keys.KeyUp); quit {
		t.Fatal("Expected up not to quit")
	}
	if l.Focus() != 0 {
		t.Errorf("Expected focus 0, got %d", l.Focus())
	}
}

func TestFocusClampsAtBottom(t *testing.T) {
	env, _ := newTestEnv(t)
	l := NewList(env, five)
	for i := 0; i < 4; i++ {
		l.HandleKey(keys.KeyDown)
	}
	if l.Focus() != 4 {
		t.Fatalf("Expected focus 4, got %d", l.Focus())
	}

	l.HandleKey(keys.KeyDown)
	if l.Focus() != 4 {
		t.Errorf("Expected focus to stay at 4, got %d", l.Focus())
	}
}

func TestFocusNeverWraps(t *testing.T) {
	env, _ := newTestEnv(t)
	rng := rand.New(rand.NewSource(7))

	for _, n := range []int{1, 2, 5, 13} {
		items := make([]int, n)
		l := NewList(env, items)
		prev := l.Focus()
		for i := 0; i < 500; i++ {
			k := keys.KeyUp
			if rng.Intn(2) == 0 {
				k = keys.KeyDown
			}
			l.HandleKey(k)

			f := l.Focus()
			if f < 0 || f >= n {
				t.Fatalf("len %d: focus %d out of range", n, f)
			}
			if d := f - prev; d < -1 || d > 1 {
				t.Fatalf("len %d: focus jumped from %d to %d", n, prev, f)
			}
			if k == keys.KeyUp && prev == 0 && f != 0 {
				t.Fatalf("len %d: focus wrapped from top", n)
			}
			if k == keys.KeyDown && prev == n-1 && f != n-1 {
				t.Fatalf("len %d: focus wrapped from bottom", n)
			}
			prev = f
		}
	}
}

func TestOtherKeysDoNothing(t *testing.T) {
	env, _ := newTestEnv(t)
	l := NewList(env, five)
	l.HandleKey(keys.KeyDown)

	for _, k := range []keys.Key{'j', 'k', keys.KeyLeft, keys.KeyEnter, 'Q'} {
		if quit := l.HandleKey(k); quit {
			t.Errorf("Expected %v not to quit", k)
		}
		if l.Focus() != 1 {
			t.Errorf("Expected %v to leave focus at 1, got %d", k, l.Focus())
		}
	}
}

func TestQuitWinsOverQueuedNavigation(t *testing.T) {
	env, screen := newTestEnv(t)
	list := NewStringList(env, five)
	w, _ := New(env, "list", list, Options{})

	pressRune(screen, 'q')
	pressKey(screen, tcell.KeyDown, tcell.KeyDown)

	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
	if list.Focus() != 0 {
		t.Errorf("Expected no navigation after quit, focus %d", list.Focus())
	}

	// The queued keys were not consumed by the terminated loop.
	k, err := w.ReadKey()
	if err != nil || k != keys.KeyDown {
		t.Errorf("Expected queued KeyDown, got %v, %v", k, err)
	}
}

func TestEmptyList(t *testing.T) {
	env, screen := newTestEnv(t)
	list := NewStringList(env, nil)

	list.HandleKey(keys.KeyDown)
	list.HandleKey(keys.KeyUp)
	if list.Focus() != 0 {
		t.Errorf("Expected focus 0 on empty list, got %d", list.Focus())
	}
	if _, ok := list.Selected(); ok {
		t.Error("Expected no selection on empty list")
	}

	w, _ := New(env, "empty", list, Options{})
	pressKey(screen, tcell.KeyDown)
	pressRune(screen, 'q')
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}
}

func TestStringListRendersFocus(t *testing.T) {
	env, screen := newTestEnv(t)
	list := NewStringList(env, five)
	list.HandleKey(keys.KeyDown)
	list.HandleKey(keys.KeyDown)
	w, _ := New(env, "list", list, Options{})

	if err := w.Frame(); err != nil {
		t.Fatal(err)
	}

	highlight, _ := env.Colors.Resolve(ui.BlackOnWhite)
	cells, sw, _ := screen.GetContents()
	for i, item := range five {
		if got := rowText(screen, i, 1, 1+len(item)); got != item {
			t.Errorf("row %d: expected %q, got %q", i, item, got)
		}
		style := cells[i*sw+1].Style
		if i == 2 && style != highlight {
			t.Errorf("row %d: expected highlight", i)
		}
		if i != 2 && style != tcell.StyleDefault {
			t.Errorf("row %d: expected no attribute", i)
		}
	}
	if got := rowText(screen, len(five), 0, 10); got != "          " {
		t.Errorf("Expected nothing below the list, got %q", got)
	}
}

func TestStringListFocusPairOverride(t *testing.T) {
	env, screen := newTestEnv(t)
	list := NewStringList(env, five)
	list.FocusPair = ui.WhiteOnGreen
	w, _ := New(env, "list", list, Options{})

	if err := w.Frame(); err != nil {
		t.Fatal(err)
	}

	want, _ := env.Colors.Resolve(ui.WhiteOnGreen)
	cells, _, _ := screen.GetContents()
	if cells[1].Style != want {
		t.Error("Expected overridden focus pair on row 0")
	}
}

type record struct {
	ID    int
	Notes string
}

func TestProjectedList(t *testing.T) {
	env, screen := newTestEnv(t)
	items := []record{{ID: 11, Notes: "a"}, {ID: 22, Notes: "b"}}
	list := NewProjectedList(env, items, func(r record) string { return r.Notes })
	w, _ := New(env, "records", list, Options{})

	pressKey(screen, tcell.KeyDown)
	pressRune(screen, 'q')
	if err := w.Start(); err != nil {
		t.Fatal(err)
	}

	sel, ok := list.Selected()
	if !ok || sel.ID != 22 {
		t.Errorf("Expected record 22 selected, got %+v", sel)
	}
	if got := rowText(screen, 1, 1, 2); got != "b" {
		t.Errorf("Expected projected text, got %q", got)
	}
}
