package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

func TestResolveBeforeRegister(t *testing.T) {
	r := NewRegistry(nil)

	for i := 0; i < 3; i++ {
		_, err := r.Resolve(BlackOnWhite)
		if !errors.Is(err, ErrNotRegistered) {
			t.Fatalf("Expected ErrNotRegistered on attempt %d, got %v", i, err)
		}
	}
	if r.Registered() {
		t.Error("Expected registry to report unregistered")
	}
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.RegisterDefaults(); err != nil {
		t.Fatalf("RegisterDefaults: %v", err)
	}

	tests := []struct {
		id     PairID
		fg, bg tcell.Color
	}{
		{BlackOnWhite, tcell.PaletteColor(0), tcell.PaletteColor(7)},
		{WhiteOnBlack, tcell.PaletteColor(7), tcell.PaletteColor(0)},
		{WhiteOnGreen, tcell.PaletteColor(7), tcell.PaletteColor(2)},
	}
	for _, tt := range tests {
		style, err := r.Resolve(tt.id)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.id, err)
		}
		fg, bg, _ := style.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("%s: expected fg=%v bg=%v, got fg=%v bg=%v", tt.id, tt.fg, tt.bg, fg, bg)
		}
	}

	if int(BlackOnWhite) != 1 || int(WhiteOnBlack) != 2 || int(WhiteOnGreen) != 3 {
		t.Error("Default pair identifiers must be 1, 2, 3")
	}
}

func TestRegisterDefaultsTwiceRejected(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.RegisterDefaults(); err != nil {
		t.Fatalf("first RegisterDefaults: %v", err)
	}
	before, _ := r.Resolve(WhiteOnGreen)

	for i := 0; i < 2; i++ {
		if err := r.RegisterDefaults(); !errors.Is(err, ErrAlreadyRegistered) {
			t.Fatalf("Expected ErrAlreadyRegistered, got %v", err)
		}
	}

	after, err := r.Resolve(WhiteOnGreen)
	if err != nil {
		t.Fatalf("Resolve after rejected re-registration: %v", err)
	}
	if before != after {
		t.Error("Expected table to be unchanged by rejected re-registration")
	}
}

func TestResolveUnknownPair(t *testing.T) {
	r := NewRegistry(nil)
	if err := r.RegisterDefaults(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Resolve(PairID(42)); !errors.Is(err, ErrUnknownPair) {
		t.Errorf("Expected ErrUnknownPair, got %v", err)
	}
	if _, err := r.Resolve(NoPair); !errors.Is(err, ErrUnknownPair) {
		t.Errorf("Expected ErrUnknownPair for NoPair, got %v", err)
	}
}

func TestPaletteOverride(t *testing.T) {
	r := NewRegistry(Palette{
		WhiteOnGreen: {Background: lipgloss.Color("#00ff00")},
	})
	if err := r.RegisterDefaults(); err != nil {
		t.Fatal(err)
	}
	style, _ := r.Resolve(WhiteOnGreen)
	fg, bg, _ := style.Decompose()
	if fg != tcell.PaletteColor(7) {
		t.Errorf("Expected foreground kept from defaults, got %v", fg)
	}
	if bg != tcell.GetColor("#00ff00") {
		t.Errorf("Expected overridden background, got %v", bg)
	}
}

func TestRegisterBadColor(t *testing.T) {
	r := NewRegistry(Palette{BlackOnWhite: {Foreground: lipgloss.Color("not-a-color")}})
	if err := r.RegisterDefaults(); err == nil {
		t.Fatal("Expected error for unknown color")
	}
	if r.Registered() {
		t.Error("Expected failed registration to leave registry empty")
	}
}

func TestParsePairID(t *testing.T) {
	id, err := ParsePairID("white_on_green")
	if err != nil || id != WhiteOnGreen {
		t.Errorf("ParsePairID = %v, %v", id, err)
	}
	if _, err := ParsePairID("purple"); !errors.Is(err, ErrUnknownPair) {
		t.Errorf("Expected ErrUnknownPair, got %v", err)
	}
}

func TestRenderTable(t *testing.T) {
	out := DefaultStyles.RenderTable(
		[]string{"ID", "Hours"},
		[][]string{{"1001", "1.50"}, {"1002", "0.25"}},
	)
	for _, want := range []string{"ID", "Hours", "1001", "1002", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q:\n%s", want, out)
		}
	}

	if got := DefaultStyles.RenderTable([]string{"ID"}, nil); !strings.Contains(got, "no entries") {
		t.Errorf("Expected empty marker, got %q", got)
	}
}
