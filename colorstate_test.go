package drawable

import "testing"

func TestColorStateList(t *testing.T) {
	l, err := NewColorStateList(
		[][]State{
			{StatePressed},
			{StateEnabled, -StateChecked},
			{},
		},
		[]Color{0xffff0000, 0xff00ff00, 0xff0000ff},
	)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		state []State
		want  Color
	}{
		{"pressed wins first", []State{StateEnabled, StatePressed}, 0xffff0000},
		{"enabled unchecked", []State{StateEnabled}, 0xff00ff00},
		{"enabled checked falls through", []State{StateEnabled, StateChecked}, 0xff0000ff},
		{"empty state", nil, 0xff0000ff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ColorForState(tt.state, Transparent); got != tt.want {
				t.Errorf("ColorForState(%v) = %v, want %v", tt.state, got, tt.want)
			}
		})
	}

	if got := l.DefaultColor(); got != 0xff0000ff {
		t.Errorf("DefaultColor() = %v, want wildcard colour #ff0000ff", got)
	}
	if !l.IsStateful() {
		t.Error("IsStateful() = false, want true")
	}
}

func TestColorStateListFallback(t *testing.T) {
	l, err := NewColorStateList([][]State{{StateFocused}}, []Color{White})
	if err != nil {
		t.Fatal(err)
	}
	if got := l.ColorForState(nil, 0xff123456); got != 0xff123456 {
		t.Errorf("ColorForState with no match = %v, want fallback", got)
	}
	if got := l.DefaultColor(); got != White {
		t.Errorf("DefaultColor() = %v, want first colour", got)
	}
}

func TestColorStateListMismatch(t *testing.T) {
	if _, err := NewColorStateList([][]State{{}}, nil); err == nil {
		t.Error("NewColorStateList with 1 spec and 0 colours succeeded")
	}
}

func TestColorStateListOf(t *testing.T) {
	l := ColorStateListOf(0xff336699)
	if l.IsStateful() {
		t.Error("single colour list reports stateful")
	}
	if got := l.ColorForState([]State{StatePressed}, Transparent); got != 0xff336699 {
		t.Errorf("ColorForState = %v, want #ff336699", got)
	}

	half := l.WithAlpha(0x80)
	if got := half.DefaultColor(); got != 0x80336699 {
		t.Errorf("WithAlpha(0x80).DefaultColor() = %v, want #80336699", got)
	}
	if got := l.DefaultColor(); got != 0xff336699 {
		t.Errorf("WithAlpha changed the original to %v", got)
	}
}

func TestStateNames(t *testing.T) {
	tests := []struct {
		in   string
		want State
	}{
		{"pressed", StatePressed},
		{"state_window_focused", StateWindowFocused},
		{" State_Checked ", StateChecked},
	}
	for _, tt := range tests {
		got, err := ParseState(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseState(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseState("sleepy"); err == nil {
		t.Error(`ParseState("sleepy") succeeded`)
	}
	if got := (-StateHovered).String(); got != "!hovered" {
		t.Errorf("(-StateHovered).String() = %q, want !hovered", got)
	}
}
