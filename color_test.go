package drawable

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#f00", 0xffff0000},
		{"#8f00", 0x88ff0000},
		{"#336699", 0xff336699},
		{"#80336699", 0x80336699},
		{"#00000000", Transparent},
		{"  #FFFFFF ", White},
		{"tomato", 0xffff6347},
		{"Black", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#gggggg", "notacolour", "#-12345"} {
		if _, err := ParseColor(in); !errors.Is(err, errBadColor) {
			t.Errorf("ParseColor(%q) error = %v, want errBadColor", in, err)
		}
	}
}

func TestColorChannels(t *testing.T) {
	c := ARGB(0x12, 0x34, 0x56, 0x78)
	if c != 0x12345678 {
		t.Fatalf("ARGB = %v, want #12345678", c)
	}
	if c.A() != 0x12 || c.R() != 0x34 || c.G() != 0x56 || c.B() != 0x78 {
		t.Errorf("channels = %x %x %x %x, want 12 34 56 78", c.A(), c.R(), c.G(), c.B())
	}
	if got := c.WithAlpha(0xff); got != 0xff345678 {
		t.Errorf("WithAlpha(ff) = %v, want #ff345678", got)
	}
	if got := c.String(); got != "#12345678" {
		t.Errorf("String() = %q, want #12345678", got)
	}
	if got, want := c.NRGBA(), (color.NRGBA{R: 0x34, G: 0x56, B: 0x78, A: 0x12}); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestColorConversions(t *testing.T) {
	tests := []Color{Transparent, Black, White, 0x80ff8000, 0x01020304}
	for _, c := range tests {
		if got := fromRGBA(c.RGBA()); got != c {
			t.Errorf("fromRGBA(%v.RGBA()) = %v", c, got)
		}
		if got := FromColor(c.NRGBA()); got != c {
			t.Errorf("FromColor(%v.NRGBA()) = %v", c, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := clamp(5, 0, 3); got != 3 {
		t.Errorf("clamp(5, 0, 3) = %d, want 3", got)
	}
	if got := clamp(-1.5, 0, 1); got != 0 {
		t.Errorf("clamp(-1.5, 0, 1) = %v, want 0", got)
	}
	if got := clampAlpha(300); got != 255 {
		t.Errorf("clampAlpha(300) = %d, want 255", got)
	}
	if got := clampAlpha(-4); got != 0 {
		t.Errorf("clampAlpha(-4) = %d, want 0", got)
	}
}
