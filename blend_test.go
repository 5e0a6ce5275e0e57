package drawable

import (
	"errors"
	"testing"
)

func TestParseBlendMode(t *testing.T) {
	tests := []struct {
		in   string
		want BlendMode
	}{
		{"src_in", BlendSrcIn},
		{"SRC_ATOP", BlendSrcAtop},
		{" multiply ", BlendMultiply},
		{"overlay", BlendOverlay},
		{"3", BlendSrcOver},
		{"5", BlendSrcIn},
		{"9", BlendSrcAtop},
		{"14", BlendMultiply},
		{"15", BlendScreen},
		{"16", BlendAdd},
	}
	for _, tt := range tests {
		got, err := ParseBlendMode(tt.in)
		if err != nil {
			t.Errorf("ParseBlendMode(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBlendMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "bogus", "4", "-1"} {
		if _, err := ParseBlendMode(in); !errors.Is(err, ErrUnknownBlendMode) {
			t.Errorf("ParseBlendMode(%q) error = %v, want ErrUnknownBlendMode", in, err)
		}
	}
}

func TestBlendModeString(t *testing.T) {
	if got := BlendSrcIn.String(); got != "src_in" {
		t.Errorf("BlendSrcIn.String() = %q, want src_in", got)
	}
	if got := BlendMode(200).String(); got != "BlendMode(200)" {
		t.Errorf("BlendMode(200).String() = %q", got)
	}
	for m := BlendClear; m <= BlendOverlay; m++ {
		back, err := ParseBlendMode(m.String())
		if err != nil || back != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v, want %v", m.String(), back, err, m)
		}
	}
}

func TestPorterDuffColorFilter(t *testing.T) {
	red := Color(0xffff0000)
	tests := []struct {
		name   string
		filter *PorterDuffColorFilter
		in     Color
		want   Color
	}{
		{"src_in opaque pixel", NewPorterDuffColorFilter(red, BlendSrcIn), 0xff0000ff, red},
		{"src_in keeps pixel alpha", NewPorterDuffColorFilter(red, BlendSrcIn), 0x800000ff, 0x80ff0000},
		{"src_in transparent pixel", NewPorterDuffColorFilter(red, BlendSrcIn), Transparent, Transparent},
		{"src_over opaque filter", NewPorterDuffColorFilter(red, BlendSrcOver), 0xff00ff00, red},
		{"dst ignores filter", NewPorterDuffColorFilter(red, BlendDst), 0xff123456, 0xff123456},
		{"clear", NewPorterDuffColorFilter(red, BlendClear), 0xff123456, Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Filter(tt.in); got != tt.want {
				t.Errorf("Filter(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
