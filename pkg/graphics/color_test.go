package graphics

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#ff0000", ColorRed},
		{"#f00", ColorRed},
		{"ff0000", ColorRed},
		{"#336699", RGB(0x33, 0x66, 0x99)},
		{"#336699cc", RGBA8(0x33, 0x66, 0x99, 0xcc)},
		{"#FFFFFF", ColorWhite},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.input)
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %08X, want %08X", tt.input, uint32(got), uint32(tt.want))
		}
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, input := range []string{"", "#", "#12345", "#gg0000", "not a color"} {
		if _, err := ParseHex(input); err == nil {
			t.Errorf("ParseHex(%q) should fail", input)
		}
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustParseHex to panic on invalid input")
		}
	}()
	MustParseHex("#nothex")
}

func TestHexRoundTrip(t *testing.T) {
	colors := []Color{ColorRed, ColorWhite, RGB(0x12, 0x34, 0x56), RGBA8(0x12, 0x34, 0x56, 0x78)}
	for _, c := range colors {
		parsed, err := ParseHex(c.Hex())
		if err != nil {
			t.Errorf("ParseHex(%q) returned error: %v", c.Hex(), err)
			continue
		}
		if parsed != c {
			t.Errorf("round trip %08X -> %q -> %08X", uint32(c), c.Hex(), uint32(parsed))
		}
	}
}

func TestHexFormat(t *testing.T) {
	if got := ColorRed.Hex(); got != "#ff0000" {
		t.Errorf("opaque Hex = %q, want #ff0000", got)
	}
	if got := RGBA8(0xff, 0, 0, 0x80).Hex(); got != "#ff000080" {
		t.Errorf("translucent Hex = %q, want #ff000080", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := ColorRed.WithAlpha(0.5)
	if got := uint8(c >> 24); got != 128 {
		t.Errorf("alpha byte = %d, want 128", got)
	}
	if uint32(c)&0x00FFFFFF != 0x00FF0000 {
		t.Error("WithAlpha should not change color channels")
	}
}

func TestRGBAImplementsColorInterface(t *testing.T) {
	r, g, b, a := ColorWhite.RGBA()
	if r != 0xFFFF || g != 0xFFFF || b != 0xFFFF || a != 0xFFFF {
		t.Errorf("white RGBA = (%d, %d, %d, %d), want all 0xFFFF", r, g, b, a)
	}

	// Full channels premultiplied by alpha collapse to the alpha value.
	r, _, _, a = RGBA8(0xFF, 0, 0, 0x80).RGBA()
	if r != a {
		t.Errorf("premultiplied red = %d, want alpha %d", r, a)
	}
}

func TestRGBAF(t *testing.T) {
	r, g, b, a := RGBA8(255, 0, 0, 255).RGBAF()
	if r != 1 || g != 0 || b != 0 || a != 1 {
		t.Errorf("RGBAF = (%v, %v, %v, %v), want (1, 0, 0, 1)", r, g, b, a)
	}
}
