package types

import (
	"testing"
)

func TestMakeGlyph(t *testing.T) {
	tests := []struct {
		name     string
		colorRGB uint32
		char     byte
		want     Glyph
	}{
		{name: "wall in fov", colorRGB: 0x5D6169, char: '#', want: Glyph(0x5D616923)},
		{name: "remembered floor", colorRGB: 0x473E2D, char: '.', want: Glyph(0x473E2D2E)},
		{name: "player", colorRGB: 0xDEEED6, char: '@', want: Glyph(0xDEEED640)},
		{name: "color truncation", colorRGB: 0x12345678, char: 'k', want: Glyph(0x3456786B)},
		{name: "zero char", colorRGB: 0x808080, char: 0, want: Glyph(0x80808000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MakeGlyph(tt.colorRGB, tt.char); got != tt.want {
				t.Errorf("MakeGlyph() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestGlyph_RoundTrip(t *testing.T) {
	g := MakeGlyph(0xD27D2C, 'k')

	if g.Char() != 'k' {
		t.Errorf("Char() = %q, want 'k'", g.Char())
	}
	if g.Color() != 0xD27D2C {
		t.Errorf("Color() = 0x%06X, want 0xD27D2C", g.Color())
	}
	if g.HexColor() != "#D27D2C" {
		t.Errorf("HexColor() = %s, want #D27D2C", g.HexColor())
	}
}

func TestFromRune(t *testing.T) {
	if got := FromRune(0xFFFFFF, '@'); got.Char() != '@' {
		t.Errorf("ASCII rune lost: %v", got)
	}
	if got := FromRune(0xFFFFFF, '█'); got.Char() != '?' {
		t.Errorf("non-ASCII rune should become '?', got %v", got)
	}
}

func TestGlyph_String(t *testing.T) {
	tests := []struct {
		name string
		g    Glyph
		want string
	}{
		{name: "printable", g: MakeGlyph(0xFFA500, '#'), want: "Glyph{char='#', color=#FFA500}"},
		{name: "blank", g: Blank, want: "Glyph{char='\\x00', color=#000000}"},
		{name: "del", g: MakeGlyph(0x654321, 0x7F), want: "Glyph{char='\\x7F', color=#654321}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
