package types

import (
	"fmt"
)

// Glyph - упакованный цветной символ клетки кадра (уходит клиенту по websocket).
// 32 бита:
//
//	[0:8]  - символ (ASCII) - маска 0xFF
//	[8:32] - RGB-цвет символа - маска 0xFFFFFF
//
// Фон клетки передается отдельным массивом, в uint32 он уже не влезает.
type Glyph uint32

// Blank - пустая клетка (неисследованная часть карты).
const Blank Glyph = 0

const (
	bitsChar  = 8
	bitsColor = 24

	shiftColor = bitsChar

	maskChar  = (1 << bitsChar) - 1  // 0xFF
	maskColor = (1 << bitsColor) - 1 // 0xFFFFFF
)

// MakeGlyph создает Glyph из RGB-цвета (0xRRGGBB) и символа.
//
//	glyph := MakeGlyph(0x484D55, '#') // 0x484D5523
func MakeGlyph(colorRGB uint32, char byte) Glyph {
	return Glyph((colorRGB&maskColor)<<shiftColor | (uint32(char) & maskChar))
}

// FromRune как MakeGlyph, но принимает руну.
// Все, что не помещается в ASCII, превращается в '?'.
func FromRune(colorRGB uint32, r rune) Glyph {
	if r < 0 || r > 0x7F {
		r = '?'
	}
	return MakeGlyph(colorRGB, byte(r))
}

// Color извлекает 24-битный RGB-цвет.
func (g Glyph) Color() uint32 {
	return uint32(g>>shiftColor) & maskColor
}

// Char извлекает символ.
func (g Glyph) Char() byte {
	return byte(g & maskChar)
}

// String реализует fmt.Stringer: "Glyph{char='#', color=#484D55}".
func (g Glyph) String() string {
	char := g.Char()
	charStr := string([]byte{char})

	// Для непечатаемых символов показываем hex
	if char < 32 || char > 126 {
		charStr = fmt.Sprintf("\\x%02X", char)
	}

	return fmt.Sprintf("Glyph{char='%s', color=%s}", charStr, g.HexColor())
}

// HexColor возвращает цвет в виде "#RRGGBB".
func (g Glyph) HexColor() string {
	return fmt.Sprintf("#%06X", g.Color())
}
