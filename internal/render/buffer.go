package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"rpg-world/internal/core/types"
)

// Cell - одна клетка буфера. Glyph == 0 означает, что в клетку ничего не рисовали.
type Cell struct {
	Glyph rune
	Fg    Color
	Bg    Color
}

// Buffer - Surface в памяти. Используется сервером (кадры по websocket),
// debug-эндпоинтами и тестами.
type Buffer struct {
	width, height int
	cells         []Cell
}

func NewBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

// Set реализует Surface. Все, что за границами буфера, отбрасывается (как у консоли).
func (b *Buffer) Set(x, y int, fg, bg Color, glyph rune) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = Cell{Glyph: glyph, Fg: fg, Bg: bg}
}

// At возвращает клетку. Вне границ - пустая клетка.
func (b *Buffer) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Clear стирает все клетки
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
}

// String - только символы, по строке на ряд, хвостовые пробелы обрезаны.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		row := make([]rune, b.width)
		for x := 0; x < b.width; x++ {
			row[x] = glyphOrSpace(b.cells[y*b.width+x].Glyph)
		}
		sb.WriteString(strings.TrimRight(string(row), " "))
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// ANSI рендерит буфер с цветами (для логов и /debug/map?format=ansi).
// Соседние клетки с одинаковым стилем склеиваются в один сегмент.
func (b *Buffer) ANSI() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		var run []rune
		var runCell Cell
		flush := func() {
			if len(run) == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(terminalColor(runCell.Fg)).
				Background(terminalColor(runCell.Bg))
			sb.WriteString(style.Render(string(run)))
			run = run[:0]
		}

		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if len(run) > 0 && (c.Fg != runCell.Fg || c.Bg != runCell.Bg) {
				flush()
			}
			runCell = c
			run = append(run, glyphOrSpace(c.Glyph))
		}
		flush()

		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Packed упаковывает кадр для отправки клиенту:
// символ+цвет в types.Glyph и отдельно RGB фона.
func (b *Buffer) Packed() ([]types.Glyph, []uint32) {
	glyphs := make([]types.Glyph, len(b.cells))
	backgrounds := make([]uint32, len(b.cells))
	for i, c := range b.cells {
		if c.Glyph == 0 {
			continue
		}
		glyphs[i] = types.FromRune(RGB(c.Fg), c.Glyph)
		backgrounds[i] = RGB(c.Bg)
	}
	return glyphs, backgrounds
}

// RGB возвращает цвет в виде 0xRRGGBB. ColorDefault и прочие "нецветные" значения дают 0.
func RGB(c Color) uint32 {
	h := c.Hex()
	if h < 0 {
		return 0
	}
	return uint32(h)
}

func terminalColor(c Color) lipgloss.TerminalColor {
	if c == tcell.ColorDefault || c.Hex() < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(fmt.Sprintf("#%06X", c.Hex()))
}

func glyphOrSpace(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}
