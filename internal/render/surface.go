package render

import "github.com/gdamore/tcell/v2"

// Color - цвет клетки консоли. Берем палитру tcell, чтобы один и тот же
// кадр можно было отдать и в терминал, и в веб-клиент (через Hex()).
type Color = tcell.Color

// Surface принимает команды отрисовки. Как именно они показываются
// (терминал, буфер в памяти, websocket) - не забота мира.
type Surface interface {
	Set(x, y int, fg, bg Color, glyph rune)
}

// Print пишет строку посимвольно начиная с (x, y).
func Print(s Surface, x, y int, text string, fg, bg Color) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, fg, bg, r)
		i++
	}
}

// Fill закрашивает фон горизонтальной полосы длиной width (для полосок здоровья).
func Fill(s Surface, x, y, width int, bg Color) {
	for i := 0; i < width; i++ {
		s.Set(x+i, y, bg, bg, ' ')
	}
}

// Раскладка экрана (в клетках)
const (
	ScreenWidth  = 100
	ScreenHeight = 70

	MapWidth  = 80
	MapHeight = 48

	MessageWidth  = 80
	MessageHeight = 11

	StatWidth  = 20
	StatHeight = 70

	InventoryWidth  = 80
	InventoryHeight = 11
)
