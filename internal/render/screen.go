package render

import "github.com/gdamore/tcell/v2"

// ScreenSurface - прямоугольное окно на терминальном экране tcell.
// Карта и панель статистики - два разных окна одного экрана.
type ScreenSurface struct {
	screen        tcell.Screen
	x, y          int
	width, height int
}

func NewScreenSurface(screen tcell.Screen, x, y, width, height int) *ScreenSurface {
	return &ScreenSurface{screen: screen, x: x, y: y, width: width, height: height}
}

// Set реализует Surface. Координаты локальные для окна.
func (s *ScreenSurface) Set(x, y int, fg, bg Color, glyph rune) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	s.screen.SetContent(s.x+x, s.y+y, glyph, nil, style)
}

// Clear заливает окно черным
func (s *ScreenSurface) Clear() {
	for y := 0; y < s.height; y++ {
		Fill(s, 0, y, s.width, tcell.ColorBlack)
	}
}
