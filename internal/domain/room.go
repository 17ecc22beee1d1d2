package domain

// Room - прямоугольник на сетке. Неизменяем после создания.
// Внутренность (без рамки в одну клетку) существует только при Width, Height >= 3.
type Room struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func NewRoom(x, y, width, height int) Room {
	return Room{X: x, Y: y, Width: width, Height: height}
}

// Center возвращает центр комнаты
func (r Room) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Intersects - пересекаются ли комнаты (касание рамками тоже считается)
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X+other.Width && r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height && r.Y+r.Height >= other.Y
}

// HasInterior - есть ли хоть одна клетка внутри рамки
func (r Room) HasInterior() bool {
	return r.Width >= 3 && r.Height >= 3
}

// InInterior - лежит ли мировая точка внутри рамки:
// локальные смещения [1, Width-2] x [1, Height-2].
func (r Room) InInterior(p Point) bool {
	lx, ly := p.X-r.X, p.Y-r.Y
	return lx >= 1 && lx <= r.Width-2 && ly >= 1 && ly <= r.Height-2
}

// Contains - лежит ли точка в прямоугольнике вместе с рамкой
func (r Room) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}
