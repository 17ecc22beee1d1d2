package domain

// Cell - состояние одной клетки сетки.
// IsExplored монотонен: однажды став true, больше не сбрасывается.
// IsInFov пересчитывается при каждом расчете поля зрения.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`

	IsTransparent bool `json:"isTransparent"`
	// IsWalkable = проходимый рельеф И клетку никто не занимает.
	IsWalkable bool `json:"isWalkable"`
	IsExplored bool `json:"isExplored"`
	IsInFov    bool `json:"isInFov"`
}

// FovView - то, что нужно актору, чтобы нарисовать себя.
type FovView interface {
	Cell(x, y int) Cell
	IsInFov(x, y int) bool
}
