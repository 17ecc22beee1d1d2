package world

import "rpg-world/internal/domain"

//go:generate mockgen -destination=mock/scheduler.go -package=mockworld rpg-world/internal/world Scheduler

// VisibilityEngine - сетка клеток и расчет поля зрения над ней.
// Реализация по умолчанию - terrain.Grid.
type VisibilityEngine interface {
	Width() int
	Height() int
	// ComputeFov помечает клетки, видимые из (x, y) в радиусе radius.
	ComputeFov(x, y, radius int, lightWalls bool)
	IsInFov(x, y int) bool
	Cell(x, y int) domain.Cell
	// Cells - один полный проход по сетке.
	Cells() []domain.Cell
	SetCellProperties(x, y int, transparent, walkable, explored bool)
}

// Scheduler - очередь ходов. Порядок ходов - ее забота, мир только
// регистрирует и снимает акторов. Ошибка означает, что очередь не изменилась.
type Scheduler interface {
	Add(a domain.Schedulable) error
	Remove(a domain.Schedulable) error
}

// Random - источник случайности (*rand.Rand подходит).
type Random interface {
	Intn(n int) int
}
