package domain

import (
	"rpg-world/internal/render"
)

// Schedulable - то, что можно поставить в очередь ходов.
// Стоимость хода (Time) определяет, как скоро актор сходит снова.
type Schedulable interface {
	Time() int
}

// Actor - общий контракт игрока и монстров: позиция, отрисовка, очередь ходов.
type Actor interface {
	Schedulable
	Pos() Point
	// SetPosition меняет только координаты. Занятость клеток поддерживает
	// world.Map, поэтому двигать размещенного актора нужно через него.
	SetPosition(p Point)
	Base() *Character
	Draw(s render.Surface, view FovView)
}

// Stats - характеристики персонажа
type Stats struct {
	Health        int `json:"health"`
	MaxHealth     int `json:"maxHealth"`
	Attack        int `json:"attack"`
	AttackChance  int `json:"attackChance"`
	Defense       int `json:"defense"`
	DefenseChance int `json:"defenseChance"`
	Gold          int `json:"gold"`
	Awareness     int `json:"awareness"` // Радиус обзора
	Speed         int `json:"speed"`     // Стоимость хода в тиках (меньше - быстрее)
}

// HealthRatio - доля здоровья в [0, 1]
func (s Stats) HealthRatio() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	r := float64(s.Health) / float64(s.MaxHealth)
	return min(max(r, 0), 1)
}

// Character - данные, общие для игрока и монстров.
// Player и Monster встраивают его по значению.
type Character struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Symbol rune         `json:"symbol"`
	Color  render.Color `json:"-"`
	Stats

	pos Point
}

func (c *Character) Pos() Point          { return c.pos }
func (c *Character) SetPosition(p Point) { c.pos = p }
func (c *Character) Base() *Character    { return c }

// Time - стоимость хода для планировщика, равна скорости.
func (c *Character) Time() int { return c.Speed }

// Draw рисует актора поверх клетки карты.
// Неисследованная клетка - ничего. Вне поля зрения - клетка по памяти (пол),
// самого актора не видно.
func (c *Character) Draw(s render.Surface, view FovView) {
	if !view.Cell(c.pos.X, c.pos.Y).IsExplored {
		return
	}

	if view.IsInFov(c.pos.X, c.pos.Y) {
		s.Set(c.pos.X, c.pos.Y, c.Color, render.FloorBackgroundFov, c.Symbol)
	} else {
		s.Set(c.pos.X, c.pos.Y, render.Floor, render.FloorBackground, '.')
	}
}
