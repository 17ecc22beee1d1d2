package domain

import (
	"rpg-world/internal/render"
)

// Раскладка строк монстров в панели статистики
const (
	monsterStatsTop   = 13
	monsterStatsStep  = 2
	healthBarX        = 3
	healthBarWidth    = 16
	monsterStatsWidth = render.StatWidth
)

// Monster - актор под управлением ИИ.
type Monster struct {
	Character

	// TurnsAlerted - сколько ходов монстр еще помнит игрока после потери из виду.
	// 0 - монстр спокоен.
	TurnsAlerted int `json:"turnsAlerted"`
}

// NewMonster создает монстра на позиции pos
func NewMonster(name string, symbol rune, color render.Color, stats Stats, pos Point) *Monster {
	m := &Monster{Character: Character{
		ID:     IDs.New(),
		Name:   name,
		Symbol: symbol,
		Color:  color,
		Stats:  stats,
	}}
	m.SetPosition(pos)
	return m
}

// DrawStats рисует строку монстра номер position: символ, имя и полоску здоровья.
func (m *Monster) DrawStats(s render.Surface, position int) {
	y := monsterStatsTop + position*monsterStatsStep
	filled := int(m.HealthRatio() * healthBarWidth)

	// Фон строки: заполненная часть полоски, пустая часть, остальное черное
	bgAt := func(x int) render.Color {
		switch {
		case x >= healthBarX && x < healthBarX+filled:
			return render.Primary
		case x >= healthBarX && x < healthBarX+healthBarWidth:
			return render.PrimaryDarkest
		}
		return render.FloorBackground
	}

	render.Fill(s, healthBarX, y, filled, render.Primary)
	render.Fill(s, healthBarX+filled, y, healthBarWidth-filled, render.PrimaryDarkest)

	s.Set(1, y, m.Color, bgAt(1), m.Symbol)

	x := 2
	for _, r := range ": " + m.Name {
		if x >= monsterStatsWidth {
			break
		}
		s.Set(x, y, render.DbLight, bgAt(x), r)
		x++
	}
}
