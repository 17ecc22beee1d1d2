package domain

import (
	"fmt"

	"rpg-world/internal/render"
)

// Player - единственный актор, которым управляет человек.
type Player struct {
	Character
}

// NewPlayer создает игрока на позиции pos
func NewPlayer(name string, stats Stats, pos Point) *Player {
	p := &Player{Character: Character{
		ID:     IDs.New(),
		Name:   name,
		Symbol: '@',
		Color:  render.PlayerColor,
		Stats:  stats,
	}}
	p.SetPosition(pos)
	return p
}

// DefaultPlayerStats - стартовые характеристики героя
func DefaultPlayerStats(awareness int) Stats {
	return Stats{
		Health:        100,
		MaxHealth:     100,
		Attack:        2,
		AttackChance:  50,
		Defense:       2,
		DefenseChance: 40,
		Gold:          0,
		Awareness:     awareness,
		Speed:         10,
	}
}

// DrawStats выводит блок характеристик игрока в панель статистики.
func (p *Player) DrawStats(s render.Surface) {
	bg := render.FloorBackground
	render.Print(s, 1, 1, fmt.Sprintf("Name:    %s", p.Name), render.Text, bg)
	render.Print(s, 1, 3, fmt.Sprintf("Health:  %d/%d", p.Health, p.MaxHealth), render.Text, bg)
	render.Print(s, 1, 5, fmt.Sprintf("Attack:  %d (%d%%)", p.Attack, p.AttackChance), render.Text, bg)
	render.Print(s, 1, 7, fmt.Sprintf("Defense: %d (%d%%)", p.Defense, p.DefenseChance), render.Text, bg)
	render.Print(s, 1, 9, fmt.Sprintf("Gold:    %d", p.Gold), render.Gold, bg)
}
