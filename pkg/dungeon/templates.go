package dungeon

import (
	"rpg-world/internal/domain"
	"rpg-world/internal/render"
)

// MonsterTemplate - заготовка монстра. Характеристики задаются костями
// и бросаются при каждом появлении.
type MonsterTemplate struct {
	Name   string
	Symbol rune
	Color  render.Color

	Health        Dice
	Attack        Dice
	AttackChance  int
	Defense       Dice
	DefenseChance int
	Gold          Dice
	Awareness     int
	Speed         int
}

// Spawn создает монстра на позиции pos. Уровень подземелья усиливает
// здоровье и атаку.
func (t MonsterTemplate) Spawn(pos domain.Point, level int, rng Random) *domain.Monster {
	health := t.Health.Plus(level * 2).Roll(rng)
	stats := domain.Stats{
		Health:        health,
		MaxHealth:     health,
		Attack:        t.Attack.Plus(level / 2).Roll(rng),
		AttackChance:  t.AttackChance,
		Defense:       t.Defense.Roll(rng),
		DefenseChance: t.DefenseChance,
		Gold:          t.Gold.Roll(rng),
		Awareness:     t.Awareness,
		Speed:         t.Speed,
	}
	return domain.NewMonster(t.Name, t.Symbol, t.Color, stats, pos)
}

var Kobold = MonsterTemplate{
	Name:          "Kobold",
	Symbol:        'k',
	Color:         render.DbBrightWood,
	Health:        D(2, 5),
	Attack:        D(1, 3),
	AttackChance:  25,
	Defense:       D(1, 3),
	DefenseChance: 10,
	Gold:          D(5, 5),
	Awareness:     10,
	Speed:         14,
}

var Goblin = MonsterTemplate{
	Name:          "Goblin",
	Symbol:        'g',
	Color:         render.DbGrass,
	Health:        D(3, 5),
	Attack:        D(1, 4),
	AttackChance:  35,
	Defense:       D(1, 2),
	DefenseChance: 15,
	Gold:          D(3, 6),
	Awareness:     12,
	Speed:         12,
}

var Orc = MonsterTemplate{
	Name:          "Orc",
	Symbol:        'o',
	Color:         render.DbBlood,
	Health:        D(4, 6),
	Attack:        D(2, 3),
	AttackChance:  45,
	Defense:       D(2, 2),
	DefenseChance: 20,
	Gold:          D(4, 8),
	Awareness:     9,
	Speed:         16,
}

// MonsterTemplates - все доступные монстры
var MonsterTemplates = map[string]MonsterTemplate{
	"kobold": Kobold,
	"goblin": Goblin,
	"orc":    Orc,
}

// templateForLevel выбирает шаблон: чем глубже, тем чаще встречаются орки.
func templateForLevel(level int, rng Random) MonsterTemplate {
	roll := D(1, 10).Roll(rng) + level - 1
	switch {
	case roll >= 10:
		return Orc
	case roll >= 7:
		return Goblin
	default:
		return Kobold
	}
}
