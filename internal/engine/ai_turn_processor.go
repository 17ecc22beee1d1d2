package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/domain"
)

// Сколько ходов монстр преследует игрока после того, как заметил его
const alertTurns = 15

// processAITurn - ход монстра: заметил игрока - идет к нему, иначе ждет.
func (g *Game) processAITurn(mon *domain.Monster) {
	pos := mon.Pos()

	if g.Map.IsInFov(pos.X, pos.Y) {
		if mon.TurnsAlerted == 0 {
			g.Messages.Add(fmt.Sprintf("%s is eager to fight %s", mon.Name, g.Player.Name), LogAI)
		}
		mon.TurnsAlerted = 1
	}

	if mon.TurnsAlerted == 0 {
		return
	}

	g.stepToward(mon, g.Player.Pos())

	mon.TurnsAlerted++
	if mon.TurnsAlerted > alertTurns {
		mon.TurnsAlerted = 0
	}
}

// stepToward делает шаг к цели: сначала по диагонали, потом по осям.
// Рядом с целью монстр стоит на месте.
func (g *Game) stepToward(mon *domain.Monster, target domain.Point) {
	pos := mon.Pos()
	if pos.IsAdjacent(target) {
		return
	}

	dx, dy := pos.StepToward(target)
	for _, step := range [][2]int{{dx, dy}, {dx, 0}, {0, dy}} {
		if step[0] == 0 && step[1] == 0 {
			continue
		}
		next := pos.Shift(step[0], step[1])
		if g.Map.SetActorPosition(mon, next.X, next.Y) {
			g.log.WithFields(logrus.Fields{
				"monster": mon.Name,
				"from":    pos,
				"to":      next,
			}).Debug("Монстр сделал шаг")
			return
		}
	}
}
