package dungeon

import "fmt"

// Random - то, что нужно генератору от источника случайности.
type Random interface {
	Intn(n int) int
}

// Dice - бросок вида NdS (+Bonus)
type Dice struct {
	Count int
	Sides int
	Bonus int
}

// D - короткая запись: D(2, 5) == 2d5
func D(count, sides int) Dice {
	return Dice{Count: count, Sides: sides}
}

// Roll бросает кости. Пустые кости дают только бонус.
func (d Dice) Roll(rng Random) int {
	total := d.Bonus
	if d.Sides <= 0 {
		return total
	}
	for i := 0; i < d.Count; i++ {
		total += rng.Intn(d.Sides) + 1
	}
	return total
}

// Plus возвращает кости с увеличенным бонусом
func (d Dice) Plus(bonus int) Dice {
	d.Bonus += bonus
	return d
}

func (d Dice) String() string {
	switch {
	case d.Bonus > 0:
		return fmt.Sprintf("%dd%d+%d", d.Count, d.Sides, d.Bonus)
	case d.Bonus < 0:
		return fmt.Sprintf("%dd%d%d", d.Count, d.Sides, d.Bonus)
	}
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}
