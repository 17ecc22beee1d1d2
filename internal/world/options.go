package world

// DefaultSpawnAttempts - сколько случайных точек пробуем в комнате
const DefaultSpawnAttempts = 100

// Options - настраиваемые константы мира
type Options struct {
	// SpawnAttempts ограничивает случайный поиск свободной клетки в комнате.
	SpawnAttempts int
	// LightWalls - попадают ли в поле зрения стены, ограничивающие обзор.
	LightWalls bool
}

func DefaultOptions() Options {
	return Options{
		SpawnAttempts: DefaultSpawnAttempts,
		LightWalls:    true,
	}
}
