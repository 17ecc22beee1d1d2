package world

import "rpg-world/internal/domain"

// RoomIndex - упорядоченный список комнат уровня (в порядке генерации).
type RoomIndex struct {
	rooms []domain.Room
}

func (ri *RoomIndex) Add(r domain.Room) {
	ri.rooms = append(ri.rooms, r)
}

func (ri *RoomIndex) Len() int { return len(ri.rooms) }

// At возвращает i-ю комнату. Первая комната - стартовая.
func (ri *RoomIndex) At(i int) domain.Room { return ri.rooms[i] }

// All возвращает копию списка комнат
func (ri *RoomIndex) All() []domain.Room {
	out := make([]domain.Room, len(ri.rooms))
	copy(out, ri.rooms)
	return out
}

// Find возвращает первую комнату, содержащую точку (вместе с рамкой).
func (ri *RoomIndex) Find(p domain.Point) (domain.Room, int, bool) {
	for i, r := range ri.rooms {
		if r.Contains(p) {
			return r, i, true
		}
	}
	return domain.Room{}, -1, false
}
