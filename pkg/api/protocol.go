package api

import (
	"encoding/json"
)

// Действия клиента
const (
	ActionMove = "MOVE"
	ActionWait = "WAIT"
	ActionInit = "INIT"
)

// Типы сообщений сервера
const (
	TypeFrame = "FRAME"
	TypeError = "ERROR"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - кадр, который сервер рассылает подписчикам после каждого хода.
type ServerResponse struct {
	// Type - FRAME или ERROR.
	Type string `json:"type"`

	// Tick текущее время планировщика.
	Tick int `json:"tick"`

	// Grid размеры карты, чтобы клиент подготовил сетку.
	Grid *GridMeta `json:"grid,omitempty"`

	// Glyphs - карта построчно: символ и цвет упакованы в uint32
	// (младший байт - ASCII, старшие три - RGB). 0 - клетка не исследована.
	Glyphs []uint32 `json:"glyphs,omitempty"`

	// Backgrounds - RGB фона для каждой клетки Glyphs.
	Backgrounds []uint32 `json:"backgrounds,omitempty"`

	// Player состояние героя.
	Player *ActorView `json:"player,omitempty"`

	// Monsters - только монстры в поле зрения игрока.
	Monsters []ActorView `json:"monsters,omitempty"`

	// Logs - последние сообщения игрового журнала.
	Logs []LogEntry `json:"logs,omitempty"`

	// Error - текст ошибки для Type == ERROR.
	Error string `json:"error,omitempty"`
}

// GridMeta содержит общие размеры карты.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// ActorView - DTO актора (игрока или монстра).
type ActorView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Color  string `json:"color"`

	Pos PositionPayload `json:"pos"`

	Stats StatsView `json:"stats"`
}

// StatsView - характеристики актора.
type StatsView struct {
	HP            int `json:"hp"`
	MaxHP         int `json:"maxHp"`
	Attack        int `json:"attack"`
	AttackChance  int `json:"attackChance"`
	Defense       int `json:"defense"`
	DefenseChance int `json:"defenseChance"`
	Gold          int `json:"gold,omitempty"`
	Awareness     int `json:"awareness"`
	Speed         int `json:"speed"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, MOVE, AI, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// QueueEntryView - одна запись очереди ходов (debug).
type QueueEntryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Tick int    `json:"next_tick"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия: MOVE, WAIT, INIT.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// PositionPayload - точка на карте.
type PositionPayload struct {
	X int `json:"x"`
	Y int `json:"y"`
}
