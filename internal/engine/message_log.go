package engine

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"rpg-world/internal/render"
	"rpg-world/pkg/api"
	"rpg-world/pkg/logger"
)

// MaxMessageLines - сколько строк журнала помещается в панель сообщений
const MaxMessageLines = 9

// Типы записей журнала
const (
	LogInfo = "INFO"
	LogMove = "MOVE"
	LogAI   = "AI"
)

// MessageLog - журнал последних событий партии
type MessageLog struct {
	entries []api.LogEntry
	max     int
	seq     int
}

func NewMessageLog(max int) *MessageLog {
	return &MessageLog{max: max}
}

// Add добавляет запись, самые старые вытесняются
func (l *MessageLog) Add(text, logType string) {
	l.seq++
	l.entries = append(l.entries, api.LogEntry{
		ID:        strconv.Itoa(l.seq),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
	if len(l.entries) > l.max {
		l.entries = l.entries[len(l.entries)-l.max:]
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "game_log",
		"log_type":  logType,
	}).Info(text)
}

// Entries возвращает копию записей, от старых к новым
func (l *MessageLog) Entries() []api.LogEntry {
	out := make([]api.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Draw печатает журнал построчно с первой строки
func (l *MessageLog) Draw(s render.Surface) {
	for i, e := range l.entries {
		render.Print(s, 1, i+1, e.Text, render.Text, render.FloorBackground)
	}
}
