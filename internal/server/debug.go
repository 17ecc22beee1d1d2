package server

import (
	"encoding/json"
	"net/http"

	"rpg-world/internal/engine"
	"rpg-world/pkg/logger"
)

// DebugHandler предоставляет доступ к внутреннему состоянию инстанса.
// Все читается из последнего снимка, горутину инстанса не трогаем.
type DebugHandler struct {
	Instance *engine.Instance
}

func NewDebugHandler(i *engine.Instance) *DebugHandler {
	return &DebugHandler{Instance: i}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/monsters", h.handleMonsters)
	mux.HandleFunc("/debug/queue", h.handleTurnQueue)
	mux.HandleFunc("/debug/map", h.handleMap)
	mux.HandleFunc("/debug/recording", h.handleRecording)
}

// /debug/monsters - все монстры уровня, включая невидимых игроку
func (h *DebugHandler) handleMonsters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Instance.Snapshot().Monsters)
}

// /debug/queue - очередь ходов в порядке исполнения
func (h *DebugHandler) handleTurnQueue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Instance.Snapshot().Queue)
}

// /debug/map - карта глазами игрока. ?format=ansi - с цветами.
func (h *DebugHandler) handleMap(w http.ResponseWriter, r *http.Request) {
	snap := h.Instance.Snapshot()

	body := snap.MapText
	if r.URL.Query().Get("format") == "ansi" {
		body = snap.MapANSI
	}

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(body + "\n")); err != nil {
		logger.Log.WithError(err).Debug("debug map write failed")
	}
}

// /debug/recording - зерно и команды партии, их хватает для engine.Replay
func (h *DebugHandler) handleRecording(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Instance.Recording())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug-клиента)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		if _, err := w.Write([]byte("[]")); err != nil {
			logger.Log.WithError(err).Debug("debug write failed")
		}
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug write failed")
	}
}
