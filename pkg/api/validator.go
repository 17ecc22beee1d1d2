package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p DirectionPayload) Validate() error {
	if p.Dx == 0 && p.Dy == 0 {
		return errors.New("movement vector cannot be zero")
	}
	if p.Dx < -1 || p.Dx > 1 || p.Dy < -1 || p.Dy > 1 {
		return errors.New("movement step too large")
	}
	return nil
}

func (c ClientCommand) Validate() error {
	switch c.Action {
	case ActionWait, ActionInit:
		return nil
	case ActionMove:
		_, err := DecodePayload[DirectionPayload](c.Payload)
		return err
	case "":
		return errors.New("action is required")
	}
	return fmt.Errorf("unknown action %q", c.Action)
}

// DecodePayload разбирает и проверяет payload команды
func DecodePayload[T Validator](raw json.RawMessage) (T, error) {
	var p T
	if len(raw) == 0 {
		return p, errors.New("payload is required")
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode payload: %w", err)
	}
	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid payload: %w", err)
	}
	return p, nil
}
