package domain

import "github.com/google/uuid"

// IDGenerator выдает идентификаторы актеров. Подменяется в тестах.
type IDGenerator interface {
	New() string
}

type uuidGenerator struct{}

func (uuidGenerator) New() string {
	return uuid.New().String()
}

// IDs - генератор по умолчанию
var IDs IDGenerator = uuidGenerator{}
