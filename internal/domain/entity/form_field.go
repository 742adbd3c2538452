package entity

import (
	"time"

	"phone-input/internal/domain/value"
)

// FormField хранимое состояние одного поля телефона во внешней форме.
// Ядро форматирования значением не владеет: оно получает текущее значение
// параметром и возвращает следующее, жизненный цикл — здесь.
type FormField struct {
	SessionID value.SessionID
	FieldID   value.FieldID
	Value     value.PhoneValue
	UpdatedAt time.Time
}
