// Package formstate реализует внешнего владельца значения поля телефона:
// ядро форматирования остаётся чистым, текущее значение между событиями
// живёт в одном из хранилищ этого пакета. Интерфейс хранилища объявлен
// на стороне потребителя, в internal/domain/service/field.
package formstate

import (
	"phone-input/internal/domain/value"
)

func storeKey(sessionID value.SessionID, fieldID value.FieldID) string {
	return sessionID.String() + ":" + fieldID.String()
}
