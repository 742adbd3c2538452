package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	// Коды модуля телефонного поля
	FieldNotFound    failure.ErrorCode = "FieldNotFound"    // Поле в хранилище сессий не найдено
	InvalidSessionID failure.ErrorCode = "InvalidSessionID" // Пришёл мусор вместо ID сессии
	InvalidFieldID   failure.ErrorCode = "InvalidFieldID"   // Пустой или слишком длинный ID поля
	InvalidInputKind failure.ErrorCode = "InvalidInputKind" // inputKind не typed и не pasted
	InvalidPhoneLink failure.ErrorCode = "InvalidPhoneLink" // Ссылку не построить: значение без цифр
)
