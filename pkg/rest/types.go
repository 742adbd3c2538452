// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// FormatRequest запрос на нормализацию сырого ввода.
type FormatRequest struct {
	// Raw сырой текст поля (набор) либо содержимое буфера (вставка)
	Raw string `json:"raw"`

	// Previous последнее принятое значение поля
	Previous string `json:"previous,omitempty"`

	// InputKind источник изменения: typed | pasted
	InputKind string `json:"inputKind" validate:"omitempty,oneof=typed pasted"`
}

// FormatResult каноническое значение после нормализации.
type FormatResult struct {
	Value  string `json:"value"`
	Kind   string `json:"kind"`
	Digits string `json:"digits"`
}

// BatchFormatRequest пакетная нормализация.
type BatchFormatRequest struct {
	Items []FormatRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

type BatchFormatResult struct {
	Items []FormatResult `json:"items"`
}

// FieldUpdateRequest изменение значения поля в сессии формы.
type FieldUpdateRequest struct {
	Raw       string `json:"raw"`
	InputKind string `json:"inputKind" validate:"omitempty,oneof=typed pasted"`
}

// Field текущее состояние поля плюс исходящие ссылки на мессенджеры.
type Field struct {
	SessionID string `json:"sessionId"`
	FieldID   string `json:"fieldId"`
	Value     string `json:"value"`
	Kind      string `json:"kind"`
	WhatsApp  string `json:"whatsappLink,omitempty"`
	Telegram  string `json:"telegramLink,omitempty"`
}

// Links исходящие ссылки для готового значения.
type Links struct {
	WhatsApp string `json:"whatsappLink"`
	Telegram string `json:"telegramLink"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
