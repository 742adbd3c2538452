// Package phonefmt нормализует пользовательский ввод номера телефона.
//
// Две ступени на каждое изменение поля: классификатор решает, домашний это
// номер (РФ, код страны 7) или международный, форматтер приводит значение к
// канонической строке. Все функции чистые и тотальные: любая строка на входе
// даёт строку на выходе, ошибок здесь не бывает.
package phonefmt

import (
	"strings"

	"phone-input/internal/domain/value"
)

const (
	// Максимум цифр в номере РФ: 7 + код + номер.
	maxDigitsRU = 11
	// Максимум цифр международного номера (E.164).
	maxDigitsInternational = 15
)

// Digits оставляет от строки только десятичные цифры, порядок сохраняется.
func Digits(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}

	return b.String()
}

// IsInternational решает, считать ли ввод международным номером.
// Правила в порядке приоритета, первое совпадение выигрывает:
//
//  1. ведущий "+" не из "+7" — однозначно международный;
//  2. больше 11 цифр и первая не 7/8 — международный;
//  3. больше 10 цифр и первая не 7/8 — международный;
//  4. иначе домашний.
//
// Известное ограничение: иностранные номера, начинающиеся с 7 или 8,
// правило 4 относит к домашним. Это осознанная эвристика, не баг.
func IsInternational(raw string, digits string) bool {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "+") && !strings.HasPrefix(trimmed, "+7") {
		return true
	}

	startsRU := strings.HasPrefix(digits, "7") || strings.HasPrefix(digits, "8")

	if len(digits) > maxDigitsRU && !startsRU {
		return true
	}

	if len(digits) > maxDigitsRU-1 && !startsRU {
		return true
	}

	return false
}

// Classify возвращает ветку форматирования для ввода.
func Classify(raw string, digits string) value.Kind {
	if IsInternational(raw, digits) {
		return value.KindInternational
	}

	return value.KindDomestic
}

// FormatRU накладывает маску +7(XXX)XXX-XX-XX на цифры номера.
//
// Предобработка: 11 цифр с ведущей 8 — восьмёрка меняется на 7 (привычная
// запись кода страны), ровно 10 цифр — 7 дописывается спереди, всё сверх
// 11 цифр отбрасывается. Если после этого номер не начинается с 7, цифры
// возвращаются как есть: чужой номер маской РФ не калечим.
func FormatRU(digits string) string {
	if len(digits) == maxDigitsRU && digits[0] == '8' {
		digits = "7" + digits[1:]
	}

	if len(digits) == maxDigitsRU-1 {
		digits = "7" + digits
	}

	if len(digits) > maxDigitsRU {
		digits = digits[:maxDigitsRU]
	}

	if digits != "" && digits[0] != '7' {
		return digits
	}

	switch n := len(digits); {
	case n <= 1:
		return "+7"
	case n <= 4:
		return "+7(" + digits[1:]
	case n <= 7:
		return "+7(" + digits[1:4] + ")" + digits[4:]
	case n <= 9:
		return "+7(" + digits[1:4] + ")" + digits[4:7] + "-" + digits[7:]
	default:
		return "+7(" + digits[1:4] + ")" + digits[4:7] + "-" + digits[7:9] + "-" + digits[9:]
	}
}

// NormalizeInternational приводит ввод к виду "+" и до 15 цифр.
// Ведущий "+" добавляется всегда, был он в исходном тексте или нет.
func NormalizeInternational(raw string) string {
	digits := Digits(raw)

	if len(digits) > maxDigitsInternational {
		digits = digits[:maxDigitsInternational]
	}

	if digits == "" {
		return ""
	}

	return "+" + digits
}

// OnTypedChange обрабатывает набор с клавиатуры: текущий сырой текст поля
// превращается в следующее каноническое значение. Удаление символов отдельно
// не обрабатывается: уменьшение числа цифр естественно проходит через ту же
// таблицу маски.
func OnTypedChange(raw string, _ value.PhoneValue) value.PhoneValue {
	if raw == "" {
		return ""
	}

	digits := Digits(raw)
	if digits == "" {
		return ""
	}

	if IsInternational(raw, digits) {
		return value.PhoneValue(NormalizeInternational(raw))
	}

	return value.PhoneValue(FormatRU(digits))
}

// OnPaste обрабатывает вставку из буфера: вставленный текст целиком заменяет
// значение поля, со старым содержимым он не сливается. Вставка без единой
// цифры — no-op, прежнее значение остаётся.
func OnPaste(pasted string, previous value.PhoneValue) value.PhoneValue {
	digits := Digits(pasted)
	if digits == "" {
		return previous
	}

	trimmed := strings.TrimSpace(pasted)

	if strings.HasPrefix(trimmed, "+") && !strings.HasPrefix(trimmed, "+7") {
		return value.PhoneValue(NormalizeInternational(pasted))
	}

	startsRU := strings.HasPrefix(digits, "7") || strings.HasPrefix(digits, "8")

	if len(digits) == maxDigitsRU && startsRU {
		return value.PhoneValue(FormatRU(digits))
	}

	if len(digits) == maxDigitsRU-1 {
		return value.PhoneValue(FormatRU(digits))
	}

	if len(digits) > maxDigitsRU-1 && !startsRU {
		return value.PhoneValue(NormalizeInternational(pasted))
	}

	if len(digits) > maxDigitsInternational {
		digits = digits[:maxDigitsInternational]
	}

	if strings.Contains(pasted, "+") {
		return value.PhoneValue("+" + digits)
	}

	return value.PhoneValue(digits)
}

// InputKind источник изменения поля.
type InputKind string

const (
	InputKindTyped  InputKind = "typed"
	InputKindPasted InputKind = "pasted"
)

// Next единая точка входа: rawInput × previousValue × inputKind → canonical.
func Next(raw string, previous value.PhoneValue, kind InputKind) value.PhoneValue {
	if kind == InputKindPasted {
		return OnPaste(raw, previous)
	}

	return OnTypedChange(raw, previous)
}
