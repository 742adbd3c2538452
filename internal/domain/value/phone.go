package value

import "strings"

// Kind результат классификации номера. Вычисляется на каждый ввод,
// никогда не сохраняется.
type Kind string

const (
	KindDomestic      Kind = "domestic"
	KindInternational Kind = "international"
)

func (k Kind) String() string {
	return string(k)
}

// PhoneValue каноническое значение поля телефона. Всегда одна из форм:
// пустая строка, маска РФ +7(XXX)XXX-XX-XX (возможно частичная при наборе),
// международный номер "+" и до 15 цифр, либо голые цифры (fallback при вставке
// без "+").
type PhoneValue string

func (p PhoneValue) String() string {
	return string(p)
}

func (p PhoneValue) IsEmpty() bool {
	return p == ""
}

// Digits возвращает только цифры значения, в исходном порядке.
func (p PhoneValue) Digits() string {
	var b strings.Builder

	for i := 0; i < len(p); i++ {
		if p[i] >= '0' && p[i] <= '9' {
			b.WriteByte(p[i])
		}
	}

	return b.String()
}

// Kind определяет ветку форматирования, которой принадлежит значение.
// Значение в маске РФ и любое значение с ведущим +7 считается домашним.
func (p PhoneValue) Kind() Kind {
	if strings.HasPrefix(string(p), "+") && !strings.HasPrefix(string(p), "+7") {
		return KindInternational
	}

	return KindDomestic
}
