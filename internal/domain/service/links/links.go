// Package links собирает внешние ссылки на мессенджеры для готового номера.
// Потребитель канонического значения, к ядру форматирования отношения не имеет.
package links

import (
	"net/url"

	"phone-input/internal/domain/value"
)

const defaultGreeting = "Здравствуйте!"

type Builder struct {
	greeting string
}

func NewBuilder() Builder {
	return Builder{greeting: defaultGreeting}
}

func (b Builder) WithGreeting(greeting string) Builder {
	b.greeting = greeting
	return b
}

// WhatsApp строит диплинк wa.me: только цифры номера плюс приветствие
// в query-параметре.
func (b Builder) WhatsApp(phone value.PhoneValue) string {
	digits := phone.Digits()
	if digits == "" {
		return ""
	}

	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + digits,
		RawQuery: url.Values{"text": []string{b.greeting}}.Encode(),
	}

	return u.String()
}

// Telegram строит ссылку t.me по значению как есть.
func (b Builder) Telegram(phone value.PhoneValue) string {
	if phone.IsEmpty() {
		return ""
	}

	return "https://t.me/" + phone.String()
}
