package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Номер телефона это персональные данные: сырые и канонические значения
// в дампах запросов/ответов в логи не попадают.
//
//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	// JSON fields.
	regexp.MustCompile(`(?s)("raw":\s?").+?(")`),
	regexp.MustCompile(`(?s)("previous":\s?").+?(")`),
	regexp.MustCompile(`(?s)("value":\s?").+?(")`),
	regexp.MustCompile(`(?s)("digits":\s?").+?(")`),
	regexp.MustCompile(`(?s)("whatsappLink":\s?").+?(")`),
	regexp.MustCompile(`(?s)("telegramLink":\s?").+?(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
