package tests

import (
	"math/rand"
	"time"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	// Digits возвращает случайную строку из n десятичных цифр.
	Digits func(n int) string
	// DigitsFirst то же, но с заданной первой цифрой.
	DigitsFirst func(first byte, n int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	digits := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = byte('0' + random.Intn(10)) //nolint:mnd // skip
		}
		return string(b)
	}

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Digits:  digits,
		DigitsFirst: func(first byte, n int) string {
			if n == 0 {
				return ""
			}
			return string(first) + digits(n-1)
		},
	}
}
