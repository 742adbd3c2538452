package config

import "time"

// FormState выбор хранилища состояния формы и срок жизни значения поля.
type FormState struct {
	Backend  string        `env:"FORMSTATE_BACKEND" envDefault:"memory"`
	FieldTTL time.Duration `env:"FORMSTATE_FIELD_TTL" envDefault:"30m"`
}
