package server

import (
	"phone-input/internal/domain/entity"
	"phone-input/pkg/rest"
)

func newRESTField(field entity.FormField) rest.Field {
	return rest.Field{
		SessionID: field.SessionID.String(),
		FieldID:   field.FieldID.String(),
		Value:     field.Value.String(),
		Kind:      field.Value.Kind().String(),
	}
}

func (s SessionServer) restFieldWithLinks(field entity.FormField) rest.Field {
	out := newRESTField(field)

	if !field.Value.IsEmpty() {
		out.WhatsApp = s.links.WhatsApp(field.Value)
		out.Telegram = s.links.Telegram(field.Value)
	}

	return out
}
