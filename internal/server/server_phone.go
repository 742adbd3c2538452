package server

import (
	"fmt"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"phone-input/internal/domain/service/links"
	"phone-input/internal/domain/service/phonefmt"
	"phone-input/internal/domain/value"
	"phone-input/pkg/errcodes"
	"phone-input/pkg/httpx/reply"
	"phone-input/pkg/httpx/req"
	"phone-input/pkg/lox"
	"phone-input/pkg/rest"
)

// PhoneServer обслуживает stateless-нормализацию: пришёл сырой ввод,
// ушло каноническое значение. Состояние поля здесь не хранится.
type PhoneServer struct {
	links links.Builder
}

func NewPhoneServer(links links.Builder) PhoneServer {
	return PhoneServer{
		links: links,
	}
}

func (s PhoneServer) postV1PhoneFormat(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.FormatRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	kind, err := parseInputKind(request.InputKind)
	if err != nil {
		return err
	}

	result := formatOne(request, kind)

	observeFormat(result.Kind, string(kind))

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s PhoneServer) postV1PhoneFormatBatch(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.BatchFormatRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	items, err := lox.MapErr(request.Items, func(item rest.FormatRequest) (rest.FormatResult, error) {
		kind, err := parseInputKind(item.InputKind)
		if err != nil {
			return rest.FormatResult{}, err
		}

		result := formatOne(item, kind)

		observeFormat(result.Kind, string(kind))

		return result, nil
	})
	if err != nil {
		return fmt.Errorf("lox.MapErr: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BatchFormatResult{Items: items})

	return nil
}

func (s PhoneServer) getV1PhoneLinks(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	phone := value.PhoneValue(r.URL.Query().Get("value"))

	if phone.Digits() == "" {
		return failure.NewInvalidArgumentError(
			"value contains no digits",
			failure.WithCode(errcodes.InvalidPhoneLink),
			failure.WithDescription("Value contains no digits"),
		)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Links{
		WhatsApp: s.links.WhatsApp(phone),
		Telegram: s.links.Telegram(phone),
	})

	return nil
}

func formatOne(request rest.FormatRequest, kind phonefmt.InputKind) rest.FormatResult {
	next := phonefmt.Next(request.Raw, value.PhoneValue(request.Previous), kind)

	// Классификация отражает итоговое значение, а не сырой ввод: при
	// вставке без цифр поле сохраняет прежнее значение вместе с его типом.
	return rest.FormatResult{
		Value:  next.String(),
		Kind:   next.Kind().String(),
		Digits: next.Digits(),
	}
}

func parseInputKind(raw string) (phonefmt.InputKind, error) {
	switch raw {
	case "", string(phonefmt.InputKindTyped):
		return phonefmt.InputKindTyped, nil
	case string(phonefmt.InputKindPasted):
		return phonefmt.InputKindPasted, nil
	default:
		return "", failure.NewInvalidArgumentError(
			fmt.Sprintf("unknown input kind %q", raw),
			failure.WithCode(errcodes.InvalidInputKind),
			failure.WithDescription("inputKind must be typed or pasted"),
		)
	}
}
