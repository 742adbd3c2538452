package server_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"phone-input/internal/domain/value"
	"phone-input/pkg/rest"
)

func TestSessionFieldLifecycle(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	sessionID := value.NewSessionID().String()
	endpoint := "/v1/sessions/" + sessionID + "/fields/contactPhone"

	// Поля ещё нет.
	var errBody rest.Error

	resp, err := client.Get(ctx, endpoint, http.Header{}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("FieldNotFound"), errBody.Code)

	// Набор создаёт поле.
	var fieldBody rest.Field

	resp, err = client.Put(ctx, endpoint, http.Header{},
		rest.FieldUpdateRequest{Raw: "89991234567", InputKind: "typed"}, &fieldBody, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("+7(999)123-45-67", fieldBody.Value)
	rq.Equal("domestic", fieldBody.Kind)
	rq.Equal(sessionID, fieldBody.SessionID)

	// Чтение возвращает значение со ссылками.
	resp, err = client.Get(ctx, endpoint, http.Header{}, &fieldBody, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("+7(999)123-45-67", fieldBody.Value)
	rq.Equal("https://wa.me/79991234567?text=hello", fieldBody.WhatsApp)
	rq.Equal("https://t.me/+7(999)123-45-67", fieldBody.Telegram)

	// Вставка без цифр значение не трогает.
	resp, err = client.Put(ctx, endpoint, http.Header{},
		rest.FieldUpdateRequest{Raw: "garbage", InputKind: "pasted"}, &fieldBody, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("+7(999)123-45-67", fieldBody.Value)

	// Вставка международного заменяет целиком.
	resp, err = client.Put(ctx, endpoint, http.Header{},
		rest.FieldUpdateRequest{Raw: "+1 (555) 123-4567", InputKind: "pasted"}, &fieldBody, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("+15551234567", fieldBody.Value)
	rq.Equal("international", fieldBody.Kind)

	// Удаление.
	resp, err = client.Delete(ctx, endpoint, http.Header{}, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	resp, err = client.Get(ctx, endpoint, http.Header{}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestSessionFieldInvalidIDs(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	var errBody rest.Error

	resp, err := client.Put(ctx, "/v1/sessions/not-an-xid/fields/contactPhone", http.Header{},
		rest.FieldUpdateRequest{Raw: "7", InputKind: "typed"}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("InvalidSessionID"), errBody.Code)
}
