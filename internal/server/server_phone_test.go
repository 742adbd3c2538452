package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"phone-input/internal/domain/service/field"
	"phone-input/internal/domain/service/links"
	"phone-input/internal/infrastructure/formstate"
	"phone-input/internal/server"
	"phone-input/pkg/httpx"
	"phone-input/pkg/logx"
	"phone-input/pkg/rest"
	"phone-input/pkg/tests"
)

func newTestServer(t *testing.T) tests.APIClient {
	t.Helper()

	store := formstate.NewMemoryStore(time.Hour)
	fieldService := field.NewService(store, nil, time.Hour)
	linkBuilder := links.NewBuilder().WithGreeting("hello")

	apiServer := server.NewServer(
		server.NewPhoneServer(linkBuilder),
		server.NewSessionServer(fieldService, linkBuilder),
	)

	router := chi.NewRouter()
	apiServer.RegisterRoutes(router)

	httpServer := httptest.NewServer(router)
	t.Cleanup(httpServer.Close)

	httpClient := &http.Client{
		Transport: httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		),
	}

	return tests.NewAPIClient(httpServer.URL, httpClient)
}

func TestPostV1PhoneFormat(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	testCases := []struct {
		name    string
		request rest.FormatRequest
		want    rest.FormatResult
	}{
		{
			name:    "Typed ten digits",
			request: rest.FormatRequest{Raw: "9991234567", InputKind: "typed"},
			want:    rest.FormatResult{Value: "+7(999)123-45-67", Kind: "domestic", Digits: "79991234567"},
		},
		{
			name:    "Typed eleven digits leading eight",
			request: rest.FormatRequest{Raw: "89991234567", InputKind: "typed"},
			want:    rest.FormatResult{Value: "+7(999)123-45-67", Kind: "domestic", Digits: "79991234567"},
		},
		{
			name:    "Typed belarus number",
			request: rest.FormatRequest{Raw: "+375291234567", InputKind: "typed"},
			want:    rest.FormatResult{Value: "+375291234567", Kind: "international", Digits: "375291234567"},
		},
		{
			name:    "Pasted US number",
			request: rest.FormatRequest{Raw: "+1 (555) 123-4567", InputKind: "pasted"},
			want:    rest.FormatResult{Value: "+15551234567", Kind: "international", Digits: "15551234567"},
		},
		{
			name:    "Cleared field",
			request: rest.FormatRequest{Raw: "", InputKind: "typed"},
			want:    rest.FormatResult{Value: "", Kind: "domestic", Digits: ""},
		},
		{
			name:    "Single seven defaults to typed",
			request: rest.FormatRequest{Raw: "7"},
			want:    rest.FormatResult{Value: "+7", Kind: "domestic", Digits: "7"},
		},
		{
			name:    "Pasted junk keeps previous",
			request: rest.FormatRequest{Raw: "no digits", Previous: "+7(999)1", InputKind: "pasted"},
			want:    rest.FormatResult{Value: "+7(999)1", Kind: "domestic", Digits: "79991"},
		},
		{
			// Тип считается от итогового значения: сохранённый
			// международный номер не перекрашивается сырым вводом.
			name:    "Pasted junk keeps international kind",
			request: rest.FormatRequest{Raw: "no digits", Previous: "+375291234567", InputKind: "pasted"},
			want:    rest.FormatResult{Value: "+375291234567", Kind: "international", Digits: "375291234567"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var result rest.FormatResult

			resp, err := client.Post(ctx, "/v1/phone/format", http.Header{}, tc.request, &result, nil)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)
			rq.Equal(tc.want, result)
		})
	}
}

func TestPostV1PhoneFormatInvalidKind(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	var errBody rest.Error

	resp, err := client.Post(ctx, "/v1/phone/format", http.Header{},
		rest.FormatRequest{Raw: "7", InputKind: "dropped"}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("ValidationError"), errBody.Code)
}

func TestPostV1PhoneFormatBatch(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	request := rest.BatchFormatRequest{
		Items: []rest.FormatRequest{
			{Raw: "9991234567"},
			{Raw: "+4915112345678"},
		},
	}

	var result rest.BatchFormatResult

	resp, err := client.Post(ctx, "/v1/phone/format/batch", http.Header{}, request, &result, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(result.Items, 2)
	rq.Equal("+7(999)123-45-67", result.Items[0].Value)
	rq.Equal("+4915112345678", result.Items[1].Value)
}

func TestGetV1PhoneLinks(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	client := newTestServer(t)

	var result rest.Links

	resp, err := client.Get(ctx, "/v1/phone/links?value=%2B7(999)123-45-67", http.Header{}, &result, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("https://wa.me/79991234567?text=hello", result.WhatsApp)
	rq.Equal("https://t.me/+7(999)123-45-67", result.Telegram)

	var errBody rest.Error

	resp, err = client.Get(ctx, "/v1/phone/links?value=abc", http.Header{}, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("InvalidPhoneLink"), errBody.Code)
}
