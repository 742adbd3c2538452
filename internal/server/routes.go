package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"phone-input/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Route("/phone", func(r chi.Router) {
				r.Post("/format", handler(s.postV1PhoneFormat))
				r.Post("/format/batch", handler(s.postV1PhoneFormatBatch))
				r.Get("/links", handler(s.getV1PhoneLinks))
			})

			r.Route("/sessions/{sessionID}/fields/{fieldID}", func(r chi.Router) {
				r.Put("/", handler(s.putV1SessionField))
				r.Get("/", handler(s.getV1SessionField))
				r.Delete("/", handler(s.deleteV1SessionField))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
