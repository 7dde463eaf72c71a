package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"lotmarket/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/invites/{token}", func(r chi.Router) {
				r.Post("/offers", handler(s.postV1InviteOffers))
				r.Get("/results", handler(s.getV1InviteResults))
			})

			r.Route("/lots/{id}", func(r chi.Router) {
				r.Post("/status", handler(s.postV1LotStatus))
				r.Post("/transition", handler(s.postV1LotStatus))
				r.Post("/purchase-orders", handler(s.postV1LotPurchaseOrders))
				r.Put("/expected-po-count", handler(s.putV1LotExpectedPOCount))
			})

			r.Post("/email/poll", handler(s.postV1EmailPoll))
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
