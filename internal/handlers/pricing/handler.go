package pricing

import (
	"net/http"

	"luxedrive/infras/otel"
	"luxedrive/internal/domains/pricing/model/dto"
	"luxedrive/internal/domains/pricing/service"
	"luxedrive/shared/constant"
	"luxedrive/shared/validator"
	"luxedrive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/pricing", func(r chi.Router) {
		r.Post("/quote", handler.Quote)
	})
}

// Quote computes a price breakdown for a prospective rental
// @Summary Quote a rental price
// @Description Compute the full price breakdown for a car, window, add-ons, and optional promo code.
// @Tags Pricing
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/pricing/quote [post]
func (handler *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Quote")
	defer scope.End()

	req := dto.QuoteRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to quote price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
