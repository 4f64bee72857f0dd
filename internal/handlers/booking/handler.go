package booking

import (
	"net/http"

	"luxedrive/infras/otel"
	"luxedrive/internal/domains/booking/model/dto"
	"luxedrive/internal/domains/booking/service"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/validator"
	"luxedrive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/mybookings", handler.MyBookings)
		r.Get("/{id}", handler.Detail)
		r.Post("/{id}/payment/confirm", handler.ConfirmPayment)
		r.Post("/{id}/payment/fail", handler.FailPayment)
	})
}

// Create reserves a car and opens a pending booking
// @Summary Create a booking
// @Description Reserve a car for a window, holding it until payment settles or the hold expires.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// MyBookings lists the caller's bookings
// @Summary List my bookings
// @Tags Booking
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.BookingListResponse
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/mybookings [get]
func (handler *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MyBookings")
	defer scope.End()

	params := gDto.QueryParams{}
	params.FromRequest(r, true)

	res, err := handler.service.GetMyBookings(ctx, params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns one booking
// @Summary Get booking detail
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/bookings/{id} [get]
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingDetail")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetByID(ctx, bookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ConfirmPayment finalizes a pending booking after a successful charge
// @Summary Confirm booking payment
// @Description Called by the payment gateway once a charge succeeds.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security ApiKeyAuth
// @Router /v1/bookings/{id}/payment/confirm [post]
func (handler *Handler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmPayment")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Confirm(ctx, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to confirm booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking confirmed successfully")

	response.WithMessage(w, http.StatusOK, "Booking confirmed successfully")
}

// FailPayment releases a pending booking after a failed charge
// @Summary Fail booking payment
// @Description Called by the payment gateway once a charge fails.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Security ApiKeyAuth
// @Router /v1/bookings/{id}/payment/fail [post]
func (handler *Handler) FailPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FailPayment")
	defer scope.End()

	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
