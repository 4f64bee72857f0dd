package car

import (
	"net/http"

	"luxedrive/infras/otel"
	"luxedrive/internal/domains/car/model/dto"
	"luxedrive/internal/domains/car/service"
	"luxedrive/shared/constant"
	"luxedrive/shared/failure"
	"luxedrive/shared/validator"
	"luxedrive/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Car
	otel    otel.Otel
}

func New(service service.Car, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/cars", func(r chi.Router) {
		r.Get("/", handler.List)
		r.Get("/{id}", handler.Detail)
		r.Post("/", handler.Create)
		r.Patch("/{id}", handler.Update)
		r.Post("/{id}/images", handler.UploadImage)
	})
}

// List returns the car catalog with filters and pagination
// @Summary List cars
// @Description List active cars with optional filters, sorting, and pagination.
// @Tags Car
// @Produce json
// @Param transmission query string false "Transmission filter (manual|automatic)"
// @Param fuel_type query string false "Fuel type filter"
// @Param seats query int false "Minimum seats"
// @Param min_price query int false "Minimum price per day (major units)"
// @Param max_price query int false "Maximum price per day (major units)"
// @Param search query string false "Search in make and model"
// @Param sort_by query string false "Sort order (price_asc|price_desc|rating_desc)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.CarListResponse
// @Failure 500 {object} response.Error
// @Router /v1/cars [get]
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListCars")
	defer scope.End()

	req := dto.ListCarsRequest{}
	req.FromRequest(r)

	res, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list cars")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Detail returns a single car
// @Summary Get car detail
// @Tags Car
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} dto.CarResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cars/{id} [get]
func (handler *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CarDetail")
	defer scope.End()

	carID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetByID(ctx, carID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("car_id", carID).Msg("failed to get car")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Create registers a new car
// @Summary Create a car
// @Tags Car
// @Accept json
// @Produce json
// @Param request body dto.CreateCarRequest true "Create Car Request"
// @Success 201 {object} dto.CarResponse
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cars [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCar")
	defer scope.End()

	req := dto.CreateCarRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create car")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Car created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// Update modifies car attributes
// @Summary Update a car
// @Tags Car
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body dto.UpdateCarRequest true "Update Car Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cars/{id} [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCar")
	defer scope.End()

	carID := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCarRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, carID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("car_id", carID).Msg("failed to update car")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Car updated successfully")
}

// UploadImage attaches a photo to a car
// @Summary Upload a car image
// @Tags Car
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Car ID"
// @Param file formData file true "Image file"
// @Success 201 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Security BearerAuth
// @Router /v1/cars/{id}/images [post]
func (handler *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadCarImage")
	defer scope.End()

	carID := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequestFromString("missing image file"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadImage(ctx, carID, file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("car_id", carID).Msg("failed to upload car image")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, map[string]string{"url": url})
}
