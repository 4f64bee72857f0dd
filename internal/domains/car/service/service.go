package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"

	"luxedrive/config"
	"luxedrive/infras/otel"
	"luxedrive/infras/s3"
	"luxedrive/internal/domains/car/model"
	"luxedrive/internal/domains/car/model/dto"
	"luxedrive/internal/domains/car/repository"
	"luxedrive/shared"
	"luxedrive/shared/cache"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/failure"
	"luxedrive/shared/money"
	"luxedrive/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheKeyCars     = "cars"
	s3ImageDirectory = "cars"
)

type Car interface {
	GetAll(ctx context.Context, req dto.ListCarsRequest) (dto.CarListResponse, error)
	GetByID(ctx context.Context, carID string) (dto.CarResponse, error)
	Create(ctx context.Context, req dto.CreateCarRequest) (dto.CarResponse, error)
	Update(ctx context.Context, carID string, req dto.UpdateCarRequest) error
	UploadImage(ctx context.Context, carID string, file multipart.File, fileHeader *multipart.FileHeader) (string, error)
}

type serviceImpl struct {
	carRepo repository.Car
	cache   cache.RedisCache
	s3      s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(carRepo repository.Car, redisCache cache.RedisCache, s3Client s3.S3, cfg *config.Config, otel otel.Otel) Car {
	return &serviceImpl{
		carRepo: carRepo,
		cache:   redisCache,
		s3:      s3Client,
		cfg:     cfg,
		otel:    otel,
	}
}

// GetAll lists active cars matching the filters, serving repeat queries from
// cache.
func (s *serviceImpl) GetAll(ctx context.Context, req dto.ListCarsRequest) (res dto.CarListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllCars")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := buildListFilter(req)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheKeyCars, req.Params, filter)

	if cacheErr := s.cache.Get(ctx, cacheKey, &res); cacheErr == nil {
		scope.AddEvent("cache hit")

		return res, nil
	}

	cars, err := s.carRepo.GetAll(ctx, req.Params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to list cars: %w", err)
	}

	total, err := s.carRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	res.Items = make([]dto.CarResponse, 0, len(cars))

	for _, car := range cars {
		var item dto.CarResponse

		item.FromModel(car)
		res.Items = append(res.Items, item)
	}

	res.Page = req.Params.Page
	res.Limit = req.Params.Limit
	res.Total = total
	res.TotalPage = shared.CalculateTotalPage(total, req.Params.Limit)

	bgCtx := context.WithoutCancel(ctx)

	go func() {
		if cacheErr := s.cache.Save(bgCtx, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Error().Err(cacheErr).Str("key", cacheKey).Msg("failed to cache car listing")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByID(ctx context.Context, carID string) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCar")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.getCar(ctx, carID)
	if err != nil {
		return res, err
	}

	res.FromModel(car)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCarRequest) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCar")
	defer scope.End()
	defer scope.TraceIfError(err)

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	car := req.ToModel(username)

	if err = s.carRepo.Insert(ctx, car); err != nil {
		return res, fmt.Errorf("failed to create car: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyCars)

	res.FromModel(car)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, carID string, req dto.UpdateCarRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCar")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getCar(ctx, carID); err != nil {
		return err
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)
	updatedFields := shared.TransformFields(req, username)

	if req.PricePerDay > 0 {
		updatedFields["price_per_day"] = money.ToMinorFromFloat(req.PricePerDay)
	}

	if req.Active != nil {
		updatedFields["active"] = *req.Active
	}

	filter := shared.FilterByID(carID, model.FieldID, model.TableName)

	if err = s.carRepo.Update(ctx, updatedFields, filter); err != nil {
		return fmt.Errorf("failed to update car: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyCars)

	return nil
}

// UploadImage stores a car photo on S3 and appends its public URL to the
// car's image list.
func (s *serviceImpl) UploadImage(ctx context.Context, carID string, file multipart.File, fileHeader *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadCarImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	car, err := s.getCar(ctx, carID)
	if err != nil {
		return constant.Empty, err
	}

	fileName := fmt.Sprintf("%s-%s", carID, uuid.NewString())

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, s3ImageDirectory, file, fileHeader, fileName)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload car image: %w", err)
	}

	username, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		"images":                 append(car.Images, url),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	filter := shared.FilterByID(carID, model.FieldID, model.TableName)

	if err = s.carRepo.Update(ctx, updatedFields, filter); err != nil {
		return constant.Empty, fmt.Errorf("failed to save car image: %w", err)
	}

	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheKeyCars)

	return url, nil
}

func (s *serviceImpl) getCar(ctx context.Context, carID string) (model.Car, error) {
	filter := shared.FilterByID(carID, model.FieldID, model.TableName)

	car, err := s.carRepo.Get(ctx, filter)
	if err != nil {
		return car, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == "" {
		return car, failure.NotFound("car not found")
	}

	return car, nil
}

func buildListFilter(req dto.ListCarsRequest) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    true,
			Table:    model.TableName,
		},
	}

	if req.Transmission != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldTransmission,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Transmission,
			Table:    model.TableName,
		})
	}

	if req.FuelType != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldFuelType,
			Operator: gDto.FilterOperatorEq,
			Value:    req.FuelType,
			Table:    model.TableName,
		})
	}

	if req.Seats > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldSeats,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    req.Seats,
			Table:    model.TableName,
		})
	}

	if req.MinPrice > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "min_price",
			Field:    model.FieldPricePerDay,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    req.MinPrice,
			Table:    model.TableName,
		})
	}

	if req.MaxPrice > 0 {
		filters = append(filters, gDto.Filter{
			ArgName:  "max_price",
			Field:    model.FieldPricePerDay,
			Operator: gDto.FilterOperatorLessEq,
			Value:    req.MaxPrice,
			Table:    model.TableName,
		})
	}

	if req.Search != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "search_make",
					Field:    model.FieldMake,
					Operator: gDto.FilterOperatorLike,
					Value:    req.Search,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  "search_model",
					Field:    model.FieldModel,
					Operator: gDto.FilterOperatorLike,
					Value:    req.Search,
					Table:    model.TableName,
				},
			},
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
