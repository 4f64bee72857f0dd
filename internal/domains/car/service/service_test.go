package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxedrive/config"
	"luxedrive/infras/otel/mocks"
	s3Mocks "luxedrive/infras/s3/mocks"
	carMocks "luxedrive/internal/domains/car/mocks"
	"luxedrive/internal/domains/car/model"
	"luxedrive/internal/domains/car/model/dto"
	"luxedrive/internal/domains/car/service"
	cacheMocks "luxedrive/shared/cache/mocks"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/failure"
)

type carMockSet struct {
	carRepo *carMocks.MockCar
	cache   *cacheMocks.MockRedisCache
	s3      *s3Mocks.MockS3
}

func newCarService(ctrl *gomock.Controller) (service.Car, carMockSet) {
	set := carMockSet{
		carRepo: carMocks.NewMockCar(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
		s3:      s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	svc := service.New(set.carRepo, set.cache, set.s3, cfg, mocks.NewOtel())

	return svc, set
}

func TestCarService_GetAll(t *testing.T) {
	sampleCar := model.Car{
		ID:          "car-id-123",
		AgencyID:    "agency-id-123",
		Make:        "Toyota",
		Model:       "Innova",
		PricePerDay: 200000,
		Currency:    "INR",
		Active:      true,
	}

	req := dto.ListCarsRequest{
		Params: gDto.QueryParams{Page: 1, Limit: 10},
	}

	t.Run("cache miss lists from repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newCarService(ctrl)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.carRepo.EXPECT().
			GetAll(gomock.Any(), req.Params, gomock.Any()).
			Return([]model.Car{sampleCar}, nil)

		set.carRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(1, nil)

		// Listings are cached from a separate goroutine.
		cached := make(chan struct{}, 1)

		set.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).
			DoAndReturn(func(_ context.Context, _ string, _ any, _ int) error {
				cached <- struct{}{}

				return nil
			})

		res, err := svc.GetAll(context.Background(), req)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, float64(2000), res.Items[0].PricePerDay)
		assert.Equal(t, 1, res.Total)
		assert.Equal(t, 1, res.TotalPage)

		<-cached
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newCarService(ctrl)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				res, ok := value.(*dto.CarListResponse)
				if !ok {
					return errors.New("unexpected cache value type")
				}

				res.Items = []dto.CarResponse{{ID: sampleCar.ID}}
				res.Total = 1

				return nil
			})

		res, err := svc.GetAll(context.Background(), req)

		assert.NoError(t, err)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, sampleCar.ID, res.Items[0].ID)
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newCarService(ctrl)

		set.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		set.carRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.GetAll(context.Background(), req)

		assert.Error(t, err)
	})
}

func TestCarService_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newCarService(ctrl)

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Car{ID: "car-id-123", PricePerDay: 200000}, nil)

		res, err := svc.GetByID(context.Background(), "car-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "car-id-123", res.ID)
		assert.Equal(t, float64(2000), res.PricePerDay)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, set := newCarService(ctrl)

		set.carRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Car{}, nil)

		_, err := svc.GetByID(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestCarService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCarService(ctrl)

	req := dto.CreateCarRequest{
		AgencyID:     "agency-id-123",
		Make:         "Toyota",
		Model:        "Innova",
		Year:         2023,
		Seats:        7,
		Transmission: "automatic",
		FuelType:     "diesel",
		PricePerDay:  2000,
		Currency:     "inr",
	}

	set.carRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, car model.Car) error {
			assert.NotEmpty(t, car.ID)
			assert.Equal(t, int64(200000), car.PricePerDay)
			assert.Equal(t, "INR", car.Currency)
			assert.True(t, car.Active)
			assert.Equal(t, "admin-id-123", car.CreatedBy)

			return nil
		})

	set.cache.EXPECT().
		Clear(gomock.Any(), "cars*").
		Return(nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-123")

	res, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, float64(2000), res.PricePerDay)
	assert.Equal(t, "INR", res.Currency)
}

func TestCarService_UploadImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, set := newCarService(ctrl)

	set.carRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Car{ID: "car-id-123", Images: pq.StringArray{"https://cdn.example.com/cars/old.jpg"}}, nil)

	set.s3.EXPECT().
		UploadFile(gomock.Any(), gomock.Any(), "cars", gomock.Any(), gomock.Any(), gomock.Any()).
		Return("https://cdn.example.com/cars/new.jpg", nil)

	set.carRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			images, ok := fields["images"].(pq.StringArray)
			assert.True(t, ok)
			assert.Len(t, images, 2)

			return nil
		})

	set.cache.EXPECT().
		Clear(gomock.Any(), "cars*").
		Return(nil)

	url, err := svc.UploadImage(context.Background(), "car-id-123", nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cars/new.jpg", url)
}
