package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxedrive/config"
	"luxedrive/infras/otel/mocks"
	availabilityMocks "luxedrive/internal/domains/availability/mocks"
	"luxedrive/internal/domains/availability/service"
)

func TestAvailabilityService_SweepExpired(t *testing.T) {
	t.Run("deletes lapsed holds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := availabilityMocks.NewMockAvailability(ctrl)

		mockRepo.EXPECT().
			DeleteExpired(gomock.Any(), gomock.Any()).
			Return(int64(3), nil)

		svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

		deleted, err := svc.SweepExpired(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := availabilityMocks.NewMockAvailability(ctrl)

		mockRepo.EXPECT().
			DeleteExpired(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("connection refused"))

		svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

		_, err := svc.SweepExpired(context.Background())

		assert.Error(t, err)
	})
}
