package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	"luxedrive/internal/domains/car/model"
	gDto "luxedrive/shared/dto"
	gRepo "luxedrive/shared/repository"
)

type Car interface {
	Insert(ctx context.Context, model model.Car) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Car, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Car, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Car]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Car {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Car](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
