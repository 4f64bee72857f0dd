package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	"luxedrive/internal/domains/addon/model"
	gDto "luxedrive/shared/dto"
	gRepo "luxedrive/shared/repository"
)

type AddOn interface {
	Insert(ctx context.Context, model model.AddOn) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AddOn, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AddOn, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AddOn]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AddOn {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AddOn](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
