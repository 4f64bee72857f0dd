package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"luxedrive/infras/otel"
	"luxedrive/infras/postgres"
	"luxedrive/internal/domains/promo/model"
	"luxedrive/shared/constant"
	gDto "luxedrive/shared/dto"
	"luxedrive/shared/logger"
	gRepo "luxedrive/shared/repository"

	"github.com/jmoiron/sqlx"
)

const incrementUsageQuery = `
	UPDATE promo_codes
	SET usage_count = usage_count + 1, modified_at = NOW()
	WHERE id = :id
		AND active = true
		AND (usage_limit IS NULL OR usage_count < usage_limit)`

type Promo interface {
	Insert(ctx context.Context, model model.PromoCode) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PromoCode, error)
	GetByCode(ctx context.Context, code string) (model.PromoCode, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	IncrementUsageTx(ctx context.Context, sqltx *sqlx.Tx, id string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PromoCode]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Promo {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PromoCode](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetByCode looks a promo code up by its canonical uppercase form.
func (repo *repositoryImpl) GetByCode(ctx context.Context, code string) (model.PromoCode, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetByCode")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToUpper(code),
				Table:    model.TableName,
			},
		},
	}

	return repo.Get(ctx, filter)
}

// IncrementUsageTx bumps the usage counter only while it is still under the
// limit. It returns false when the code is exhausted or no longer active so
// the caller can retry the booking without the discount.
func (repo *repositoryImpl) IncrementUsageTx(ctx context.Context, sqltx *sqlx.Tx, id string) (claimed bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".IncrementUsageTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, incrementUsageQuery)

	result, err := sqltx.NamedExecContext(ctx, incrementUsageQuery, map[string]any{"id": id})
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to increment promo usage (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}
