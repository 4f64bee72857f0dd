package model

import (
	"luxedrive/shared/model"
)

const (
	TableName  = "addons"
	EntityName = "addon"

	FieldID     = "id"
	FieldName   = "name"
	FieldActive = "active"
)

type AddOn struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	PricePerDay int64  `db:"price_per_day"`
	Active      bool   `db:"active"`
	model.Metadata
}
