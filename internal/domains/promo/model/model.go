package model

import (
	"time"

	"luxedrive/shared/model"
)

const (
	TableName  = "promo_codes"
	EntityName = "promo_code"

	FieldID     = "id"
	FieldCode   = "code"
	FieldActive = "active"
)

const (
	DiscountTypePercent = "percent"
	DiscountTypeFixed   = "fixed"
)

type PromoCode struct {
	ID            string     `db:"id"`
	Code          string     `db:"code"`
	Description   string     `db:"description"`
	DiscountType  string     `db:"discount_type"`
	DiscountValue int64      `db:"discount_value"`
	StartsAt      *time.Time `db:"starts_at"`
	EndsAt        *time.Time `db:"ends_at"`
	UsageLimit    *int       `db:"usage_limit"`
	UsageCount    int        `db:"usage_count"`
	PerUserLimit  *int       `db:"per_user_limit"`
	Active        bool       `db:"active"`
	model.Metadata
}

// EligibleAt reports whether the code can be redeemed at the given instant.
// Unset window bounds and an unset usage limit are treated as unbounded.
func (p *PromoCode) EligibleAt(now time.Time) bool {
	if !p.Active {
		return false
	}

	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}

	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}

	if p.UsageLimit != nil && p.UsageCount >= *p.UsageLimit {
		return false
	}

	return true
}
