package models

import (
	"strings"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/gigbook/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ForecastOverride replaces the computed forecast for one month and
// category. Income overrides do not have a category.
type ForecastOverride struct {
	DefaultModel
	Month    types.Month           `gorm:"index"`
	Category *string               `gorm:"index"`
	Type     forecast.OverrideType `gorm:"index"`
	Amount   decimal.Decimal       `gorm:"type:DECIMAL(20,8)"`
	Currency string
	Note     string
}

func (o *ForecastOverride) BeforeSave(_ *gorm.DB) error {
	o.Note = strings.TrimSpace(o.Note)
	o.Category = trimmed(o.Category)
	o.Type = forecast.OverrideType(strings.ToLower(strings.TrimSpace(string(o.Type))))

	if o.Month.IsZero() {
		return ErrOverrideMonthMissing
	}

	switch o.Type {
	case forecast.OverrideIncome:
		o.Category = nil
	case forecast.OverrideExpense:
		if o.Category == nil {
			return ErrOverrideCategoryMissing
		}
	default:
		return ErrUnsupportedOverrideType
	}

	currency, err := forecast.ParseCurrency(o.Currency)
	if err != nil {
		return ErrUnsupportedCurrency
	}
	o.Currency = string(currency)

	return nil
}

func (o ForecastOverride) forecast() forecast.Override {
	return forecast.Override{
		Month:    o.Month,
		Category: o.Category,
		Type:     o.Type,
		Amount:   o.Amount,
		Currency: o.Currency,
	}
}
