package models

import (
	"strings"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Frequency is how often a configured expense occurs.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyAnnual  Frequency = "annual"
)

// ExpenseForecastSetting configures the expected expense for a category.
type ExpenseForecastSetting struct {
	DefaultModel
	Category         string          `gorm:"uniqueIndex"`
	BaselineAmount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BaselineCurrency string
	Frequency        Frequency
	Note             string
}

func (s *ExpenseForecastSetting) BeforeSave(_ *gorm.DB) error {
	s.Category = strings.TrimSpace(s.Category)
	s.Note = strings.TrimSpace(s.Note)
	s.Frequency = Frequency(strings.ToLower(strings.TrimSpace(string(s.Frequency))))

	if s.Category == "" {
		return ErrSettingCategoryEmpty
	}

	if s.Frequency == "" {
		s.Frequency = FrequencyMonthly
	}

	if s.Frequency != FrequencyMonthly && s.Frequency != FrequencyAnnual {
		return ErrUnsupportedFrequency
	}

	currency, err := forecast.ParseCurrency(s.BaselineCurrency)
	if err != nil {
		return ErrUnsupportedCurrency
	}
	s.BaselineCurrency = string(currency)

	return nil
}

func (s ExpenseForecastSetting) forecast() forecast.Setting {
	return forecast.Setting{
		Category:         s.Category,
		BaselineAmount:   s.BaselineAmount,
		BaselineCurrency: s.BaselineCurrency,
		Frequency:        string(s.Frequency),
	}
}
