package models

import (
	"strings"
	"time"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialTransaction is a bank transaction that has been categorized.
// Debits have a negative amount.
type FinancialTransaction struct {
	DefaultModel
	Date        time.Time       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    *string
	Category    *string `gorm:"index"`
	Description string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *FinancialTransaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave sets the timezone for the Date to UTC and trims whitespace.
func (t *FinancialTransaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Date = t.Date.In(time.UTC)
	t.Category = trimmed(t.Category)
	return nil
}

func (t FinancialTransaction) forecast() forecast.Transaction {
	return forecast.Transaction{
		Amount:   t.Amount,
		Currency: deref(t.Currency),
		Category: deref(t.Category),
		Date:     t.Date,
	}
}

// trimmed trims whitespace and turns empty strings into nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
