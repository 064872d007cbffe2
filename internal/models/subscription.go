package models

import (
	"strings"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

// Subscription is a recurring membership payment.
type Subscription struct {
	DefaultModel
	Status   SubscriptionStatus `gorm:"index"`
	Amount   decimal.Decimal    `gorm:"type:DECIMAL(20,8)"`
	Currency *string
	PlanType string // "monthly" or "annual"
}

func (s *Subscription) BeforeSave(_ *gorm.DB) error {
	s.PlanType = strings.ToLower(strings.TrimSpace(s.PlanType))
	return nil
}

func (s Subscription) forecast() forecast.Subscription {
	return forecast.Subscription{
		Amount:   s.Amount,
		Currency: deref(s.Currency),
		PlanType: s.PlanType,
	}
}
