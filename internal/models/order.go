package models

import (
	"strings"
	"time"

	"github.com/gigbook/backend/internal/forecast"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus is the processing state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderRefunded  OrderStatus = "refunded"
)

// Order is a purchase of a product, e.g. a course or a membership.
type Order struct {
	DefaultModel
	Date        time.Time       `gorm:"index"`
	Status      OrderStatus     `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency    *string
	ProductType string // The type of the product ordered, e.g. "course" or "membership"
}

func (o *Order) AfterFind(tx *gorm.DB) (err error) {
	err = o.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	o.Date = o.Date.In(time.UTC)
	return
}

func (o *Order) BeforeSave(_ *gorm.DB) (err error) {
	o.Date = o.Date.In(time.UTC)
	o.ProductType = strings.TrimSpace(o.ProductType)
	return nil
}

func (o Order) forecast() forecast.Order {
	return forecast.Order{
		Amount:      o.Amount,
		Currency:    deref(o.Currency),
		ProductType: o.ProductType,
		Date:        o.Date,
	}
}
