package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrSettingCategoryNotUnique = errors.New("there is already a forecast setting for this category")
	ErrSettingCategoryEmpty     = errors.New("the category of a forecast setting must not be empty")
	ErrUserRoleNotUnique        = errors.New("the user already has this role")
	ErrUnsupportedCurrency      = errors.New("the currency must be one of GBP, USD and EUR")
	ErrUnsupportedFrequency     = errors.New("the frequency must be either 'monthly' or 'annual'")
	ErrUnsupportedOverrideType  = errors.New("the override type must be either 'income' or 'expense'")
	ErrOverrideCategoryMissing  = errors.New("expense overrides must have a category")
	ErrOverrideMonthMissing     = errors.New("the month of an override must be set")
)
