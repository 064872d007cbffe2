package forecast

import (
	"fmt"

	"github.com/gigbook/backend/internal/types"
)

// nullCategory is used in override keys for overrides without a category.
const nullCategory = "null"

func overrideKey(m types.Month, category *string, t OverrideType) string {
	c := nullCategory
	if category != nil {
		c = *category
	}
	return fmt.Sprintf("%s|%s|%s", m.ISODate(), c, t)
}

// Overrides looks up manual overrides by month, category and type.
type Overrides struct {
	cells map[string]Amounts

	// expense categories with an override, per month key
	categories map[string][]string

	// month keys targeted by any override, including skipped ones
	months map[string]struct{}
}

// IndexOverrides builds the lookup. If two overrides share a key, the
// later one wins. Overrides with an unknown type or an unsupported
// currency are skipped, but still mark their month as overridden.
func IndexOverrides(overrides []Override, skipped *Skipped) Overrides {
	idx := Overrides{
		cells:      make(map[string]Amounts),
		categories: make(map[string][]string),
		months:     make(map[string]struct{}),
	}

	for _, o := range overrides {
		idx.months[o.Month.String()] = struct{}{}

		if o.Type != OverrideIncome && o.Type != OverrideExpense {
			skipped.UnsupportedOverride++
			continue
		}

		cur, err := recordCurrency(o.Currency)
		if err != nil {
			skipped.UnsupportedCurrency++
			continue
		}

		category := o.Category
		if o.Type == OverrideIncome {
			category = nil
		}

		key := overrideKey(o.Month, category, o.Type)
		if _, exists := idx.cells[key]; !exists && o.Type == OverrideExpense && category != nil {
			idx.categories[o.Month.String()] = append(idx.categories[o.Month.String()], *category)
		}
		idx.cells[key] = Single(cur, o.Amount)
	}

	return idx
}

// Income returns the income override for a month.
func (idx Overrides) Income(m types.Month) (Amounts, bool) {
	a, ok := idx.cells[overrideKey(m, nil, OverrideIncome)]
	return a, ok
}

// Expense returns the expense override for a month and category.
func (idx Overrides) Expense(m types.Month, category string) (Amounts, bool) {
	a, ok := idx.cells[overrideKey(m, &category, OverrideExpense)]
	return a, ok
}

// ExpenseCategories returns the categories with an expense override in a month.
func (idx Overrides) ExpenseCategories(m types.Month) []string {
	return idx.categories[m.String()]
}

// HasOverride reports whether any override targets the month.
func (idx Overrides) HasOverride(m types.Month) bool {
	_, ok := idx.months[m.String()]
	return ok
}
