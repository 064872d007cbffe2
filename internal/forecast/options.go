package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
)

// Options controls a forecast run.
type Options struct {
	// Now anchors the lookback window and the forecast horizon.
	Now time.Time

	// Months is the number of months to forecast, starting with the current one.
	Months int

	// MaxMonths is the upper bound for Months.
	MaxMonths int

	// LookbackMonths is how far back historical records are read.
	LookbackMonths int

	// BaselineMonths is the number of complete months averaged for baselines.
	BaselineMonths int

	// IgnoredCategories are glob patterns for transaction categories that are
	// never expenses, e.g. transfers between own accounts.
	IgnoredCategories []string

	// MembershipProductTypes are glob patterns for order product types that
	// count as membership revenue. All other orders are course revenue.
	MembershipProductTypes []string
}

const (
	DefaultMonths         = 12
	DefaultMaxMonths      = 60
	DefaultLookbackMonths = 6
	DefaultBaselineMonths = 3
)

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions(now time.Time) Options {
	return Options{
		Now:                    now,
		Months:                 DefaultMonths,
		MaxMonths:              DefaultMaxMonths,
		LookbackMonths:         DefaultLookbackMonths,
		BaselineMonths:         DefaultBaselineMonths,
		IgnoredCategories:      []string{"ignore", "internal_transfer"},
		MembershipProductTypes: []string{"membership", "subscription"},
	}
}

// Validate checks that the options describe a forecast that can be computed.
func (o Options) Validate() error {
	if o.Months < 1 || (o.MaxMonths > 0 && o.Months > o.MaxMonths) {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidHorizon, o.Months, o.MaxMonths)
	}

	if o.LookbackMonths < 0 || o.BaselineMonths < 0 {
		return fmt.Errorf("lookback and baseline months must not be negative")
	}

	return nil
}

// Since is the start of the lookback window.
func (o Options) Since() time.Time {
	return o.Now.AddDate(0, -o.LookbackMonths, 0)
}

func (o Options) isIgnoredCategory(category string) bool {
	return matchAny(o.IgnoredCategories, category)
}

func (o Options) isMembership(productType string) bool {
	return matchAny(o.MembershipProductTypes, productType)
}

func matchAny(patterns []string, s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, pattern := range patterns {
		if glob.Glob(strings.ToLower(pattern), s) {
			return true
		}
	}
	return false
}
