package pricing

import (
	"time"

	"github.com/fansel/domburg-sub000/internal/domain"
)

// Calculator prices a stay from fixed nightly rates. It is a pure function
// of the date range; the reconciler calls it when dates are pulled back from
// the external calendar.
type Calculator struct {
	nightlyRate          float64
	alternateNightlyRate float64
	cleaningFee          float64
}

func NewCalculator(nightlyRate, alternateNightlyRate, cleaningFee float64) *Calculator {
	return &Calculator{
		nightlyRate:          nightlyRate,
		alternateNightlyRate: alternateNightlyRate,
		cleaningFee:          cleaningFee,
	}
}

type Quote struct {
	Total       float64 `json:"total"`
	Nights      int     `json:"nights"`
	NightlyRate float64 `json:"nightly_rate"`
	CleaningFee float64 `json:"cleaning_fee"`
}

func (c *Calculator) Price(start, end time.Time, alternateRate bool) Quote {
	nights := domain.DateInterval{Start: start, End: end}.Nights()

	rate := c.nightlyRate
	if alternateRate {
		rate = c.alternateNightlyRate
	}

	return Quote{
		Total:       float64(nights)*rate + c.cleaningFee,
		Nights:      nights,
		NightlyRate: rate,
		CleaningFee: c.cleaningFee,
	}
}
