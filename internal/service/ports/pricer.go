package ports

import (
	"time"

	"github.com/fansel/domburg-sub000/internal/pricing"
)

type Pricer interface {
	Price(start, end time.Time, alternateRate bool) pricing.Quote
}
