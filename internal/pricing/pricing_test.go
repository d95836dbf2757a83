package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculator_Price(t *testing.T) {
	c := NewCalculator(95, 75, 60)

	q := c.Price(day(1), day(8), false)
	assert.Equal(t, 7, q.Nights)
	assert.Equal(t, 95.0, q.NightlyRate)
	assert.Equal(t, 60.0, q.CleaningFee)
	assert.Equal(t, 7*95.0+60, q.Total)
}

func TestCalculator_Price_AlternateRate(t *testing.T) {
	c := NewCalculator(95, 75, 60)

	q := c.Price(day(1), day(8), true)
	assert.Equal(t, 75.0, q.NightlyRate)
	assert.Equal(t, 7*75.0+60, q.Total)
}

func TestCalculator_Price_SingleDay(t *testing.T) {
	c := NewCalculator(95, 75, 60)

	// same-day stay has zero nights, only the cleaning fee remains
	q := c.Price(day(3), day(3), false)
	assert.Equal(t, 0, q.Nights)
	assert.Equal(t, 60.0, q.Total)
}
