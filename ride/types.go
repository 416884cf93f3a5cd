package ride

import (
	"errors"
	"math"
	"strings"
)

var (
	// ErrEmptyDescription indicates a ride without a usable description.
	ErrEmptyDescription = errors.New("ride: description must be non-empty")

	// ErrNonPositiveCost indicates a ride whose dollar cost is zero or negative.
	ErrNonPositiveCost = errors.New("ride: cost must be positive")

	// ErrInvalidTime indicates a negative, NaN or infinite time value.
	ErrInvalidTime = errors.New("ride: time must be finite and non-negative")
)

// Item is one ride available for purchase.
// An Item never changes after NewItem returns it, so the same pointer may be
// shared by any number of vectors.
type Item struct {
	description string
	cost        int
	time        float64
}

// NewItem validates its arguments and returns a new ride.
//
// Errors:
//   - ErrEmptyDescription if description is empty or whitespace only.
//   - ErrNonPositiveCost  if cost <= 0.
//   - ErrInvalidTime      if time < 0, NaN or ±Inf.
func NewItem(description string, cost int, time float64) (*Item, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}
	if cost <= 0 {
		return nil, ErrNonPositiveCost
	}
	if math.IsNaN(time) || math.IsInf(time, 0) || time < 0 {
		return nil, ErrInvalidTime
	}

	return &Item{description: description, cost: cost, time: time}, nil
}

// MustItem is like NewItem but panics on invalid input.
// Intended for fixtures and examples where the values are literals.
func MustItem(description string, cost int, time float64) *Item {
	it, err := NewItem(description, cost, time)
	if err != nil {
		panic(err)
	}

	return it
}

// Description returns the human-readable label, e.g. "new enchanted world".
func (it *Item) Description() string { return it.description }

// Cost returns the ride cost in whole dollars (always > 0).
func (it *Item) Cost() int { return it.cost }

// Time returns the ride time in minutes (always >= 0).
func (it *Item) Time() float64 { return it.time }

// Vector is an ordered sequence of shared, read-only rides.
type Vector []*Item
