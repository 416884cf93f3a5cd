// Package ride defines the immutable ride record used by every solver and
// the small collection helpers that operate on vectors of rides.
//
// 🚀 What is a ride?
//
//	A ride is something a visitor can pay for at the park. It has a
//	human-readable description, a whole-dollar cost and a time value in
//	minutes. The optimizers in package maxtime choose the subset of rides
//	that maximizes total time within a dollar budget.
//
// ✨ Key features:
//   - Item is immutable: fields are unexported and validated once by NewItem.
//   - Vector shares *Item pointers; filtering or solving never copies a ride.
//   - Sum aggregates cost and time in one pass.
//   - Filter keeps the first N rides inside a time window, which is how
//     callers keep inputs to the exponential exhaustive search tractable.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ridetime/ride"
//
//	ferris, err := ride.NewItem("Ferris Wheel", 10, 20)
//	if err != nil {
//	  // ErrEmptyDescription, ErrNonPositiveCost or ErrInvalidTime
//	}
//	v := ride.Vector{ferris}
//	cost, minutes := ride.Sum(v)
//
// Performance:
//
//   - Sum, Filter, Descriptions: O(n) time; Filter allocates at most maxSize pointers.
package ride
