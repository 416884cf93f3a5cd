// Package catalog loads ride databases into ride.Vector values.
//
// A ride database is a line-oriented text file. The first line is a header
// and is discarded; every other line holds exactly three fields separated by
// a caret:
//
//	description^cost^time
//	new enchanted world^12^84.5
//
// Error policy:
//
//   - The source cannot be opened: ErrOpen, nothing is returned.
//   - A line with a field count other than three aborts the whole load with a
//     *LoadError wrapping ErrFieldCount. No partial vector is returned.
//   - A line whose cost or time does not parse, or whose values break a ride
//     invariant (see ride.NewItem), is skipped and loading continues.
//
// Cost is parsed as a real number and truncated toward zero.
package catalog
