package ride

// Sum returns the total dollar cost and total time of v in a single pass.
// An empty or nil vector sums to (0, 0).
//
// Complexity: O(n).
func Sum(v Vector) (totalCost int, totalTime float64) {
	for _, it := range v {
		totalCost += it.cost
		totalTime += it.time
	}

	return totalCost, totalTime
}

// Filter returns a new vector holding, in their original relative order, the
// first maxSize rides of source whose time is strictly positive and lies in
// the inclusive window [minTime, maxTime].
//
// Scanning stops as soon as maxSize rides have been collected; maxSize <= 0
// yields an empty vector. Rides with zero time can never improve a solution,
// so they are always dropped.
//
// Complexity: O(n) time, O(min(n, maxSize)) memory.
func Filter(source Vector, minTime, maxTime float64, maxSize int) Vector {
	if maxSize <= 0 {
		return Vector{}
	}
	capHint := maxSize
	if capHint > len(source) {
		capHint = len(source)
	}

	out := make(Vector, 0, capHint)
	for _, it := range source {
		if len(out) == maxSize {
			break
		}
		t := it.time
		if t > 0 && t >= minTime && t <= maxTime {
			out = append(out, it)
		}
	}

	return out
}

// Descriptions returns the description of each ride in v, in order.
func Descriptions(v Vector) []string {
	out := make([]string, len(v))
	for i, it := range v {
		out[i] = it.description
	}

	return out
}
