package reporting

import "sort"

// Sum totals key over records.
func Sum[T any](records []T, key func(T) float64) float64 {
	var total float64
	for _, r := range records {
		total += key(r)
	}
	return total
}

// Average is Sum divided by count, or exactly 0 on empty input. Never NaN.
func Average[T any](records []T, key func(T) float64) float64 {
	if len(records) == 0 {
		return 0
	}
	return Sum(records, key) / float64(len(records))
}

// Mode returns the most frequent value of key over records. Ties resolve
// to the lexicographically smallest of the tied values, so repeated calls
// on the same data always agree. Empty input returns "".
func Mode[T any](records []T, key func(T) string) string {
	if len(records) == 0 {
		return ""
	}
	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[key(r)]++
	}
	var best string
	bestCount := -1
	for value, count := range counts {
		if count > bestCount || (count == bestCount && value < best) {
			best = value
			bestCount = count
		}
	}
	return best
}

// Breakdown returns per-value counts of key over records, most frequent
// first; tied values sort lexicographically.
func Breakdown[T any](records []T, key func(T) string) []Point {
	counts := make(map[string]float64, len(records))
	order := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})
	out := make([]Point, 0, len(order))
	for _, k := range order {
		out = append(out, Point{Label: k, Value: counts[k]})
	}
	return out
}

// TopN returns up to n records ordered by key. The sort is stable, so ties
// keep their original order; n at or above len returns everything sorted.
func TopN[T any](records []T, n int, key func(T) float64, descending bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	if n < 0 {
		n = 0
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}
