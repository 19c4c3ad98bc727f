package abc

// NectarValues converts the degrees of the chosen vertices into the fraction
// of onlooker effort each should attract: degree / sum(degrees).
//
// When every chosen vertex is isolated the sum is zero; the effort is then
// spread uniformly instead of dividing by zero. An empty input yields nil.
//
// Complexity: O(k) for k chosen vertices.
func NectarValues(degrees []int) []float64 {
	if len(degrees) == 0 {
		return nil
	}

	var sum int
	for _, d := range degrees {
		sum += d
	}

	nectar := make([]float64, len(degrees))
	if sum == 0 {
		for i := range nectar {
			nectar[i] = 1 / float64(len(nectar))
		}
		return nectar
	}
	for i, d := range degrees {
		nectar[i] = float64(d) / float64(sum)
	}

	return nectar
}

// Distribute turns nectar fractions into whole onlooker bees.
//
// Every vertex but the last receives floor(nectar · remaining), where
// remaining is the number of bees not yet handed out; the last vertex takes
// whatever is left. The result therefore always sums to exactly bees.
//
// Complexity: O(k).
func Distribute(nectar []float64, bees int) []int {
	if len(nectar) == 0 {
		return nil
	}

	out := make([]int, len(nectar))
	remaining := bees
	last := len(nectar) - 1
	for i, share := range nectar[:last] {
		n := int(share * float64(remaining))
		if n < 0 {
			n = 0
		}
		if n > remaining {
			n = remaining
		}
		out[i] = n
		remaining -= n
	}
	out[last] = remaining

	return out
}
