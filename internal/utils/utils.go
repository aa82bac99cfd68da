package utils

// Returns the average of all given numbers n, rounded down for
// non-negative inputs (integer division). Returns 0 when n is empty.
func Average(n ...int) int {
	if len(n) == 0 {
		return 0
	}

	// Sum all numbers
	var sum int
	for _, num := range n {
		sum += num
	}

	// Divide sum by total numbers
	return sum / len(n)
}
