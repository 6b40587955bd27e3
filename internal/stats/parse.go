package stats

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseList parses a comma-delimited list of numbers such as "10, 20,30".
// Blank items are skipped, so "1,,2," yields two numbers.
//
// Returns an error wrapping ErrInvalidNumber naming the first bad item.
// Values like "NaN" parse successfully; NewSample rejects them.
func ParseList(list string) ([]float64, error) {
	items := strings.Split(list, ",")
	numbers := make([]float64, 0, len(items))

	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		n, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q (item %d)", ErrInvalidNumber, item, i+1)
		}
		numbers = append(numbers, n)
	}

	return numbers, nil
}
