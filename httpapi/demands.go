package httpapi

import (
	"strconv"
	"strings"
)

// ParseDemands filters free-text demand input down to positive integers.
//
// The input is split on commas; each token is trimmed and kept only if it
// parses as a positive base-10 integer. Empty, non-numeric, zero, and
// negative tokens are dropped silently — normalization is the presentation
// layer's job, and the engine will reject anything that slips through.
//
// Parameters:
//   - text: Comma-separated demand tokens (e.g. "50, 40, x,,30")
//
// Returns:
//   - []int64: Positive demands in input order (never nil)
func ParseDemands(text string) []int64 {
	demands := make([]int64, 0)

	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		d, err := strconv.ParseInt(token, 10, 64)
		if err != nil || d <= 0 {
			continue
		}

		demands = append(demands, d)
	}

	return demands
}
