package util

import (
	"strconv"
	"strings"
)

// JoinStrings returns the comma separated form the API expects for list
// parameters.
func JoinStrings(values []string) string {
	return strings.Join(values, ",")
}

func JoinInts[T ~int | ~int32 | ~int64](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.FormatInt(int64(value), 10)
	}

	return strings.Join(parts, ",")
}

func JoinUints[T ~uint | ~uint32 | ~uint64](values []T) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.FormatUint(uint64(value), 10)
	}

	return strings.Join(parts, ",")
}

func JoinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = FormatFloat(value)
	}

	return strings.Join(parts, ",")
}

// FormatFloat renders a float with the shortest representation that round
// trips, so 36.8 stays "36.8" rather than "36.800000".
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SplitList is the inverse of the Join helpers. An empty string yields an
// empty list rather than a list with one empty element.
func SplitList(value string) []string {
	if value == "" {
		return nil
	}

	list := strings.Split(value, ",")
	for i := range list {
		list[i] = strings.TrimSpace(list[i])
	}

	return list
}
