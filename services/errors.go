package services

import (
	"errors"
	"sort"
	"strings"
)

// ErrSlotFull is returned when a booking would push the sum of confirmed
// guests for a (date, time) slot past the configured seating capacity.
var ErrSlotFull = errors.New("no remaining capacity for this time slot")

// FieldErrors carries per-field validation detail up to the HTTP layer.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
