package services

import (
	"fmt"
	"strings"

	"travelbook/atlas/internal/metrics"
)

// storeError counts a failed store call and wraps it with the operation name.
func storeError(m *metrics.MetricsRegistry, op string, err error) error {
	m.StoreErrorsTotal.WithLabelValues(op).Inc()
	return fmt.Errorf("%s: %w", op, err)
}

// present reports whether an optional string filter was supplied.
func present(s *string) bool {
	return s != nil && *s != ""
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// orderedSet keeps distinct values in insertion order up to a cap.
type orderedSet struct {
	limit  int
	seen   map[string]struct{}
	values []string
}

func newOrderedSet(limit int) *orderedSet {
	return &orderedSet{limit: limit, seen: make(map[string]struct{}), values: make([]string, 0, limit)}
}

func (s *orderedSet) add(v string) {
	if len(s.values) >= s.limit {
		return
	}
	if _, ok := s.seen[v]; ok {
		return
	}
	s.seen[v] = struct{}{}
	s.values = append(s.values, v)
}
