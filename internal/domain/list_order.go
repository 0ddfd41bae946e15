package domain

import (
	"strings"

	"todo/internal/errors"
)

// ListOrder selects how tasks are ordered when listed.
type ListOrder string

const (
	// OrderByInsertion lists tasks by ascending id.
	OrderByInsertion ListOrder = "id"
	// OrderByStatusThenInsertion lists pending tasks before done ones, each
	// group by ascending id.
	OrderByStatusThenInsertion ListOrder = "status"
)

// ParseListOrder converts a configured or user supplied order name.
func ParseListOrder(s string) (ListOrder, error) {
	order := ListOrder(strings.ToLower(strings.TrimSpace(s)))
	if !order.IsValid() {
		return "", errors.NewInvalidInputError("order", s, `must be "id" or "status"`)
	}
	return order, nil
}

// IsValid reports whether o is one of the supported orders.
func (o ListOrder) IsValid() bool {
	return o == OrderByInsertion || o == OrderByStatusThenInsertion
}

// Description is used in list headings.
func (o ListOrder) Description() string {
	if o == OrderByStatusThenInsertion {
		return "sorted by status"
	}
	return "sorted by id"
}
