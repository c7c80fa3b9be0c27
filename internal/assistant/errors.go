package assistant

import (
	"errors"
	"fmt"
)

// ErrItemNotAvailable is matched by every NotAvailableError.
var ErrItemNotAvailable = errors.New("item not available")

// NotAvailableError reports an add whose phrase resolved to no in-stock
// catalog product. Hints are near-miss product names.
type NotAvailableError struct {
	Phrase string
	Hints  []string
}

func (e *NotAvailableError) Error() string {
	return fmt.Sprintf("%s is not available in the store", e.Phrase)
}

func (e *NotAvailableError) Is(target error) bool {
	return target == ErrItemNotAvailable
}
