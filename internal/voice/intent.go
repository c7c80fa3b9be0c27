package voice

import "errors"

// ErrNotRecognized is returned when no rule and no salvage applies.
var ErrNotRecognized = errors.New("command not recognized")

// Kind tags what a transcript asks for.
type Kind int

const (
	Unrecognized Kind = iota
	Add
	Remove
	ClearAll
	PriceFilter
	Search
)

func (k Kind) String() string {
	switch k {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case ClearAll:
		return "clear-all"
	case PriceFilter:
		return "price-filter"
	case Search:
		return "search"
	default:
		return "unrecognized"
	}
}

// PriceRange bounds a search session. Nil ends are open.
type PriceRange struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// IsZero reports whether neither bound is set.
func (r PriceRange) IsZero() bool {
	return r.Min == nil && r.Max == nil
}

// Contains reports whether price lies within the range, inclusive.
func (r PriceRange) Contains(price float64) bool {
	if r.Min != nil && price < *r.Min {
		return false
	}
	if r.Max != nil && price > *r.Max {
		return false
	}
	return true
}

// Intent is the structured reading of one final transcript.
type Intent struct {
	Kind     Kind
	Item     string
	Quantity int
	// Price is a spoken price, which overrides the catalog price on add.
	Price  *float64
	Filter PriceRange
	// Implicit is set when the item came from token salvage, not a template.
	Implicit   bool
	Rule       string
	Transcript string
}
