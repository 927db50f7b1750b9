package sectiongrid

import "strconv"

// Limit caps how many items may be selected at once across all sections.
// The zero value is Unlimited.
type Limit struct {
	max     int
	bounded bool
}

// Unlimited places no cap on the selection.
var Unlimited = Limit{}

// MaxSelected returns a Limit allowing at most n selected items.
func MaxSelected(n uint) Limit {
	return Limit{max: int(n), bounded: true}
}

// LimitFromPtr converts an optional cap, as found in configuration, to a Limit.
func LimitFromPtr(n *uint) Limit {
	if n == nil {
		return Unlimited
	}
	return MaxSelected(*n)
}

// Max returns the cap and whether one is set.
func (l Limit) Max() (int, bool) {
	return l.max, l.bounded
}

// Ptr returns the cap as an optional value, nil when unlimited.
func (l Limit) Ptr() *int {
	if !l.bounded {
		return nil
	}
	n := l.max
	return &n
}

// Allows reports whether one more item may be selected when count items are
// already selected.
func (l Limit) Allows(count int) bool {
	return !l.bounded || count < l.max
}

func (l Limit) String() string {
	if !l.bounded {
		return "unlimited"
	}
	return strconv.Itoa(l.max)
}
