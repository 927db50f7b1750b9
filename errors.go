package sectiongrid

import (
	"errors"
	"fmt"
)

// ErrInvalidCoordinate is matched by every CoordinateError.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// ErrCancelled is returned by a Viewer when the user quits without confirming.
var ErrCancelled = errors.New("selection cancelled")

// CoordinateReason identifies why a Coordinate is invalid.
type CoordinateReason string

// Coordinate error reasons.
const (
	ReasonInvalidSection CoordinateReason = "invalid_section"
	ReasonInvalidItem    CoordinateReason = "invalid_item"
)

// CoordinateError describes a Toggle call addressing a position outside the
// current sections.
type CoordinateError struct {
	At     Coordinate
	Reason CoordinateReason
	Count  int // Number of sections (invalid_section) or items in the section (invalid_item)
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	switch e.Reason {
	case ReasonInvalidSection:
		if e.Count == 0 {
			return fmt.Sprintf("section %d is out of bounds (no sections)", e.At.Section)
		}
		return fmt.Sprintf("section %d is out of bounds (valid: 0-%d)", e.At.Section, e.Count-1)
	case ReasonInvalidItem:
		if e.Count == 0 {
			return fmt.Sprintf("section %d has no items, item %d is invalid", e.At.Section, e.At.Item)
		}
		return fmt.Sprintf("section %d: item %d is out of bounds (valid: 0-%d)",
			e.At.Section, e.At.Item, e.Count-1)
	default:
		return fmt.Sprintf("invalid coordinate (%d, %d)", e.At.Section, e.At.Item)
	}
}

// Unwrap allows errors.Is(err, ErrInvalidCoordinate).
func (e *CoordinateError) Unwrap() error {
	return ErrInvalidCoordinate
}

// validateCoordinate checks c against sections and returns a *CoordinateError
// when it is out of range.
func validateCoordinate(sections []Section, c Coordinate) error {
	if c.Section < 0 || c.Section >= len(sections) {
		return &CoordinateError{At: c, Reason: ReasonInvalidSection, Count: len(sections)}
	}
	items := sections[c.Section].Items
	if c.Item < 0 || c.Item >= len(items) {
		return &CoordinateError{At: c, Reason: ReasonInvalidItem, Count: len(items)}
	}
	return nil
}
