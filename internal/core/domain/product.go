package domain

import "github.com/google/uuid"

// Segment is an audience category shared by customers, products and
// campaigns. A campaign targets exactly one segment.
type Segment string

const (
	SegmentMale       Segment = "Male"
	SegmentFemale     Segment = "Female"
	SegmentSeniorMale Segment = "Senior Male"
)

// Segments lists every known segment in display order.
func Segments() []Segment {
	return []Segment{SegmentMale, SegmentFemale, SegmentSeniorMale}
}

// Valid reports whether s is one of the known segments.
func (s Segment) Valid() bool {
	switch s {
	case SegmentMale, SegmentFemale, SegmentSeniorMale:
		return true
	default:
		return false
	}
}

// Product is a catalog entry. Prices are currency amounts.
type Product struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	BasePrice float64   `json:"base_price"`
	Segment   Segment   `json:"segment"`
}
