package neo

import "fmt"

// Quantity is a numeric value tagged with a physical unit. The unit is an
// opaque label; no conversion is performed.
type Quantity struct {
	Val  float64
	Unit string
}

func (q Quantity) String() string {
	return fmt.Sprintf("%g %s", q.Val, q.Unit)
}

// IsZero reports whether the quantity was never set.
func (q Quantity) IsZero() bool {
	return q.Val == 0 && q.Unit == ""
}
