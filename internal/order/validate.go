package order

import "fmt"

// Line is one requested (product, quantity) pair. Repeated product ids are
// legal and stay separate lines.
type Line struct {
	ProductID uint
	Quantity  int
}

// ValidateLines classifies a raw line set before any storage access, so a
// rejected request never touches the database.
func ValidateLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}
	for i, ln := range lines {
		if ln.Quantity <= 0 {
			return fmt.Errorf("%w: line %d has quantity %d", ErrInvalidQuantity, i, ln.Quantity)
		}
	}
	return nil
}
