package ply

import (
	"errors"
	"fmt"
)

var (
	// ErrDestinationExists is returned by Write when the output path is
	// already present. Nothing is written in that case.
	ErrDestinationExists = errors.New("ply: destination already exists")

	// ErrStructuralMismatch marks a cloud whose shape cannot be serialized,
	// such as a scalar read past row 0 or a point element without x.
	ErrStructuralMismatch = errors.New("ply: structural mismatch")

	// ErrMissingAttributeField marks an attribute without a type or data.
	ErrMissingAttributeField = errors.New("ply: attribute missing type or data")
)

// StructuralError describes where a cloud failed to serialize.
type StructuralError struct {
	Element  string
	Property string
	Row      int
	Reason   string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Property == "":
		return fmt.Sprintf("ply: element %q: %s", e.Element, e.Reason)
	case e.Row > 0:
		return fmt.Sprintf("ply: %s.%s row %d: %s", e.Element, e.Property, e.Row, e.Reason)
	default:
		return fmt.Sprintf("ply: %s.%s: %s", e.Element, e.Property, e.Reason)
	}
}

func (e *StructuralError) Unwrap() error {
	return ErrStructuralMismatch
}
