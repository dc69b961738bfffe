package ply

import (
	"fmt"
	"strings"
	"unicode"
)

// elementLayout is one element as it appears in the file. Header and data
// are both emitted from the same layout so their orders cannot drift apart.
type elementLayout struct {
	name  string
	rows  int
	props []propertyLayout
}

type propertyLayout struct {
	name string
	typ  string
	data Data
}

func (pc PointCloud) layout() ([]elementLayout, error) {
	ids := pc.orderedElements()
	layouts := make([]elementLayout, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		name := id.PLYName()
		if !validName(name) {
			return nil, &StructuralError{Element: name, Reason: "invalid element name"}
		}
		if seen[name] {
			return nil, &StructuralError{Element: name, Reason: "duplicate element"}
		}
		seen[name] = true

		elem := pc.Elements[id]
		if len(elem) == 0 {
			return nil, &StructuralError{Element: name, Reason: "element has no properties"}
		}
		for prop, attr := range elem {
			if attr.Type == "" || attr.Data == nil {
				return nil, fmt.Errorf("%w: %s.%s", ErrMissingAttributeField, name, prop)
			}
		}

		rows, err := pc.Rows(id)
		if err != nil {
			return nil, err
		}

		l := elementLayout{name: name, rows: rows}
		for _, prop := range orderedProperties(id, elem) {
			attr := elem[prop]
			if !validName(prop) {
				return nil, &StructuralError{Element: name, Property: prop, Reason: "invalid property name"}
			}
			if !validName(attr.Type) {
				return nil, &StructuralError{Element: name, Property: prop, Reason: fmt.Sprintf("invalid type %q", attr.Type)}
			}
			l.props = append(l.props, propertyLayout{name: prop, typ: attr.Type, data: attr.Data})
		}
		if id.Kind == PointElement {
			err = checkPointColumns(l)
		} else {
			err = checkSingleRow(l)
		}
		if err != nil {
			return nil, err
		}
		layouts = append(layouts, l)
	}
	return layouts, nil
}

// checkPointColumns enforces that y and z exist and that every array in the
// point element is exactly as long as x. Scalars are left to the data
// emitter, which rejects them past row 0.
func checkPointColumns(l elementLayout) error {
	have := make(map[string]bool, len(l.props))
	for _, p := range l.props {
		have[p.name] = true
		n, isArray := p.data.Rows()
		if isArray && n != l.rows {
			return &StructuralError{
				Element:  l.name,
				Property: p.name,
				Reason:   fmt.Sprintf("has %d values, element has %d rows", n, l.rows),
			}
		}
	}
	for _, axis := range leadingPointProperties {
		if !have[axis] {
			return &StructuralError{Element: l.name, Property: axis, Reason: "missing attribute"}
		}
	}
	return nil
}

// checkSingleRow rejects arrays in an auxiliary element unless they hold
// exactly the one value the element's single row can carry.
func checkSingleRow(l elementLayout) error {
	for _, p := range l.props {
		if n, isArray := p.data.Rows(); isArray && n != 1 {
			return &StructuralError{
				Element:  l.name,
				Property: p.name,
				Reason:   fmt.Sprintf("auxiliary element has %d values, expected 1", n),
			}
		}
	}
	return nil
}

func validName(s string) bool {
	return s != "" && strings.IndexFunc(s, unicode.IsSpace) < 0
}
