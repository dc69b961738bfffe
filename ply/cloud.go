package ply

import "fmt"

// ElementKind distinguishes the reserved point element from any other
// element a cloud carries.
type ElementKind int

const (
	NamedElement ElementKind = iota
	PointElement
)

// PointElementName is what the point element is called inside a PLY file.
const PointElementName = "vertex"

// ElementID identifies an element of a PointCloud. Name is ignored for the
// point element.
type ElementID struct {
	Kind ElementKind
	Name string
}

// Point returns the id of the primary per-point attribute table.
func Point() ElementID {
	return ElementID{Kind: PointElement}
}

// Named returns the id of an auxiliary element.
func Named(name string) ElementID {
	return ElementID{Kind: NamedElement, Name: name}
}

// PLYName is the name written on the element line of the header.
func (id ElementID) PLYName() string {
	if id.Kind == PointElement {
		return PointElementName
	}
	return id.Name
}

func (id ElementID) String() string {
	return id.PLYName()
}

// Attribute is one typed property column.
type Attribute struct {
	// Type is the PLY type tag written in the header, e.g. "float" or "int".
	Type string
	Data Data
}

// Element maps property names to their attributes.
type Element map[string]Attribute

// Record is one free-form provenance entry.
type Record map[string]any

// PointCloud is the dataset written by Write. Provenance entries end up as
// header comments and never as elements.
type PointCloud struct {
	Elements   map[ElementID]Element
	Provenance []Record
}

// NewPointCloud builds a cloud whose point element holds attrs.
func NewPointCloud(attrs Element) PointCloud {
	return PointCloud{
		Elements: map[ElementID]Element{Point(): attrs},
	}
}

// AddElement sets the auxiliary element name, replacing any previous one.
func (pc *PointCloud) AddElement(name string, attrs Element) {
	if pc.Elements == nil {
		pc.Elements = make(map[ElementID]Element)
	}
	pc.Elements[Named(name)] = attrs
}

// Log appends a provenance record.
func (pc *PointCloud) Log(r Record) {
	pc.Provenance = append(pc.Provenance, r)
}

// Rows reports the number of data lines the element id contributes. The
// point element's count comes from its x attribute; every other element has
// exactly one row.
func (pc PointCloud) Rows(id ElementID) (int, error) {
	if id.Kind != PointElement {
		return 1, nil
	}
	elem, ok := pc.Elements[id]
	if !ok {
		return 0, &StructuralError{Element: id.PLYName(), Reason: "no point element"}
	}
	x, ok := elem["x"]
	if !ok {
		return 0, &StructuralError{Element: id.PLYName(), Property: "x", Reason: "missing attribute"}
	}
	if x.Data == nil {
		return 0, fmt.Errorf("%w: %s.x has no data", ErrMissingAttributeField, id.PLYName())
	}
	n, isArray := x.Data.Rows()
	if !isArray {
		return 0, &StructuralError{Element: id.PLYName(), Property: "x", Reason: "row count cannot be derived from a scalar"}
	}
	return n, nil
}
