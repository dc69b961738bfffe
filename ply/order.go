package ply

import "sort"

var leadingPointProperties = []string{"x", "y", "z"}

// OrderElements returns ids in file order: the point element first, then
// every other element sorted by name.
func OrderElements(ids []ElementID) []ElementID {
	ordered := make([]ElementID, 0, len(ids))
	named := make([]ElementID, 0, len(ids))
	for _, id := range ids {
		if id.Kind == PointElement {
			ordered = append(ordered, id)
			continue
		}
		named = append(named, id)
	}
	sort.Slice(named, func(i, j int) bool { return named[i].Name < named[j].Name })
	return append(ordered, named...)
}

// OrderProperties returns the property names of element id in file order.
// The point element leads with x, y and z; everything else is sorted.
func OrderProperties(id ElementID, names []string) []string {
	rest := make([]string, 0, len(names))
	if id.Kind != PointElement {
		rest = append(rest, names...)
		sort.Strings(rest)
		return rest
	}

	present := make(map[string]bool, len(names))
	for _, n := range names {
		present[n] = true
	}
	ordered := make([]string, 0, len(names))
	for _, n := range leadingPointProperties {
		if present[n] {
			ordered = append(ordered, n)
		}
	}
	for _, n := range names {
		if n != "x" && n != "y" && n != "z" {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}

func (pc PointCloud) orderedElements() []ElementID {
	ids := make([]ElementID, 0, len(pc.Elements))
	for id := range pc.Elements {
		ids = append(ids, id)
	}
	return OrderElements(ids)
}

func orderedProperties(id ElementID, elem Element) []string {
	names := make([]string, 0, len(elem))
	for name := range elem {
		names = append(names, name)
	}
	return OrderProperties(id, names)
}
