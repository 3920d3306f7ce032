package layout

import "sort"

// Property identifies a layout property stored on an element.
type Property int

const (
	// PropertyBackground holds the background fill (*background.Fill).
	PropertyBackground Property = iota + 1
	// PropertyBackgroundImage holds the ordered background layers ([]background.Layer).
	PropertyBackgroundImage
)

func (p Property) String() string {
	switch p {
	case PropertyBackground:
		return "background"
	case PropertyBackgroundImage:
		return "background-image"
	}
	return "unknown"
}

// PropertyContainer is the sink receiving resolved layout properties.
type PropertyContainer interface {
	SetProperty(p Property, value any)
}

// Element is a PropertyContainer keeping properties in memory.
type Element struct {
	properties map[Property]any
}

func NewElement() *Element {
	return &Element{properties: make(map[Property]any)}
}

func (e *Element) SetProperty(p Property, value any) {
	e.properties[p] = value
}

// Property returns the value stored for p.
func (e *Element) Property(p Property) (any, bool) {
	v, ok := e.properties[p]
	return v, ok
}

func (e *Element) HasProperty(p Property) bool {
	_, ok := e.properties[p]
	return ok
}

// Properties returns the keys of the properties set on e, sorted.
func (e *Element) Properties() []Property {
	keys := make([]Property, 0, len(e.properties))
	for k := range e.properties {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
