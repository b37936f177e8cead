// Package schema models the authoring-relevant slice of a resource
// type's schema: property names with their canonical casing, read-only
// flags, and nesting through objects and arrays.
package schema

import (
	"fmt"
	"strings"

	"github.com/sdeodharms/bicep/internal/jsonval"
)

// PropertyFlags mark schema attributes of a property.
type PropertyFlags uint8

const (
	ReadOnly PropertyFlags = 1 << iota
	Required
	WriteOnly
)

func (f PropertyFlags) Has(flag PropertyFlags) bool {
	return f&flag != 0
}

// Property describes one named property of an object type.
type Property struct {
	Name  string // canonical casing
	Flags PropertyFlags

	// Object is the nested schema when the property holds an object;
	// Array is the element schema when it holds an array of objects.
	// Both are nil for scalar properties.
	Object *ObjectType
	Array  *ObjectType
}

// ObjectType is the schema of an object-shaped value.
type ObjectType struct {
	Name       string
	Properties []Property
}

// Lookup finds a property by name, case-insensitively, returning the
// canonically cased entry.
func (t *ObjectType) Lookup(name string) (Property, bool) {
	for _, p := range t.Properties {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Property{}, false
}

// ParseObjectType reads a schema document of the form
//
//	{
//	  "name": "...",
//	  "properties": {
//	    "id":         {"flags": ["readOnly"]},
//	    "properties": {"properties": {...}},
//	    "zones":      {"items": {...}}
//	  }
//	}
//
// Property order follows the document; jsonval preserves it.
func ParseObjectType(data []byte) (*ObjectType, error) {
	v, err := jsonval.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("malformed schema document: %w", err)
	}
	return parseObjectType(v)
}

func parseObjectType(v jsonval.Value) (*ObjectType, error) {
	if v.Kind != jsonval.KindObject {
		return nil, fmt.Errorf("schema type must be an object, got %s", v.Kind)
	}

	t := &ObjectType{}
	for _, m := range v.Members {
		switch m.Key {
		case "name":
			if m.Value.Kind != jsonval.KindString {
				return nil, fmt.Errorf("schema type name must be a string")
			}
			t.Name = m.Value.Str
		case "properties":
			if m.Value.Kind != jsonval.KindObject {
				return nil, fmt.Errorf("schema properties must be an object")
			}
			for _, pm := range m.Value.Members {
				prop, err := parseProperty(pm.Key, pm.Value)
				if err != nil {
					return nil, err
				}
				t.Properties = append(t.Properties, prop)
			}
		}
	}
	return t, nil
}

func parseProperty(name string, v jsonval.Value) (Property, error) {
	if v.Kind != jsonval.KindObject {
		return Property{}, fmt.Errorf("schema property %q must be an object", name)
	}

	prop := Property{Name: name}
	for _, m := range v.Members {
		switch m.Key {
		case "flags":
			if m.Value.Kind != jsonval.KindArray {
				return Property{}, fmt.Errorf("flags of property %q must be an array", name)
			}
			for _, item := range m.Value.Items {
				flag, err := parseFlag(item)
				if err != nil {
					return Property{}, fmt.Errorf("property %q: %w", name, err)
				}
				prop.Flags |= flag
			}
		case "properties":
			nested, err := parseObjectType(jsonval.Object(jsonval.Member{Key: "properties", Value: m.Value}))
			if err != nil {
				return Property{}, fmt.Errorf("property %q: %w", name, err)
			}
			prop.Object = nested
		case "items":
			nested, err := parseObjectType(m.Value)
			if err != nil {
				return Property{}, fmt.Errorf("property %q: %w", name, err)
			}
			prop.Array = nested
		}
	}
	return prop, nil
}

func parseFlag(v jsonval.Value) (PropertyFlags, error) {
	if v.Kind != jsonval.KindString {
		return 0, fmt.Errorf("flag must be a string, got %s", v.Kind)
	}
	switch strings.ToLower(v.Str) {
	case "readonly":
		return ReadOnly, nil
	case "required":
		return Required, nil
	case "writeonly":
		return WriteOnly, nil
	}
	return 0, fmt.Errorf("unknown flag %q", v.Str)
}
