package track

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/keyframe-go/engine/animatable"
)

// pathElement is one step of a property path: either an exported struct field
// access or a slice/array element access.
type pathElement struct {
	field   string
	index   int
	indexed bool
}

// PropertyPath locates a property within a component by walking exported
// struct fields and slice/array elements. Paths are spelled as dot-separated
// field names with optional bracketed element indices, for example "Rotation"
// or "Sections[0].Style.FontSize". The empty path targets the component
// itself, which requires the component type to be registered as animatable.
type PropertyPath struct {
	raw      string
	elements []pathElement
}

// ParsePropertyPath parses a property path string.
//
// Parameters:
//   - path: the path to parse; empty targets the component itself
//
// Returns:
//   - PropertyPath: the parsed path
//   - error: an error if the path is malformed
func ParsePropertyPath(path string) (PropertyPath, error) {
	p := PropertyPath{raw: path}
	if path == "" {
		return p, nil
	}

	for _, segment := range strings.Split(path, ".") {
		name := segment
		rest := ""
		if i := strings.IndexByte(segment, '['); i >= 0 {
			name = segment[:i]
			rest = segment[i:]
		}
		if name == "" && rest == "" {
			return PropertyPath{}, fmt.Errorf("property path %q has an empty segment", path)
		}
		if name != "" {
			p.elements = append(p.elements, pathElement{field: name})
		}
		for rest != "" {
			end := strings.IndexByte(rest, ']')
			if rest[0] != '[' || end < 0 {
				return PropertyPath{}, fmt.Errorf("property path %q has a malformed index in segment %q", path, segment)
			}
			index, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return PropertyPath{}, fmt.Errorf("property path %q has a non-numeric index in segment %q", path, segment)
			}
			p.elements = append(p.elements, pathElement{index: index, indexed: true})
			rest = rest[end+1:]
		}
	}

	return p, nil
}

// String returns the path as it was parsed.
//
// Returns:
//   - string: the original path spelling
func (p PropertyPath) String() string {
	return p.raw
}

// Resolve walks the path starting at component, which must be a non-nil
// pointer to the component value, and returns a pointer to the located
// property. Intermediate pointers are followed.
//
// Parameters:
//   - component: a pointer to the component value
//
// Returns:
//   - any: a pointer to the property
//   - error: animatable.ErrPropertyNotPresent if any step cannot be resolved
func (p PropertyPath) Resolve(component any) (any, error) {
	v := reflect.ValueOf(component)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return nil, fmt.Errorf("resolving path %q: component is not a valid pointer: %w", p.raw, animatable.ErrPropertyNotPresent)
	}
	v = v.Elem()

	for _, element := range p.elements {
		if element.indexed {
			if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
				return nil, fmt.Errorf("resolving path %q: index into non-indexable %s: %w", p.raw, v.Kind(), animatable.ErrPropertyNotPresent)
			}
			if element.index < 0 || element.index >= v.Len() {
				return nil, fmt.Errorf("resolving path %q: index %d out of range: %w", p.raw, element.index, animatable.ErrPropertyNotPresent)
			}
			v = v.Index(element.index)
		} else {
			if v.Kind() != reflect.Struct {
				return nil, fmt.Errorf("resolving path %q: field access on non-struct %s: %w", p.raw, v.Kind(), animatable.ErrPropertyNotPresent)
			}
			v = v.FieldByName(element.field)
			if !v.IsValid() {
				return nil, fmt.Errorf("resolving path %q: no field %q: %w", p.raw, element.field, animatable.ErrPropertyNotPresent)
			}
		}
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, fmt.Errorf("resolving path %q: nil pointer: %w", p.raw, animatable.ErrPropertyNotPresent)
			}
			v = v.Elem()
		}
	}

	if !v.CanAddr() || !v.CanSet() {
		return nil, fmt.Errorf("resolving path %q: property is not settable: %w", p.raw, animatable.ErrPropertyNotPresent)
	}
	return v.Addr().Interface(), nil
}
