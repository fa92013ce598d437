package demo

import (
	"reflect"

	"github.com/google/uuid"
)

// Category classifies a type for the inspection table.
type Category string

const (
	// CategoryPrimitive is a raw, general-purpose representation such as
	// string, int or uuid.UUID.
	CategoryPrimitive Category = "primitive"
	// CategoryWrapper is a named type declared over a primitive representation.
	CategoryWrapper Category = "nominal wrapper"
	// CategoryOther covers everything else (structs, slices, funcs...).
	CategoryOther Category = "other"
)

// TypeInfo describes one inspected type.
type TypeInfo struct {
	Name       string
	Underlying string
	Category   Category
}

var rawIdentifier = reflect.TypeOf((*uuid.UUID)(nil)).Elem() //nolint: gochecknoglobals

// Inspect reports whether t is a raw primitive representation or a nominal
// wrapper around one. A nil type is reported as CategoryOther.
func Inspect(t reflect.Type) TypeInfo {
	if t == nil {
		return TypeInfo{Name: "<nil>", Underlying: "<nil>", Category: CategoryOther}
	}

	info := TypeInfo{Name: t.String(), Underlying: t.Kind().String()}

	switch {
	case isRaw(t):
		info.Category = CategoryPrimitive
	case t.Name() != "" && t.ConvertibleTo(rawIdentifier) && t.Kind() == rawIdentifier.Kind():
		info.Category = CategoryWrapper
		info.Underlying = rawIdentifier.String()
	case t.Name() != "" && isBasic(t.Kind()):
		info.Category = CategoryWrapper
	default:
		info.Category = CategoryOther
	}

	return info
}

// InspectAll inspects the dynamic type of each value in order.
func InspectAll(values ...any) []TypeInfo {
	infos := make([]TypeInfo, 0, len(values))
	for _, v := range values {
		infos = append(infos, Inspect(reflect.TypeOf(v)))
	}

	return infos
}

func isRaw(t reflect.Type) bool {
	if t == rawIdentifier {
		return true
	}
	if t.Name() == "" {
		// unnamed [16]byte is the bare representation of a UUID.
		return t.Kind() == reflect.Array && t.ConvertibleTo(rawIdentifier)
	}

	return t.PkgPath() == "" && isBasic(t.Kind())
}

func isBasic(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}
