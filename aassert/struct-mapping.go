package aassert

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// NumFields asserts that object, a struct or a pointer to one, has expected exported fields.
// Exported fields of nested structs and of the elements of slices and maps are counted as well.
//
// Use it to guard a mapping between two layers, e.g. from a domain model to an api response:
// if a field is added on one side, the assertion fails until the mapping is checked.
func NumFields(t *testing.T, expected int, object any, msgAndArgs ...any) bool {
	t.Helper()

	if object == nil {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	elem := reflect.Indirect(reflect.ValueOf(object))
	if elem.Kind() != reflect.Struct {
		return assert.Fail(t, "invalid argument, it has to be a struct", msgAndArgs...)
	}

	if fields := countFields(elem.Type()); fields != expected {
		t.Logf("the exported fields of %s changed: check every function mapping it and fix the expected count in %s",
			elem.Type(), t.Name())

		return assert.Fail(t, fmt.Sprintf("struct changed, it has: %d fields, expected: %d", fields, expected), msgAndArgs...)
	}

	return true
}

func countFields(typ reflect.Type) int {
	for typ.Kind() == reflect.Ptr || typ.Kind() == reflect.Slice || typ.Kind() == reflect.Array || typ.Kind() == reflect.Map {
		typ = typ.Elem()
	}

	if typ.Kind() != reflect.Struct {
		return 0
	}

	var fields int

	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}

		fields++
		fields += countFields(field.Type)
	}

	return fields
}
