package postgres

import (
	"reflect"
	"sync"
)

// structFields describes where the db-tagged fields of a struct type
// live. Embedded structs are flattened through embedded indexes.
type structFields struct {
	tagged   []taggedField
	embedded []int
}

type taggedField struct {
	index int
	tag   string
}

// fieldCache keys reflect.Type to *structFields. Reflection runs once
// per type.
var fieldCache sync.Map

func deref(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

func fieldsOf(t reflect.Type) *structFields {
	t = deref(t)
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*structFields)
	}

	sf := &structFields{}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.Anonymous {
				sf.embedded = append(sf.embedded, i)
				continue
			}
			tag := field.Tag.Get("db")
			if tag == "" || tag == "-" {
				continue
			}
			sf.tagged = append(sf.tagged, taggedField{index: i, tag: tag})
		}
	}

	fieldCache.Store(t, sf)
	return sf
}

// ExtractDBColumns lists the column names of T from its db tags,
// walking embedded structs depth-first. Repositories call it once at
// construction to build their select column list.
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	t = deref(t)
	if t.Kind() != reflect.Struct {
		return nil
	}

	sf := fieldsOf(t)
	var cols []string
	for _, emb := range sf.embedded {
		cols = append(cols, columnsOf(t.Field(emb).Type)...)
	}
	for _, f := range sf.tagged {
		cols = append(cols, f.tag)
	}
	return cols
}

// StructToMap flattens a struct into column-to-value pairs keyed by db
// tag. Fields without a tag or tagged "-" are skipped.
func StructToMap(v any) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	sf := fieldsOf(rv.Type())
	out := make(map[string]any, len(sf.tagged))

	for _, emb := range sf.embedded {
		for k, val := range StructToMap(rv.Field(emb).Interface()) {
			out[k] = val
		}
	}
	for _, f := range sf.tagged {
		out[f.tag] = rv.Field(f.index).Interface()
	}
	return out
}
