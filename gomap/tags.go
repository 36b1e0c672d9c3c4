package gomap

import (
	"reflect"
	"strings"
)

// TagKey is the struct tag consulted for field names. A tag of "-" hides
// the field, embedded or not. Options after a comma are ignored.
//
//	type T struct {
//		ID     int    `yamprint:"id"`
//		secret string `yamprint:"-"`
//	}
const TagKey = "yamprint"

func fieldTag(f reflect.StructField) (name string, show bool) {
	tag, ok := f.Tag.Lookup(TagKey)
	if !ok {
		return f.Name, true
	}
	name, _, _ = strings.Cut(tag, ",")
	switch name {
	case "-":
		return "", false
	case "":
		return f.Name, true
	}
	return name, true
}
