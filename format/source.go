package format

import (
	"fmt"
	"reflect"

	"github.com/goccy/go-yaml"
	"github.com/signadot/yamprint/gomap"
	"github.com/signadot/yamprint/ir"
)

var mapSliceType = reflect.TypeOf(yaml.MapSlice{})

// MapSliceSource presents yaml.MapSlice values as objects in document
// order.
type MapSliceSource struct{}

func (MapSliceSource) Handles(t reflect.Type) bool {
	return t == mapSliceType
}

func (MapSliceSource) Properties(v reflect.Value, yield func(gomap.Property) bool) {
	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		val := item.FieldByName("Value")
		p := gomap.Property{
			Name:     fmt.Sprint(item.FieldByName("Key").Interface()),
			Owner:    mapSliceType,
			Type:     val.Type(),
			Exported: true,
			Value:    val,
		}
		if !yield(p) {
			return
		}
	}
}

func (MapSliceSource) Ctor(reflect.Value) ir.Ctor {
	return ir.PlainCtor(mapSliceType.String())
}
