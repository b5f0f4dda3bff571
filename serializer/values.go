package serializer

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	oaswire "github.com/offscale/cdd-web-ng-sub004"
)

// AsArray reports whether the value is a composite array for serialization
// purposes and returns its elements. Binary values ([]byte, Blob) and
// timestamps are scalars, never arrays.
func AsArray(value any) ([]any, bool) {
	switch value.(type) {
	case nil, string, []byte, oaswire.Blob, *oaswire.Blob, time.Time, *time.Time:
		return nil, false
	}
	if items, ok := value.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// AsObject reports whether the value is a composite object for serialization
// purposes. Keys are returned in lexical order so that object serialization
// is deterministic.
func AsObject(value any) (keys []string, fields map[string]any, ok bool) {
	switch m := value.(type) {
	case nil:
		return nil, nil, false
	case map[string]any:
		fields = m
	case map[string]string:
		fields = make(map[string]any, len(m))
		for k, v := range m {
			fields[k] = v
		}
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return nil, nil, false
		}
		fields = make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			fields[fmt.Sprintf("%v", iter.Key().Interface())] = iter.Value().Interface()
		}
	}
	keys = make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, fields, true
}
