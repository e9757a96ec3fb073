package codec

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// Normalize converts an arbitrary Go value into the Value tree of
// SPEC_FULL.md §3. It is the only place in the package that depends on
// host-language reflection; the shape analyzer, emitter, scanner, parser
// and decoder driver all operate purely on Value.
//
// Sequences become Array, keyed containers with string keys become
// Object, numerics become Int when representable as an int64 and Float
// otherwise, and unsupported types are coerced to their canonical textual
// form via fmt.Sprintf("%v", ...) rather than rejected outright.
func Normalize(v any, opts EncodeOptions) (Value, error) {
	if v == nil {
		return Null(), nil
	}
	switch val := v.(type) {
	case Value:
		return val, nil
	case Object:
		return ObjFrom(val), nil
	case time.Time:
		return Str(opts.TimeFormatter(val)), nil
	}
	return normalizeReflect(reflect.ValueOf(v), opts)
}

func normalizeReflect(rv reflect.Value, opts EncodeOptions) (Value, error) {
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return Null(), nil
	}
	if rv.CanInterface() {
		switch val := rv.Interface().(type) {
		case Value:
			return val, nil
		case Object:
			return ObjFrom(val), nil
		}
	}

	if rv.Type() == timeType {
		return Str(opts.TimeFormatter(rv.Interface().(time.Time))), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > (1<<63 - 1) {
			return Float(float64(u)), nil
		}
		return Int(int64(u)), nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if i := int64(f); float64(i) == f {
			return Int(i), nil
		}
		return Float(f), nil

	case reflect.String:
		return Str(rv.String()), nil

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return ArrSlice(nil), nil
		}
		n := rv.Len()
		items := make([]Value, n)
		for i := 0; i < n; i++ {
			elem, err := normalizeReflect(rv.Index(i), opts)
			if err != nil {
				return Value{}, err
			}
			items[i] = elem
		}
		return ArrSlice(items), nil

	case reflect.Map:
		return normalizeMap(rv, opts)

	case reflect.Struct:
		return normalizeStruct(rv, opts)

	default:
		return Str(fmt.Sprintf("%v", rv.Interface())), nil
	}
}

func normalizeMap(rv reflect.Value, opts EncodeOptions) (Value, error) {
	keys := rv.MapKeys()
	type kv struct {
		key string
		val reflect.Value
	}
	pairs := make([]kv, 0, len(keys))
	for _, k := range keys {
		if k.Kind() != reflect.String {
			return Value{}, &InvalidInputError{Reason: fmt.Sprintf("map key %v is not a string", k)}
		}
		pairs = append(pairs, kv{key: k.String(), val: rv.MapIndex(k)})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	fields := make([]Field, 0, len(pairs))
	for _, p := range pairs {
		val, err := normalizeReflect(p.val, opts)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: p.key, Value: val})
	}
	return Obj(fields...), nil
}

func normalizeStruct(rv reflect.Value, opts EncodeOptions) (Value, error) {
	t := rv.Type()
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, omitEmpty, skip := fieldNameFromTags(sf)
		if skip {
			continue
		}
		fv := rv.Field(i)
		if omitEmpty && isEmptyReflect(fv) {
			continue
		}
		val, err := normalizeReflect(fv, opts)
		if err != nil {
			return Value{}, err
		}
		fields = append(fields, Field{Key: name, Value: val})
	}
	return Obj(fields...), nil
}

// fieldNameFromTags resolves a struct field's TOON key, preferring a
// `toon` tag and falling back to `json`.
func fieldNameFromTags(sf reflect.StructField) (name string, omitEmpty bool, skip bool) {
	tag, ok := sf.Tag.Lookup("toon")
	if !ok {
		tag, ok = sf.Tag.Lookup("json")
	}
	if !ok || tag == "" {
		return sf.Name, false, false
	}
	parts := splitTag(tag)
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	name = parts[0]
	if name == "" {
		name = sf.Name
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func splitTag(tag string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			parts = append(parts, tag[start:i])
			start = i + 1
		}
	}
	parts = append(parts, tag[start:])
	return parts
}

func isEmptyReflect(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
