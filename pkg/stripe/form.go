package stripe

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
)

// FormEncoder lets a type control its own flattening. Implementations append
// zero or more pairs under the given key and may emit nothing at all for an
// absent value.
type FormEncoder interface {
	EncodeFormValues(values url.Values, key string) error
}

// EncodeForm flattens a typed value into application/x-www-form-urlencoded
// pairs. Nested objects use bracket notation (parent[child][grandchild]),
// maps encode one bracketed key per entry (metadata[k]=v), and absent
// optional fields (nil pointers, empty strings, zero numbers) produce no key
// at all. Fields opt in via a `form:"name"` tag; embedded structs flatten at
// the same level.
func EncodeForm(v interface{}) (url.Values, error) {
	values := url.Values{}

	if v == nil {
		return values, nil
	}

	err := encodeValue(values, "", reflect.ValueOf(v), false)
	if err != nil {
		return nil, err
	}

	return values, nil
}

//nolint:cyclop // the kind switch is irreducible
func encodeValue(values url.Values, key string, val reflect.Value, explicit bool) error {
	if !val.IsValid() {
		return nil
	}

	if isNilable(val.Kind()) && val.IsNil() {
		return nil
	}

	if val.CanInterface() {
		if enc, ok := val.Interface().(FormEncoder); ok {
			return enc.EncodeFormValues(values, key)
		}
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface:
		// a present pointer encodes its zero value explicitly
		return encodeValue(values, key, val.Elem(), true)
	case reflect.Struct:
		return encodeStruct(values, key, val)
	case reflect.Map:
		return encodeMap(values, key, val)
	case reflect.Slice, reflect.Array:
		return encodeSlice(values, key, val)
	default:
		s, present, err := scalarString(key, val, explicit)
		if err != nil {
			return err
		}

		if present {
			values.Set(key, s)
		}

		return nil
	}
}

func encodeStruct(values url.Values, prefix string, val reflect.Value) error {
	structType := val.Type()

	for i := range structType.NumField() {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue // unexported
		}

		tag := field.Tag.Get("form")
		if tag == "-" {
			continue
		}

		if tag == "" {
			if field.Anonymous {
				err := encodeValue(values, prefix, val.Field(i), false)
				if err != nil {
					return err
				}
			}

			continue
		}

		err := encodeValue(values, childKey(prefix, tag), val.Field(i), false)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeMap(values url.Values, prefix string, val reflect.Value) error {
	if val.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("%w: map key type %s for %q", errUnsupportedFormType, val.Type().Key(), prefix)
	}

	iter := val.MapRange()
	for iter.Next() {
		err := encodeValue(values, childKey(prefix, iter.Key().String()), iter.Value(), true)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeSlice(values url.Values, key string, val reflect.Value) error {
	for i := range val.Len() {
		elem := val.Index(i)

		if isScalar(elem) {
			s, _, err := scalarString(key, elem, true)
			if err != nil {
				return err
			}

			values.Add(key+"[]", s)

			continue
		}

		err := encodeValue(values, fmt.Sprintf("%s[%d]", key, i), elem, true)
		if err != nil {
			return err
		}
	}

	return nil
}

func isScalar(val reflect.Value) bool {
	if _, ok := val.Interface().(FormEncoder); ok {
		return false
	}

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		return false
	default:
		return true
	}
}

func childKey(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "[" + name + "]"
}

var errUnsupportedFormType = fmt.Errorf("unsupported form type")

func isNilable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return true
	default:
		return false
	}
}

// scalarString renders a scalar value, reporting absence for zero values that
// were not reached through a pointer or map entry.
func scalarString(key string, val reflect.Value, explicit bool) (string, bool, error) {
	switch val.Kind() {
	case reflect.String:
		s := val.String()
		if s == "" && !explicit {
			return "", false, nil
		}

		return s, true, nil
	case reflect.Bool:
		b := val.Bool()
		if !b && !explicit {
			return "", false, nil
		}

		return strconv.FormatBool(b), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := val.Int()
		if n == 0 && !explicit {
			return "", false, nil
		}

		return strconv.FormatInt(n, 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := val.Uint()
		if n == 0 && !explicit {
			return "", false, nil
		}

		return strconv.FormatUint(n, 10), true, nil
	case reflect.Float32, reflect.Float64:
		f := val.Float()
		if f == 0 && !explicit {
			return "", false, nil
		}

		return strconv.FormatFloat(f, 'f', -1, 64), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s for key %q", errUnsupportedFormType, val.Type(), key)
	}
}
