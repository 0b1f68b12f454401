package json

import (
	"fmt"

	gojson "github.com/goccy/go-json"
)

// Encode renders v as canonical JSON: compact, object keys sorted
// alphabetically at every level, numbers emitted as their stored literal.
// Encoding the same value twice yields byte-identical output.
func Encode(v Value) ([]byte, error) {
	return appendValue(nil, v)
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	switch t := v.(type) {
	case nil:
		return append(dst, "null"...), nil
	case bool:
		if t {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case Number:
		if !gojson.Valid([]byte(t)) {
			return nil, fmt.Errorf("json: invalid number literal %q", string(t))
		}
		return append(dst, t...), nil
	case string:
		b, err := gojson.Marshal(t)
		if err != nil {
			return nil, err
		}
		return append(dst, b...), nil
	case Array:
		dst = append(dst, '[')
		for i, e := range t {
			if i > 0 {
				dst = append(dst, ',')
			}
			var err error
			dst, err = appendValue(dst, e)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, ']'), nil
	case *Object:
		dst = append(dst, '{')
		for i, k := range t.sortedKeys() {
			if i > 0 {
				dst = append(dst, ',')
			}
			kb, err := gojson.Marshal(k)
			if err != nil {
				return nil, err
			}
			dst = append(dst, kb...)
			dst = append(dst, ':')
			dst, err = appendValue(dst, t.items[k])
			if err != nil {
				return nil, err
			}
		}
		return append(dst, '}'), nil
	}
	return nil, fmt.Errorf("json: value of kind %T is not encodable", v)
}

// MarshalJSON renders the object canonically, so an Object nests into any
// framework-driven serialization.
func (o *Object) MarshalJSON() ([]byte, error) {
	return appendValue(nil, o)
}

// UnmarshalJSON replaces the object's contents with the decoded input.
func (o *Object) UnmarshalJSON(b []byte) error {
	d, err := DecodeObject(b)
	if err != nil {
		return err
	}
	*o = *d
	return nil
}

// MarshalJSON renders the array canonically.
func (a Array) MarshalJSON() ([]byte, error) {
	return appendValue(nil, a)
}
