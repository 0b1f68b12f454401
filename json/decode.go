package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
)

// ErrDuplicateKey is wrapped by decode errors for objects that bind the same
// key twice. Duplicates are rejected outright: keeping either binding would
// make lossless round-trips ambiguous.
var ErrDuplicateKey = errors.New("json: duplicate object key")

// ErrTrailingData is wrapped by decode errors when input continues past the
// first complete JSON value.
var ErrTrailingData = errors.New("json: trailing data after value")

// Decode parses b into a Value tree. Numbers keep their source literal.
func Decode(b []byte) (Value, error) {
	return DecodeReader(bytes.NewReader(b))
}

// DecodeReader parses a single JSON value from r. Anything after the value,
// other than whitespace, is an error.
func DecodeReader(r io.Reader) (Value, error) {
	dec := gojson.NewDecoder(r)
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingData
	}
	return v, nil
}

// DecodeObject parses b and requires the result to be a JSON object.
func DecodeObject(b []byte) (*Object, error) {
	v, err := Decode(b)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*Object)
	if !ok {
		return nil, fmt.Errorf("json: expected object, got %s", KindName(v))
	}
	return o, nil
}

// decodeValue consumes exactly one value from dec.
func decodeValue(dec *gojson.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

func decodeFromToken(dec *gojson.Decoder, tok gojson.Token) (Value, error) {
	switch t := tok.(type) {
	case gojson.Delim:
		switch t {
		case '{':
			return decodeObjectBody(dec)
		case '[':
			return decodeArrayBody(dec)
		}
		return nil, fmt.Errorf("json: unexpected delimiter %q", t.String())
	case bool:
		return t, nil
	case string:
		return t, nil
	case gojson.Number:
		return Number(t), nil
	case nil:
		return nil, nil
	}
	return nil, fmt.Errorf("json: unexpected token %v", tok)
}

// decodeObjectBody reads key/value pairs after the opening brace.
func decodeObjectBody(dec *gojson.Decoder) (*Object, error) {
	o := NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("json: object key is not a string: %v", keyTok)
		}
		if _, exists := o.Get(key); exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		o.Set(key, v)
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return o, nil
}

func decodeArrayBody(dec *gojson.Decoder) (Array, error) {
	a := Array{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		a = append(a, v)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return a, nil
}

// KindName names the JSON kind of v for error messages.
func KindName(v Value) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case Number:
		return "number"
	case string:
		return "string"
	case Array:
		return "array"
	case *Object:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}
