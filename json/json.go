// Package json provides the generic JSON tree the geojson codecs operate on:
// a tagged value union and an insertion-ordered object.
//
// A Value holds one of the closed set of kinds:
//
//	nil     JSON null
//	bool    JSON true/false
//	Number  JSON number, carrying the source literal verbatim
//	string  JSON string
//	Array   JSON array
//	*Object JSON object, insertion-ordered
//
// Objects remember the order keys were first inserted, which is what makes
// lossless foreign-member round-trips possible. Canonical textual output,
// however, sorts keys alphabetically at every object level; see Encode.
package json

import (
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"
)

// Value is one of: nil, bool, Number, string, Array, *Object.
type Value = any

// Number carries a JSON number as its source literal. Decoding never converts
// to float64, so 1e2, 100 and 100.0 stay distinct on the wire.
type Number = gojson.Number

// Array is a JSON array.
type Array []Value

// Int returns a Number holding the decimal literal for i.
func Int(i int64) Number { return Number(strconv.FormatInt(i, 10)) }

// Float returns a Number for f using the shortest literal that round-trips
// through float64. Integral floats lose the trailing ".0" (102.0 becomes 102).
func Float(f float64) Number { return Number(strconv.FormatFloat(f, 'g', -1, 64)) }

// Object is an insertion-ordered string-keyed map of Values.
// The zero value is not usable; construct with NewObject.
type Object struct {
	keys  []string
	items map[string]Value
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{items: make(map[string]Value)}
}

// Len reports the number of entries.
func (o *Object) Len() int { return len(o.keys) }

// Get returns the value stored under key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.items[key]
	return v, ok
}

// Set stores v under key. A new key is appended to the iteration order; an
// existing key keeps its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = v
}

// Take removes key and returns its value. The second result reports whether
// the key was present.
func (o *Object) Take(key string) (Value, bool) {
	v, ok := o.items[key]
	if !ok {
		return nil, false
	}
	o.remove(key)
	return v, true
}

// Delete removes key, reporting whether it was present.
func (o *Object) Delete(key string) bool {
	if _, ok := o.items[key]; !ok {
		return false
	}
	o.remove(key)
	return true
}

func (o *Object) remove(key string) {
	delete(o.items, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			return
		}
	}
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Clone returns a shallow copy: keys and the entry table are fresh, values
// are shared.
func (o *Object) Clone() *Object {
	c := &Object{
		keys:  make([]string, len(o.keys)),
		items: make(map[string]Value, len(o.items)),
	}
	copy(c.keys, o.keys)
	for k, v := range o.items {
		c.items[k] = v
	}
	return c
}

// sortedKeys returns the keys in byte order, for canonical encoding.
func (o *Object) sortedKeys() []string {
	out := o.Keys()
	sort.Strings(out)
	return out
}

// Equal reports structural equality of two values. Objects compare by entry
// set (order-insensitive, since canonical output is order-insensitive too);
// Numbers compare by literal, so Number("1.0") differs from Number("1").
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, k := range av.keys {
			w, ok := bv.Get(k)
			if !ok || !Equal(av.items[k], w) {
				return false
			}
		}
		return true
	}
	return false
}
