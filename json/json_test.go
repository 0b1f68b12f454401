package json_test

import (
	"errors"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/bjornharrtell/geojson/json"
)

func decode(t *testing.T, s string) json.Value {
	t.Helper()
	v, err := json.Decode([]byte(s))
	if err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return v
}

func encode(t *testing.T, v json.Value) string {
	t.Helper()
	b, err := json.Encode(v)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(b)
}

func TestObjectInsertionOrder(t *testing.T) {
	o := json.NewObject()
	o.Set("zebra", json.Int(1))
	o.Set("apple", json.Int(2))
	o.Set("mango", json.Int(3))
	got := o.Keys()
	want := []string{"zebra", "apple", "mango"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys: got %v, want %v", got, want)
		}
	}

	// Overwriting keeps the original position.
	o.Set("apple", json.Int(9))
	if got := o.Keys(); got[1] != "apple" {
		t.Fatalf("overwrite moved key: %v", got)
	}
	if v, _ := o.Get("apple"); v != json.Int(9) {
		t.Fatalf("overwrite lost value: %v", v)
	}
}

func TestObjectTake(t *testing.T) {
	o := json.NewObject()
	o.Set("a", true)
	o.Set("b", "x")

	v, ok := o.Take("a")
	if !ok || v != true {
		t.Fatalf("take: got %v, %v", v, ok)
	}
	if _, ok := o.Get("a"); ok {
		t.Fatalf("taken key still present")
	}
	if o.Len() != 1 {
		t.Fatalf("len after take: %d", o.Len())
	}
	if _, ok := o.Take("missing"); ok {
		t.Fatalf("take of missing key reported present")
	}
}

func TestDecodePreservesKeyOrderAndLiterals(t *testing.T) {
	v := decode(t, `{"z":1e3,"a":0.50,"m":[true,null,"s"]}`)
	o, ok := v.(*json.Object)
	if !ok {
		t.Fatalf("expected object, got %T", v)
	}
	keys := o.Keys()
	if keys[0] != "z" || keys[1] != "a" || keys[2] != "m" {
		t.Fatalf("key order not preserved: %v", keys)
	}
	if n, _ := o.Get("z"); n != json.Number("1e3") {
		t.Fatalf("literal not preserved: %v", n)
	}
	if n, _ := o.Get("a"); n != json.Number("0.50") {
		t.Fatalf("literal not preserved: %v", n)
	}
}

func TestDecodeDuplicateKey(t *testing.T) {
	_, err := json.Decode([]byte(`{"a":1,"a":2}`))
	if !errors.Is(err, json.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestDecodeTrailingData(t *testing.T) {
	_, err := json.Decode([]byte(`{"a":1} []`))
	if !errors.Is(err, json.ErrTrailingData) {
		t.Fatalf("expected ErrTrailingData, got %v", err)
	}
}

func TestDecodeObjectRejectsNonObject(t *testing.T) {
	if _, err := json.DecodeObject([]byte(`[1]`)); err == nil {
		t.Fatalf("expected error for array input")
	}
}

func TestEncodeCanonicalKeyOrder(t *testing.T) {
	v := decode(t, `{"z":1,"nested":{"b":2,"a":{"y":0,"x":1}},"a":3}`)
	got := encode(t, v)
	want := `{"a":3,"nested":{"a":{"x":1,"y":0},"b":2},"z":1}`
	if got != want {
		t.Fatalf("canonical encode:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeRoundTripLiterals(t *testing.T) {
	got := encode(t, decode(t, `{"n":[1e3,0.50,-0,7]}`))
	want := `{"n":[1e3,0.50,-0,7]}`
	if got != want {
		t.Fatalf("literals:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeEscapesStrings(t *testing.T) {
	got := encode(t, `he said "hi"`+"\n")
	want := `"he said \"hi\"\n"`
	if got != want {
		t.Fatalf("escape:\n got %s\nwant %s", got, want)
	}
}

func TestEncodeRejectsInvalidNumberLiteral(t *testing.T) {
	if _, err := json.Encode(json.Number("not-a-number")); err == nil {
		t.Fatalf("expected error for invalid literal")
	}
}

func TestNumberConstructors(t *testing.T) {
	if json.Int(42) != json.Number("42") {
		t.Fatalf("Int: %v", json.Int(42))
	}
	if json.Float(1.1) != json.Number("1.1") {
		t.Fatalf("Float: %v", json.Float(1.1))
	}
	// Integral floats drop the fraction entirely.
	if json.Float(102.0) != json.Number("102") {
		t.Fatalf("Float integral: %v", json.Float(102.0))
	}
}

func TestEqual(t *testing.T) {
	if json.Equal(json.Number("1"), json.Number("1.0")) {
		t.Fatalf("distinct literals must not be equal")
	}
	if !json.Equal(decode(t, `{"a":[1,{"b":null}]}`), decode(t, `{"a":[1,{"b":null}]}`)) {
		t.Fatalf("identical trees must be equal")
	}
	if json.Equal(decode(t, `{"a":1}`), decode(t, `{"a":1,"b":2}`)) {
		t.Fatalf("different entry sets must not be equal")
	}
	// Order-insensitive for objects.
	a := json.NewObject()
	a.Set("x", json.Int(1))
	a.Set("y", json.Int(2))
	b := json.NewObject()
	b.Set("y", json.Int(2))
	b.Set("x", json.Int(1))
	if !json.Equal(a, b) {
		t.Fatalf("object equality must ignore insertion order")
	}
}

func TestClone(t *testing.T) {
	o := json.NewObject()
	o.Set("a", json.Int(1))
	c := o.Clone()
	c.Set("b", json.Int(2))
	if o.Len() != 1 || c.Len() != 2 {
		t.Fatalf("clone not independent: %d, %d", o.Len(), c.Len())
	}
}

func TestObjectMarshalHook(t *testing.T) {
	o := json.NewObject()
	o.Set("b", json.Int(2))
	o.Set("a", json.Int(1))
	wrapper := struct {
		Data *json.Object `json:"data"`
	}{Data: o}
	out, err := gojson.Marshal(wrapper)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"data":{"a":1,"b":2}}`
	if string(out) != want {
		t.Fatalf("nested marshal:\n got %s\nwant %s", out, want)
	}
}

func TestObjectUnmarshalHook(t *testing.T) {
	var o json.Object
	if err := o.UnmarshalJSON([]byte(`{"z":1,"a":2}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	keys := o.Keys()
	if len(keys) != 2 || keys[0] != "z" || keys[1] != "a" {
		t.Fatalf("unmarshal order: %v", keys)
	}
}
