package geojson_test

import (
	"errors"
	"testing"

	"github.com/bjornharrtell/geojson"
	"github.com/bjornharrtell/geojson/json"
)

func TestParseDispatch(t *testing.T) {
	cases := []struct {
		name string
		in   string
		kind any
	}{
		{"feature", featureJSON, (*geojson.Feature)(nil)},
		{"collection", `{"features":[],"type":"FeatureCollection"}`, (*geojson.FeatureCollection)(nil)},
		{"geometry", `{"coordinates":[1.1,2.1],"type":"Point"}`, (*geojson.Geometry)(nil)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := geojson.Parse([]byte(tc.in))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			switch tc.kind.(type) {
			case *geojson.Feature:
				if _, ok := doc.(*geojson.Feature); !ok {
					t.Fatalf("expected *Feature, got %T", doc)
				}
			case *geojson.FeatureCollection:
				if _, ok := doc.(*geojson.FeatureCollection); !ok {
					t.Fatalf("expected *FeatureCollection, got %T", doc)
				}
			case *geojson.Geometry:
				if _, ok := doc.(*geojson.Geometry); !ok {
					t.Fatalf("expected *Geometry, got %T", doc)
				}
			}
			out, err := geojson.Encode(doc)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			if string(out) != tc.in {
				t.Fatalf("round-trip:\n got %s\nwant %s", out, tc.in)
			}
		})
	}
}

func TestParseUnknownTopLevelType(t *testing.T) {
	ge := decodeErrCode(t, `{"type":"Sphere"}`)
	if ge.Code != geojson.CodeUnknownType {
		t.Fatalf("expected %s, got %s", geojson.CodeUnknownType, ge.Code)
	}
}

func TestParseMissingTypeTag(t *testing.T) {
	ge := decodeErrCode(t, `{"geometry":null}`)
	if ge.Code != geojson.CodeUnknownType {
		t.Fatalf("expected %s, got %s", geojson.CodeUnknownType, ge.Code)
	}
}

func TestParseNonObject(t *testing.T) {
	ge := decodeErrCode(t, `[1,2,3]`)
	if ge.Code != geojson.CodeExpectedObject {
		t.Fatalf("expected %s, got %s", geojson.CodeExpectedObject, ge.Code)
	}
}

func TestParseInvalidJSON(t *testing.T) {
	ge := decodeErrCode(t, `{"type":`)
	if ge.Code != geojson.CodeParseError {
		t.Fatalf("expected %s, got %s", geojson.CodeParseError, ge.Code)
	}
}

func TestParseDuplicateKey(t *testing.T) {
	ge := decodeErrCode(t, `{"type":"Feature","type":"Feature","geometry":null,"properties":{}}`)
	if ge.Code != geojson.CodeParseError {
		t.Fatalf("expected %s, got %s", geojson.CodeParseError, ge.Code)
	}
	if !errors.Is(ge, json.ErrDuplicateKey) {
		t.Fatalf("expected cause to wrap ErrDuplicateKey, got %v", ge.Cause)
	}
}

func TestParseValueConsumesObject(t *testing.T) {
	o := mustObject(t, featureJSON)
	if _, err := geojson.ParseValue(o); err != nil {
		t.Fatalf("parse value: %v", err)
	}
	if o.Len() != 0 {
		t.Fatalf("decode should consume the object, %d keys left", o.Len())
	}
}
