package geojson

import (
	"fmt"
	"slices"

	"github.com/bjornharrtell/geojson/json"
)

// Feature is a GeoJSON Feature object (RFC 7946 §3.2): one geometry, a
// free-form property map, and optional identifier, bounding box and foreign
// members. Values are plain data carriers; build one by assigning fields or
// by decoding, then hand it to the encoder or read the fields directly.
type Feature struct {
	// Geometry is nil when the feature carries an explicit JSON null
	// geometry. The member itself is required on the wire.
	Geometry *Geometry

	// Properties is nil for an explicit JSON null. A non-nil object with zero
	// entries is a distinct, valid state; the two are never collapsed.
	Properties *json.Object

	// ID is nil when absent, otherwise exactly one of StringID or NumberID.
	ID ID

	// Bbox is nil when absent.
	Bbox []float64

	// ForeignMembers holds every top-level member outside the Feature schema,
	// keys and values verbatim in encounter order. Nil when there are none.
	ForeignMembers *json.Object
}

// ID is a Feature identifier: a closed union of StringID and NumberID. The
// two variants never compare equal to each other, even for lookalike
// literals.
type ID interface {
	// encode returns the identifier as a generic JSON value.
	encode() json.Value
}

// StringID is the string identifier variant.
type StringID string

// NumberID is the numeric identifier variant. The literal is preserved
// as given, so 0 stays 0 and never becomes 0.0.
type NumberID json.Number

func (s StringID) encode() json.Value { return string(s) }
func (n NumberID) encode() json.Value { return json.Number(n) }

// MarshalJSON emits the contained text as a JSON string.
func (s StringID) MarshalJSON() ([]byte, error) { return json.Encode(string(s)) }

// MarshalJSON emits the contained literal as a JSON number.
func (n NumberID) MarshalJSON() ([]byte, error) { return json.Encode(json.Number(n)) }

// DecodeFeatureObject decodes o as a Feature. The object is consumed: schema
// members are removed as they are claimed and the remainder becomes the
// foreign-member map. The first failing step's error is returned and no
// partial Feature is produced.
func DecodeFeatureObject(o *json.Object) (*Feature, error) {
	tag, err := expectType(o)
	if err != nil {
		return nil, err
	}
	if tag != TypeFeature {
		return nil, newError(CodeUnknownType, "/type", fmt.Sprintf("expected %q, got %q", TypeFeature, tag))
	}
	geometry, err := takeGeometry(o)
	if err != nil {
		return nil, err
	}
	properties, err := takeProperties(o)
	if err != nil {
		return nil, err
	}
	id, err := takeID(o)
	if err != nil {
		return nil, err
	}
	bbox, err := takeBbox(o)
	if err != nil {
		return nil, err
	}
	return &Feature{
		Geometry:       geometry,
		Properties:     properties,
		ID:             id,
		Bbox:           bbox,
		ForeignMembers: takeForeignMembers(o),
	}, nil
}

// DecodeFeatureValue decodes any JSON value as a Feature. Non-object values
// fail with the expected-object error.
func DecodeFeatureValue(v json.Value) (*Feature, error) {
	o, ok := v.(*json.Object)
	if !ok {
		return nil, newError(CodeExpectedObject, "/", "expected object, got "+json.KindName(v))
	}
	return DecodeFeatureObject(o)
}

// EncodeObject assembles the feature's JSON object. Members are inserted as
// type, geometry, properties, then bbox and id when present, then foreign
// members in their stored order. A nil geometry encodes as JSON null; nil
// properties encode as an empty object, not null. Encoding never fails.
func (f *Feature) EncodeObject() *json.Object {
	o := json.NewObject()
	o.Set(memberType, TypeFeature)
	if f.Geometry != nil {
		o.Set(memberGeometry, f.Geometry.EncodeObject())
	} else {
		o.Set(memberGeometry, nil)
	}
	if f.Properties != nil {
		o.Set(memberProperties, f.Properties)
	} else {
		o.Set(memberProperties, json.NewObject())
	}
	if f.Bbox != nil {
		o.Set(memberBbox, encodeBbox(f.Bbox))
	}
	if f.ID != nil {
		o.Set(memberID, f.ID.encode())
	}
	copyForeignMembers(o, f.ForeignMembers)
	return o
}

// MarshalJSON renders the feature canonically: keys sorted alphabetically at
// every object level, compact output.
func (f *Feature) MarshalJSON() ([]byte, error) {
	return json.Encode(f.EncodeObject())
}

// UnmarshalJSON decodes text into f, replacing its contents.
func (f *Feature) UnmarshalJSON(b []byte) error {
	v, err := json.Decode(b)
	if err != nil {
		return &Error{Code: CodeParseError, Path: "/", Message: "invalid JSON", Cause: err}
	}
	d, err := DecodeFeatureValue(v)
	if err != nil {
		return err
	}
	*f = *d
	return nil
}

// String returns the canonical textual form.
func (f *Feature) String() string {
	b, err := f.MarshalJSON()
	if err != nil {
		return "geojson.Feature(!" + err.Error() + ")"
	}
	return string(b)
}

// Equal reports structural equality. The nil/null/empty distinctions of
// Geometry and Properties, the ID variant, and foreign members all
// participate.
func (f *Feature) Equal(g *Feature) bool {
	if f == nil || g == nil {
		return f == g
	}
	if (f.Geometry == nil) != (g.Geometry == nil) {
		return false
	}
	if f.Geometry != nil && !f.Geometry.Equal(g.Geometry) {
		return false
	}
	if (f.Properties == nil) != (g.Properties == nil) {
		return false
	}
	if f.Properties != nil && !json.Equal(f.Properties, g.Properties) {
		return false
	}
	if f.ID != g.ID {
		return false
	}
	if !slices.Equal(f.Bbox, g.Bbox) {
		return false
	}
	if (f.ForeignMembers == nil) != (g.ForeignMembers == nil) {
		return false
	}
	if f.ForeignMembers != nil && !json.Equal(f.ForeignMembers, g.ForeignMembers) {
		return false
	}
	return true
}
