package geojson

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/bjornharrtell/geojson/json"
)

// FeatureCollection is a GeoJSON FeatureCollection object: a list of Features
// plus optional bounding box and foreign members.
type FeatureCollection struct {
	Features       []*Feature
	Bbox           []float64
	ForeignMembers *json.Object
}

// DecodeFeatureCollectionObject decodes o as a FeatureCollection. The object
// is consumed. "features" is required and must be an array of Feature
// objects; element failures carry the /features/<i> path prefix.
func DecodeFeatureCollectionObject(o *json.Object) (*FeatureCollection, error) {
	tag, err := expectType(o)
	if err != nil {
		return nil, err
	}
	if tag != TypeFeatureCollection {
		return nil, newError(CodeUnknownType, "/type", fmt.Sprintf("expected %q, got %q", TypeFeatureCollection, tag))
	}
	v, ok := o.Take(memberFeatures)
	if !ok {
		return nil, newError(CodeRequired, "/features", `missing "features" member`)
	}
	arr, ok := v.(json.Array)
	if !ok {
		return nil, newError(CodeInvalidFeatures, "/features", "expected array, got "+json.KindName(v))
	}
	features := make([]*Feature, 0, len(arr))
	for i, e := range arr {
		path := "/features/" + strconv.Itoa(i)
		eo, ok := e.(*json.Object)
		if !ok {
			return nil, newError(CodeInvalidFeatures, path, "expected object, got "+json.KindName(e))
		}
		f, err := DecodeFeatureObject(eo)
		if err != nil {
			return nil, prefixPath(err, path)
		}
		features = append(features, f)
	}
	bbox, err := takeBbox(o)
	if err != nil {
		return nil, err
	}
	return &FeatureCollection{
		Features:       features,
		Bbox:           bbox,
		ForeignMembers: takeForeignMembers(o),
	}, nil
}

// DecodeFeatureCollectionValue decodes any JSON value as a FeatureCollection.
func DecodeFeatureCollectionValue(v json.Value) (*FeatureCollection, error) {
	o, ok := v.(*json.Object)
	if !ok {
		return nil, newError(CodeExpectedObject, "/", "expected object, got "+json.KindName(v))
	}
	return DecodeFeatureCollectionObject(o)
}

// EncodeObject assembles the collection's JSON object: type, features, then
// bbox and foreign members when present.
func (fc *FeatureCollection) EncodeObject() *json.Object {
	o := json.NewObject()
	o.Set(memberType, TypeFeatureCollection)
	arr := make(json.Array, len(fc.Features))
	for i, f := range fc.Features {
		arr[i] = f.EncodeObject()
	}
	o.Set(memberFeatures, arr)
	if fc.Bbox != nil {
		o.Set(memberBbox, encodeBbox(fc.Bbox))
	}
	copyForeignMembers(o, fc.ForeignMembers)
	return o
}

// MarshalJSON renders the collection canonically.
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	return json.Encode(fc.EncodeObject())
}

// UnmarshalJSON decodes text into fc, replacing its contents.
func (fc *FeatureCollection) UnmarshalJSON(b []byte) error {
	v, err := json.Decode(b)
	if err != nil {
		return &Error{Code: CodeParseError, Path: "/", Message: "invalid JSON", Cause: err}
	}
	d, err := DecodeFeatureCollectionValue(v)
	if err != nil {
		return err
	}
	*fc = *d
	return nil
}

// String returns the canonical textual form.
func (fc *FeatureCollection) String() string {
	b, err := fc.MarshalJSON()
	if err != nil {
		return "geojson.FeatureCollection(!" + err.Error() + ")"
	}
	return string(b)
}

// Equal reports structural equality.
func (fc *FeatureCollection) Equal(other *FeatureCollection) bool {
	if fc == nil || other == nil {
		return fc == other
	}
	if len(fc.Features) != len(other.Features) {
		return false
	}
	for i := range fc.Features {
		if !fc.Features[i].Equal(other.Features[i]) {
			return false
		}
	}
	if !slices.Equal(fc.Bbox, other.Bbox) {
		return false
	}
	if (fc.ForeignMembers == nil) != (other.ForeignMembers == nil) {
		return false
	}
	if fc.ForeignMembers != nil && !json.Equal(fc.ForeignMembers, other.ForeignMembers) {
		return false
	}
	return true
}
