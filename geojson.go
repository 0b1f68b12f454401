package geojson

import (
	"strconv"

	"github.com/bjornharrtell/geojson/json"
)

// GeoJSON type tags.
const (
	TypeFeature            = "Feature"
	TypeFeatureCollection  = "FeatureCollection"
	TypePoint              = "Point"
	TypeMultiPoint         = "MultiPoint"
	TypeLineString         = "LineString"
	TypeMultiLineString    = "MultiLineString"
	TypePolygon            = "Polygon"
	TypeMultiPolygon       = "MultiPolygon"
	TypeGeometryCollection = "GeometryCollection"
)

// GeoJSON is the closed union of top-level GeoJSON documents: *Feature,
// *FeatureCollection or *Geometry.
type GeoJSON interface {
	// EncodeObject assembles the document's JSON object.
	EncodeObject() *json.Object
	geojson()
}

func (*Feature) geojson()           {}
func (*FeatureCollection) geojson() {}
func (*Geometry) geojson()          {}

// Parse decodes b into a Feature, FeatureCollection or Geometry, dispatching
// on the "type" member.
func Parse(b []byte) (GeoJSON, error) {
	v, err := json.Decode(b)
	if err != nil {
		return nil, &Error{Code: CodeParseError, Path: "/", Message: "invalid JSON", Cause: err}
	}
	return ParseValue(v)
}

// ParseValue dispatches an already-decoded JSON value. The object is consumed
// by the selected decoder.
func ParseValue(v json.Value) (GeoJSON, error) {
	o, ok := v.(*json.Object)
	if !ok {
		return nil, newError(CodeExpectedObject, "/", "expected object, got "+json.KindName(v))
	}
	// Peek at the tag; the selected decoder re-checks and consumes it.
	tv, ok := o.Get(memberType)
	if !ok {
		return nil, newError(CodeUnknownType, "/type", `missing "type" member`)
	}
	tag, ok := tv.(string)
	if !ok {
		return nil, newError(CodeUnknownType, "/type", "expected string, got "+json.KindName(tv))
	}
	switch tag {
	case TypeFeature:
		return DecodeFeatureObject(o)
	case TypeFeatureCollection:
		return DecodeFeatureCollectionObject(o)
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString,
		TypePolygon, TypeMultiPolygon, TypeGeometryCollection:
		return DecodeGeometryObject(o)
	}
	return nil, newError(CodeUnknownType, "/type", "unknown GeoJSON type "+strconv.Quote(tag))
}

// Encode renders any GeoJSON document canonically: compact text with keys
// sorted alphabetically at every object level. Encoding the same document
// twice yields byte-identical output.
func Encode(g GeoJSON) ([]byte, error) {
	return json.Encode(g.EncodeObject())
}
