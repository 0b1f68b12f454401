package geojson

import (
	"strconv"

	"github.com/bjornharrtell/geojson/json"
)

// Member names defined by the GeoJSON schemas. The take* helpers claim these
// during decode and the encoders insert the same constants, so the known-field
// set cannot drift between the two directions. Everything a decode leaves
// unclaimed is a foreign member.
const (
	memberType       = "type"
	memberGeometry   = "geometry"
	memberProperties = "properties"
	memberID         = "id"
	memberBbox       = "bbox"
	memberCoords     = "coordinates"
	memberGeometries = "geometries"
	memberFeatures   = "features"
)

// expectType removes the "type" member and returns its tag string. Missing
// and non-string values both classify as unknown-type.
func expectType(o *json.Object) (string, error) {
	v, ok := o.Take(memberType)
	if !ok {
		return "", newError(CodeUnknownType, "/type", `missing "type" member`)
	}
	tag, ok := v.(string)
	if !ok {
		return "", newError(CodeUnknownType, "/type", "expected string, got "+json.KindName(v))
	}
	return tag, nil
}

// takeGeometry removes the required "geometry" member. An explicit JSON null
// yields nil; an object is decoded as an embedded Geometry; anything else is
// an invalid geometry value. A missing key is reported separately.
func takeGeometry(o *json.Object) (*Geometry, error) {
	v, ok := o.Take(memberGeometry)
	if !ok {
		return nil, newError(CodeRequired, "/geometry", `missing "geometry" member`)
	}
	switch g := v.(type) {
	case nil:
		return nil, nil
	case *json.Object:
		geom, err := DecodeGeometryObject(g)
		if err != nil {
			return nil, prefixPath(err, "/geometry")
		}
		return geom, nil
	default:
		return nil, newError(CodeInvalidGeometry, "/geometry", "expected object or null, got "+json.KindName(v))
	}
}

// takeProperties removes the required "properties" member. Null yields nil;
// an object is kept as-is, including when empty. The nil and empty states are
// distinct and both survive a round-trip through decode.
func takeProperties(o *json.Object) (*json.Object, error) {
	v, ok := o.Take(memberProperties)
	if !ok {
		return nil, newError(CodeRequired, "/properties", `missing "properties" member`)
	}
	switch p := v.(type) {
	case nil:
		return nil, nil
	case *json.Object:
		return p, nil
	default:
		return nil, newError(CodeInvalidProperties, "/properties", "expected object or null, got "+json.KindName(v))
	}
}

// takeID removes the optional "id" member. A missing key yields nil; a string
// or number yields the matching ID variant; every other kind, explicit null
// included, is an invalid identifier.
func takeID(o *json.Object) (ID, error) {
	v, ok := o.Take(memberID)
	if !ok {
		return nil, nil
	}
	switch id := v.(type) {
	case string:
		return StringID(id), nil
	case json.Number:
		return NumberID(id), nil
	default:
		return nil, newError(CodeInvalidID, "/id", "expected string or number, got "+json.KindName(v))
	}
}

// takeBbox removes the optional "bbox" member, which must be an array of
// numbers when present.
func takeBbox(o *json.Object) ([]float64, error) {
	v, ok := o.Take(memberBbox)
	if !ok {
		return nil, nil
	}
	arr, ok := v.(json.Array)
	if !ok {
		return nil, newError(CodeInvalidBbox, "/bbox", "expected array, got "+json.KindName(v))
	}
	out := make([]float64, 0, len(arr))
	for i, e := range arr {
		n, ok := e.(json.Number)
		if !ok {
			return nil, newError(CodeInvalidBbox, "/bbox/"+strconv.Itoa(i), "expected number, got "+json.KindName(e))
		}
		f, err := n.Float64()
		if err != nil {
			return nil, &Error{Code: CodeInvalidBbox, Path: "/bbox/" + strconv.Itoa(i), Message: "unparseable number", Cause: err}
		}
		out = append(out, f)
	}
	return out, nil
}

// takeForeignMembers drains whatever is left in o after the schema members
// were claimed, preserving encounter order. Returns nil when nothing remains.
func takeForeignMembers(o *json.Object) *json.Object {
	if o.Len() == 0 {
		return nil
	}
	fm := json.NewObject()
	for _, k := range o.Keys() {
		v, _ := o.Take(k)
		fm.Set(k, v)
	}
	return fm
}

// encodeBbox renders a bounding box as a JSON array of numbers.
func encodeBbox(bbox []float64) json.Array {
	arr := make(json.Array, len(bbox))
	for i, f := range bbox {
		arr[i] = json.Float(f)
	}
	return arr
}

// copyForeignMembers appends stored foreign members to dst in their original
// relative order, after all schema members.
func copyForeignMembers(dst, fm *json.Object) {
	if fm == nil {
		return
	}
	for _, k := range fm.Keys() {
		v, _ := fm.Get(k)
		dst.Set(k, v)
	}
}
