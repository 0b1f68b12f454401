package geojson

import (
	"slices"
	"strconv"

	"github.com/bjornharrtell/geojson/json"
)

// Position is a single coordinate position: longitude, latitude, and an
// optional third element (usually elevation). No range or length validation
// is performed here.
type Position = []float64

// GeometryValue is the closed union of geometry shapes. Each variant reports
// its own type tag.
type GeometryValue interface {
	// Tag returns the GeoJSON type tag for this variant.
	Tag() string
	geometryValue()
}

// Point is a single position.
type Point Position

// MultiPoint is a list of positions.
type MultiPoint []Position

// LineString is a list of two or more positions. Length is not enforced;
// geometry validation is out of scope.
type LineString []Position

// MultiLineString is a list of line strings.
type MultiLineString [][]Position

// Polygon is a list of linear rings, the first being the exterior.
type Polygon [][]Position

// MultiPolygon is a list of polygons.
type MultiPolygon [][][]Position

// GeometryCollection is a heterogeneous list of geometries.
type GeometryCollection []*Geometry

func (Point) Tag() string              { return TypePoint }
func (MultiPoint) Tag() string         { return TypeMultiPoint }
func (LineString) Tag() string         { return TypeLineString }
func (MultiLineString) Tag() string    { return TypeMultiLineString }
func (Polygon) Tag() string            { return TypePolygon }
func (MultiPolygon) Tag() string       { return TypeMultiPolygon }
func (GeometryCollection) Tag() string { return TypeGeometryCollection }

func (Point) geometryValue()              {}
func (MultiPoint) geometryValue()         {}
func (LineString) geometryValue()         {}
func (MultiLineString) geometryValue()    {}
func (Polygon) geometryValue()            {}
func (MultiPolygon) geometryValue()       {}
func (GeometryCollection) geometryValue() {}

// Geometry is a GeoJSON Geometry object: a shape plus optional bounding box
// and foreign members.
type Geometry struct {
	Value          GeometryValue
	Bbox           []float64
	ForeignMembers *json.Object
}

// NewGeometry returns a Geometry wrapping v with no bbox or foreign members.
func NewGeometry(v GeometryValue) *Geometry {
	return &Geometry{Value: v}
}

// DecodeGeometryObject decodes o as a Geometry. The object is consumed. The
// type tag selects the coordinate shape; "coordinates" (or "geometries" for
// collections) is required.
func DecodeGeometryObject(o *json.Object) (*Geometry, error) {
	tag, err := expectType(o)
	if err != nil {
		return nil, err
	}
	var value GeometryValue
	switch tag {
	case TypeGeometryCollection:
		value, err = takeGeometries(o)
	case TypePoint, TypeMultiPoint, TypeLineString, TypeMultiLineString, TypePolygon, TypeMultiPolygon:
		value, err = takeCoordinates(o, tag)
	default:
		return nil, newError(CodeUnknownType, "/type", "unknown geometry type "+strconv.Quote(tag))
	}
	if err != nil {
		return nil, err
	}
	bbox, err := takeBbox(o)
	if err != nil {
		return nil, err
	}
	return &Geometry{
		Value:          value,
		Bbox:           bbox,
		ForeignMembers: takeForeignMembers(o),
	}, nil
}

// DecodeGeometryValue decodes any JSON value as a Geometry.
func DecodeGeometryValue(v json.Value) (*Geometry, error) {
	o, ok := v.(*json.Object)
	if !ok {
		return nil, newError(CodeExpectedObject, "/", "expected object, got "+json.KindName(v))
	}
	return DecodeGeometryObject(o)
}

func takeCoordinates(o *json.Object, tag string) (GeometryValue, error) {
	v, ok := o.Take(memberCoords)
	if !ok {
		return nil, newError(CodeRequired, "/coordinates", `missing "coordinates" member`)
	}
	const path = "/coordinates"
	switch tag {
	case TypePoint:
		p, err := decodePosition(v, path)
		return Point(p), err
	case TypeMultiPoint:
		ps, err := decodePositions(v, path)
		return MultiPoint(ps), err
	case TypeLineString:
		ps, err := decodePositions(v, path)
		return LineString(ps), err
	case TypeMultiLineString:
		ls, err := decodeLines(v, path)
		return MultiLineString(ls), err
	case TypePolygon:
		rings, err := decodeLines(v, path)
		return Polygon(rings), err
	case TypeMultiPolygon:
		arr, ok := v.(json.Array)
		if !ok {
			return nil, coordErr(v, path)
		}
		out := make([][][]Position, 0, len(arr))
		for i, e := range arr {
			rings, err := decodeLines(e, path+"/"+strconv.Itoa(i))
			if err != nil {
				return nil, err
			}
			out = append(out, rings)
		}
		return MultiPolygon(out), nil
	}
	return nil, newError(CodeUnknownType, "/type", "unknown geometry type "+strconv.Quote(tag))
}

func takeGeometries(o *json.Object) (GeometryValue, error) {
	v, ok := o.Take(memberGeometries)
	if !ok {
		return nil, newError(CodeRequired, "/geometries", `missing "geometries" member`)
	}
	arr, ok := v.(json.Array)
	if !ok {
		return nil, newError(CodeInvalidGeometry, "/geometries", "expected array, got "+json.KindName(v))
	}
	out := make(GeometryCollection, 0, len(arr))
	for i, e := range arr {
		path := "/geometries/" + strconv.Itoa(i)
		eo, ok := e.(*json.Object)
		if !ok {
			return nil, newError(CodeInvalidGeometry, path, "expected object, got "+json.KindName(e))
		}
		g, err := DecodeGeometryObject(eo)
		if err != nil {
			return nil, prefixPath(err, path)
		}
		out = append(out, g)
	}
	return out, nil
}

func coordErr(v json.Value, path string) *Error {
	return newError(CodeInvalidCoordinates, path, "expected array, got "+json.KindName(v))
}

func decodePosition(v json.Value, path string) (Position, error) {
	arr, ok := v.(json.Array)
	if !ok {
		return nil, coordErr(v, path)
	}
	pos := make(Position, 0, len(arr))
	for i, e := range arr {
		n, ok := e.(json.Number)
		if !ok {
			return nil, newError(CodeInvalidCoordinates, path+"/"+strconv.Itoa(i), "expected number, got "+json.KindName(e))
		}
		f, err := n.Float64()
		if err != nil {
			return nil, &Error{Code: CodeInvalidCoordinates, Path: path + "/" + strconv.Itoa(i), Message: "unparseable number", Cause: err}
		}
		pos = append(pos, f)
	}
	return pos, nil
}

func decodePositions(v json.Value, path string) ([]Position, error) {
	arr, ok := v.(json.Array)
	if !ok {
		return nil, coordErr(v, path)
	}
	out := make([]Position, 0, len(arr))
	for i, e := range arr {
		p, err := decodePosition(e, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeLines(v json.Value, path string) ([][]Position, error) {
	arr, ok := v.(json.Array)
	if !ok {
		return nil, coordErr(v, path)
	}
	out := make([][]Position, 0, len(arr))
	for i, e := range arr {
		ps, err := decodePositions(e, path+"/"+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, nil
}

// EncodeObject assembles the geometry's JSON object: type, then coordinates
// or geometries, then bbox and foreign members when present.
func (g *Geometry) EncodeObject() *json.Object {
	o := json.NewObject()
	o.Set(memberType, g.Value.Tag())
	if gc, ok := g.Value.(GeometryCollection); ok {
		arr := make(json.Array, len(gc))
		for i, sub := range gc {
			arr[i] = sub.EncodeObject()
		}
		o.Set(memberGeometries, arr)
	} else {
		o.Set(memberCoords, encodeCoordinates(g.Value))
	}
	if g.Bbox != nil {
		o.Set(memberBbox, encodeBbox(g.Bbox))
	}
	copyForeignMembers(o, g.ForeignMembers)
	return o
}

func encodeCoordinates(v GeometryValue) json.Value {
	switch t := v.(type) {
	case Point:
		return encodePosition(Position(t))
	case MultiPoint:
		return encodePositions(t)
	case LineString:
		return encodePositions(t)
	case MultiLineString:
		return encodeLines(t)
	case Polygon:
		return encodeLines(t)
	case MultiPolygon:
		arr := make(json.Array, len(t))
		for i, poly := range t {
			arr[i] = encodeLines(poly)
		}
		return arr
	}
	return nil
}

func encodePosition(p Position) json.Array {
	arr := make(json.Array, len(p))
	for i, f := range p {
		arr[i] = json.Float(f)
	}
	return arr
}

func encodePositions(ps []Position) json.Array {
	arr := make(json.Array, len(ps))
	for i, p := range ps {
		arr[i] = encodePosition(p)
	}
	return arr
}

func encodeLines(ls [][]Position) json.Array {
	arr := make(json.Array, len(ls))
	for i, l := range ls {
		arr[i] = encodePositions(l)
	}
	return arr
}

// MarshalJSON renders the geometry canonically.
func (g *Geometry) MarshalJSON() ([]byte, error) {
	return json.Encode(g.EncodeObject())
}

// UnmarshalJSON decodes text into g, replacing its contents.
func (g *Geometry) UnmarshalJSON(b []byte) error {
	v, err := json.Decode(b)
	if err != nil {
		return &Error{Code: CodeParseError, Path: "/", Message: "invalid JSON", Cause: err}
	}
	d, err := DecodeGeometryValue(v)
	if err != nil {
		return err
	}
	*g = *d
	return nil
}

// String returns the canonical textual form.
func (g *Geometry) String() string {
	b, err := g.MarshalJSON()
	if err != nil {
		return "geojson.Geometry(!" + err.Error() + ")"
	}
	return string(b)
}

// Equal reports structural equality of two geometries, variant-sensitively.
func (g *Geometry) Equal(h *Geometry) bool {
	if g == nil || h == nil {
		return g == h
	}
	if !geometryValueEqual(g.Value, h.Value) {
		return false
	}
	if !slices.Equal(g.Bbox, h.Bbox) {
		return false
	}
	if (g.ForeignMembers == nil) != (h.ForeignMembers == nil) {
		return false
	}
	if g.ForeignMembers != nil && !json.Equal(g.ForeignMembers, h.ForeignMembers) {
		return false
	}
	return true
}

func geometryValueEqual(a, b GeometryValue) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case Point:
		bv, ok := b.(Point)
		return ok && slices.Equal(av, bv)
	case MultiPoint:
		bv, ok := b.(MultiPoint)
		return ok && positionsEqual(av, bv)
	case LineString:
		bv, ok := b.(LineString)
		return ok && positionsEqual(av, bv)
	case MultiLineString:
		bv, ok := b.(MultiLineString)
		return ok && linesEqual(av, bv)
	case Polygon:
		bv, ok := b.(Polygon)
		return ok && linesEqual(av, bv)
	case MultiPolygon:
		bv, ok := b.(MultiPolygon)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !linesEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case GeometryCollection:
		bv, ok := b.(GeometryCollection)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !av[i].Equal(bv[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func positionsEqual(a, b []Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !slices.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func linesEqual(a, b [][]Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !positionsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}
