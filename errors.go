package geojson

import (
	"errors"
	"fmt"
)

// Error codes. Every decode failure carries exactly one of these, so callers
// can match on the condition instead of parsing message text.
const (
	// CodeParseError: the input is not parseable JSON at all.
	CodeParseError = "parse_error"
	// CodeExpectedObject: a value-level entry point received a non-object.
	CodeExpectedObject = "expected_object"
	// CodeUnknownType: the "type" member is missing, not a string, or not a
	// recognized GeoJSON type tag for the decode in progress.
	CodeUnknownType = "unknown_type"
	// CodeRequired: a required member is absent; Path names it.
	CodeRequired = "required"
	// CodeInvalidGeometry: "geometry" is present but neither null nor an object.
	CodeInvalidGeometry = "invalid_geometry_value"
	// CodeInvalidProperties: "properties" is present but neither null nor an object.
	CodeInvalidProperties = "invalid_properties_value"
	// CodeInvalidID: "id" is present but not a string or number. Explicit null
	// is invalid here too.
	CodeInvalidID = "invalid_identifier_type"
	// CodeInvalidBbox: "bbox" is present but not an array of numbers.
	CodeInvalidBbox = "invalid_bbox"
	// CodeInvalidCoordinates: "coordinates" does not match the shape the
	// geometry's type tag requires.
	CodeInvalidCoordinates = "invalid_coordinates"
	// CodeInvalidFeatures: "features" is present but not an array of objects.
	CodeInvalidFeatures = "invalid_features_value"
)

// Error is a classified decode failure. Path is a JSON Pointer into the input
// (for example /features/2/geometry); it is "/" for top-level failures.
type Error struct {
	Code    string
	Path    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("geojson: %s at %s: %s", e.Code, e.Path, e.Message)
	}
	return fmt.Sprintf("geojson: %s at %s", e.Code, e.Path)
}

func (e *Error) Unwrap() error { return e.Cause }

// AsError extracts a classified *Error using errors.As.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func newError(code, path, message string) *Error {
	return &Error{Code: code, Path: path, Message: message}
}

// prefixPath rebases a nested decode error under the given parent pointer, so
// a failure inside an embedded geometry reports /geometry/... to the caller.
func prefixPath(err error, parent string) error {
	ge, ok := AsError(err)
	if !ok {
		return err
	}
	p := ge.Path
	if p == "/" || p == "" {
		p = parent
	} else {
		p = parent + p
	}
	return &Error{Code: ge.Code, Path: p, Message: ge.Message, Cause: ge.Cause}
}
