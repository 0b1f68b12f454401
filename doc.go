package geojson

// Package geojson provides:
//
// - Typed GeoJSON documents (Feature, FeatureCollection, Geometry) per RFC 7946
// - A bidirectional codec between those types and a generic, insertion-ordered
//   JSON tree (Decode*/Encode*, plus standard Marshal/Unmarshal hooks)
// - Lossless round-tripping: foreign members, the properties null-vs-empty
//   distinction, and numeric id literals all survive decode followed by encode
// - A classified error model (*Error with code and JSON Pointer path)
//
// Design policy:
// - The generic JSON tree lives in the json subpackage; decoding claims known
//   members from an object and sweeps the remainder into foreign members.
// - Canonical text output sorts keys alphabetically at every object level;
//   in-memory objects keep insertion order.
// - Decoding is fail-fast: the first classified error wins, no partial values.
//
// Typical usage:
//
//	doc, err := geojson.Parse(data)
//	f, err := geojson.DecodeFeatureValue(v)
//	out, err := geojson.Encode(doc)
