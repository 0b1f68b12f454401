// Package h3geo maps GeoJSON geometries onto Uber H3 cell indexes.
package h3geo

import (
	"fmt"

	"github.com/uber/h3-go/v4"

	"github.com/bjornharrtell/geojson"
)

// PointToCell returns the H3 cell containing pos at the given resolution.
// Positions are [lng, lat, ...]; extra elements are ignored.
func PointToCell(pos geojson.Position, resolution int) (h3.Cell, error) {
	if len(pos) < 2 {
		return 0, fmt.Errorf("h3geo: position needs at least two elements, got %d", len(pos))
	}
	latLng := h3.NewLatLng(pos[1], pos[0])
	return h3.LatLngToCell(latLng, resolution), nil
}

// PolygonToCells returns every H3 cell whose center falls inside the polygon
// at the given resolution. The first ring is the outer boundary, the rest
// are holes.
func PolygonToCells(polygon geojson.Polygon, resolution int) ([]h3.Cell, error) {
	geoPolygon, err := toGeoPolygon(polygon)
	if err != nil {
		return nil, err
	}
	return h3.PolygonToCells(geoPolygon, resolution), nil
}

// GeometryToCells maps a geometry to H3 cells. Point, MultiPoint, Polygon and
// MultiPolygon are supported; other shapes report an error.
func GeometryToCells(g *geojson.Geometry, resolution int) ([]h3.Cell, error) {
	switch v := g.Value.(type) {
	case geojson.Point:
		cell, err := PointToCell(geojson.Position(v), resolution)
		if err != nil {
			return nil, err
		}
		return []h3.Cell{cell}, nil
	case geojson.MultiPoint:
		cells := make([]h3.Cell, 0, len(v))
		for _, pos := range v {
			cell, err := PointToCell(pos, resolution)
			if err != nil {
				return nil, err
			}
			cells = append(cells, cell)
		}
		return cells, nil
	case geojson.Polygon:
		return PolygonToCells(v, resolution)
	case geojson.MultiPolygon:
		var cells []h3.Cell
		for _, poly := range v {
			sub, err := PolygonToCells(poly, resolution)
			if err != nil {
				return nil, err
			}
			cells = append(cells, sub...)
		}
		return cells, nil
	}
	return nil, fmt.Errorf("h3geo: unsupported geometry type %s", g.Value.Tag())
}

// Compact reduces a cell set to the smallest covering set of mixed
// resolutions.
func Compact(cells []h3.Cell) []h3.Cell {
	return h3.CompactCells(cells)
}

func toGeoPolygon(polygon geojson.Polygon) (h3.GeoPolygon, error) {
	if len(polygon) == 0 {
		return h3.GeoPolygon{}, fmt.Errorf("h3geo: polygon has no rings")
	}
	var geoPolygon h3.GeoPolygon
	loop, err := toGeoLoop(polygon[0])
	if err != nil {
		return h3.GeoPolygon{}, err
	}
	geoPolygon.GeoLoop = loop
	for _, ring := range polygon[1:] {
		hole, err := toGeoLoop(ring)
		if err != nil {
			return h3.GeoPolygon{}, err
		}
		geoPolygon.Holes = append(geoPolygon.Holes, hole)
	}
	return geoPolygon, nil
}

func toGeoLoop(ring []geojson.Position) (h3.GeoLoop, error) {
	var loop h3.GeoLoop
	for _, pos := range ring {
		if len(pos) < 2 {
			return nil, fmt.Errorf("h3geo: position needs at least two elements, got %d", len(pos))
		}
		loop = append(loop, h3.LatLng{Lat: pos[1], Lng: pos[0]})
	}
	return loop, nil
}
