package gml

import (
	"github.com/beetlebugorg/gml/pkg/geom"
)

// Bounds represents a geographic bounding box in WGS-84 coordinates.
//
// Coordinates are in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// Contains returns true if the point (lon, lat) is within the bounds.
func (b Bounds) Contains(lon, lat float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon &&
		lat >= b.MinLat && lat <= b.MaxLat
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxLon < b.MinLon ||
		other.MinLon > b.MaxLon ||
		other.MaxLat < b.MinLat ||
		other.MinLat > b.MaxLat)
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	result := b
	if other.MinLon < result.MinLon {
		result.MinLon = other.MinLon
	}
	if other.MaxLon > result.MaxLon {
		result.MaxLon = other.MaxLon
	}
	if other.MinLat < result.MinLat {
		result.MinLat = other.MinLat
	}
	if other.MaxLat > result.MaxLat {
		result.MaxLat = other.MaxLat
	}
	return result
}

// Expand returns a new Bounds expanded by the given margin in all directions.
//
// Margin is in decimal degrees.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinLon: b.MinLon - margin,
		MaxLon: b.MaxLon + margin,
		MinLat: b.MinLat - margin,
		MaxLat: b.MaxLat + margin,
	}
}

// featureBounds calculates the bounding box for a feature. The geometry
// extent wins when the feature has one; a declared boundedBy is the
// fallback for geometry-less features.
func featureBounds(f Feature) Bounds {
	if f.geometry != nil {
		if b, ok := geometryBounds(f.geometry); ok {
			return b
		}
	}
	if f.boundedBy != nil {
		return *f.boundedBy
	}
	return Bounds{}
}

// geometryBounds walks a geometry's coordinates, descending into
// collection members. Reports false for geometries with no coordinates.
func geometryBounds(g *geom.Geometry) (Bounds, bool) {
	var bounds Bounds
	found := false

	var walk func(g *geom.Geometry)
	walk = func(g *geom.Geometry) {
		stride := g.Stride()
		for i := 0; i+stride <= len(g.FlatCoords); i += stride {
			lon, lat := g.FlatCoords[i], g.FlatCoords[i+1]
			if !found {
				bounds = Bounds{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat}
				found = true
				continue
			}
			if lon < bounds.MinLon {
				bounds.MinLon = lon
			}
			if lon > bounds.MaxLon {
				bounds.MaxLon = lon
			}
			if lat < bounds.MinLat {
				bounds.MinLat = lat
			}
			if lat > bounds.MaxLat {
				bounds.MaxLat = lat
			}
		}
		for _, member := range g.Geometries {
			walk(member)
		}
	}
	walk(g)

	return bounds, found
}
