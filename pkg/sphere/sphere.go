// Package sphere implements great-circle distance and geodesic length/area
// measurement on a sphere of configurable radius.
//
// Inputs are geographic coordinates in decimal degrees; results are in the
// units of the radius. Measurement functions accepting a geometry reproject
// to geographic degrees first when a non-geographic projection is supplied —
// the metric is always computed in the sphere's native space, never in
// projected units.
package sphere

import (
	"fmt"
	"math"

	"github.com/beetlebugorg/gml/pkg/geom"
	"github.com/beetlebugorg/gml/pkg/proj"
)

// DefaultRadius is the mean earth radius in meters, used by the package-level
// measurement functions.
const DefaultRadius = 6371008.8

// Sphere performs geodesic calculations on a sphere of a fixed radius.
//
// Sphere is an immutable value; concurrent use is safe.
type Sphere struct {
	radius float64
}

// ErrInvalidRadius indicates a non-positive sphere radius.
type ErrInvalidRadius struct {
	Radius float64
}

func (e *ErrInvalidRadius) Error() string {
	return fmt.Sprintf("sphere radius must be positive, got %g", e.Radius)
}

// New creates a sphere with the given radius.
//
// The radius must be positive. Distances and areas are returned in the units
// of the radius (squared for areas).
func New(radius float64) (*Sphere, error) {
	if radius <= 0 {
		return nil, &ErrInvalidRadius{Radius: radius}
	}
	return &Sphere{radius: radius}, nil
}

// Radius returns the sphere's radius.
func (s *Sphere) Radius() float64 {
	return s.radius
}

// Distance returns the great-circle distance between two degree coordinates
// using the haversine formula.
//
// Coordinates are [longitude, latitude]; extra components are ignored.
// Distance(a, a) is 0 and Distance(a, b) == Distance(b, a).
func (s *Sphere) Distance(c1, c2 []float64) float64 {
	return haversine(c1, c2, s.radius)
}

// GeodesicArea returns the signed geodesic area of a single closed ring of
// geographic coordinates, given as a flat sequence with the given stride.
//
// The sign follows vertex order: counter-clockwise rings are negative,
// clockwise rings positive. Take the absolute value for area magnitude. The
// ring may be given with or without the closing vertex repeated; both yield
// the same result.
//
// Reference: R.G. Chamberlain, W.H. Duquette, "Some Algorithms for Polygons
// on a Sphere", JPL Publication 07-3 (2007).
func (s *Sphere) GeodesicArea(flatCoords []float64, stride int) float64 {
	return ringArea(flatCoords, stride, s.radius)
}

// Options configures the package-level measurement functions.
type Options struct {
	// Projection identifies the reference system of the geometry's
	// coordinates. When set and not geographic, coordinates are
	// reprojected to geographic degrees before measuring. When nil the
	// coordinates are assumed to already be geographic.
	Projection proj.Projection

	// Radius overrides the sphere radius. Zero means DefaultRadius.
	Radius float64
}

// Distance returns the great-circle distance between two degree coordinates
// on a sphere of DefaultRadius.
func Distance(c1, c2 []float64) float64 {
	return haversine(c1, c2, DefaultRadius)
}

// Length returns the geodesic length of a geometry.
//
// Line-like geometries contribute the haversine sum over their consecutive
// vertices; polygons contribute their ring perimeters; points contribute
// nothing. Collection types recurse over their members.
func Length(g *geom.Geometry, opts Options) float64 {
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	g = toGeographic(g, opts.Projection)
	return length(g, radius)
}

// Area returns the geodesic area of a geometry.
//
// Polygons contribute the absolute area of their exterior ring minus the
// absolute areas of their interior rings (holes subtracted). MultiPolygon
// and GeometryCollection recurse over their members. Other variants
// contribute nothing.
func Area(g *geom.Geometry, opts Options) float64 {
	radius := opts.Radius
	if radius == 0 {
		radius = DefaultRadius
	}
	g = toGeographic(g, opts.Projection)
	return area(g, radius)
}

// toGeographic reprojects a clone of g to geographic degrees when a
// non-geographic projection is given. The caller's geometry is never mutated.
func toGeographic(g *geom.Geometry, p proj.Projection) *geom.Geometry {
	if p == nil || p.Geographic() {
		return g
	}
	clone := g.Clone()
	inverseAll(clone, p)
	return clone
}

func inverseAll(g *geom.Geometry, p proj.Projection) {
	if len(g.FlatCoords) > 0 {
		p.Inverse(g.FlatCoords, g.Stride())
	}
	for _, member := range g.Geometries {
		inverseAll(member, p)
	}
}

func length(g *geom.Geometry, radius float64) float64 {
	switch g.Type {
	case geom.TypePoint, geom.TypeMultiPoint:
		return 0
	case geom.TypeLineString, geom.TypeLinearRing:
		return lineLength(g.FlatCoords, g.Stride(), radius)
	case geom.TypePolygon:
		sum := 0.0
		for i := 0; i < g.NumRings(); i++ {
			sum += lineLength(g.Ring(i), g.Stride(), radius)
		}
		return sum
	case geom.TypeMultiLineString, geom.TypeMultiPolygon, geom.TypeGeometryCollection:
		sum := 0.0
		for _, member := range g.Geometries {
			sum += length(member, radius)
		}
		return sum
	default:
		return 0
	}
}

func area(g *geom.Geometry, radius float64) float64 {
	switch g.Type {
	case geom.TypeLinearRing:
		return math.Abs(ringArea(g.FlatCoords, g.Stride(), radius))
	case geom.TypePolygon:
		if g.NumRings() == 0 {
			return 0
		}
		total := math.Abs(ringArea(g.Ring(0), g.Stride(), radius))
		for i := 1; i < g.NumRings(); i++ {
			total -= math.Abs(ringArea(g.Ring(i), g.Stride(), radius))
		}
		return total
	case geom.TypeMultiPolygon, geom.TypeGeometryCollection:
		sum := 0.0
		for _, member := range g.Geometries {
			sum += area(member, radius)
		}
		return sum
	default:
		return 0
	}
}

// haversine computes great-circle distance between two degree coordinates.
//
// a = sin²(Δφ/2) + cosφ1·cosφ2·sin²(Δλ/2); d = 2·R·atan2(√a, √(1−a))
func haversine(c1, c2 []float64, radius float64) float64 {
	lat1 := toRadians(c1[1])
	lat2 := toRadians(c2[1])
	deltaLat := lat2 - lat1
	deltaLon := toRadians(c2[0] - c1[0])
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	return 2 * radius * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// lineLength sums haversine distances between consecutive vertices.
func lineLength(flatCoords []float64, stride int, radius float64) float64 {
	sum := 0.0
	for i := stride; i+1 < len(flatCoords); i += stride {
		sum += haversine(flatCoords[i-stride:i], flatCoords[i:i+stride], radius)
	}
	return sum
}

// ringArea computes the signed spherical-excess area of a closed ring,
// accumulating rad(λ2−λ1)·(2 + sinφ1 + sinφ2) over consecutive vertex pairs
// with wrap-around, then scaling by R²/2.
func ringArea(flatCoords []float64, stride int, radius float64) float64 {
	n := len(flatCoords) / stride
	if n < 3 {
		return 0
	}
	acc := 0.0
	x1 := flatCoords[(n-1)*stride]
	y1 := flatCoords[(n-1)*stride+1]
	for i := 0; i < n; i++ {
		x2 := flatCoords[i*stride]
		y2 := flatCoords[i*stride+1]
		acc += toRadians(x2-x1) * (2 + math.Sin(toRadians(y1)) + math.Sin(toRadians(y2)))
		x1, y1 = x2, y2
	}
	return acc * radius * radius / 2
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
