// Package geom provides the geometry value types shared by the GML decoder
// and the spherical measurement functions.
//
// A Geometry stores all of its coordinate components in a single flat
// sequence (x0, y0, x1, y1, ...) rather than as nested tuples. Polygons
// additionally record cumulative ring-end offsets into the flat sequence,
// exterior ring first. Collection types (Multi*, GeometryCollection) hold an
// ordered sequence of member geometries and no flat coordinates of their own.
package geom

// Type identifies the geometry variant.
type Type int

const (
	// TypePoint represents a single point location.
	TypePoint Type = iota

	// TypeLineString represents a line composed of connected points.
	TypeLineString

	// TypeLinearRing represents a closed line used as a polygon boundary.
	TypeLinearRing

	// TypePolygon represents an area with one exterior ring and zero or
	// more interior rings (holes).
	TypePolygon

	// TypeMultiPoint represents an ordered collection of points.
	TypeMultiPoint

	// TypeMultiLineString represents an ordered collection of line strings.
	TypeMultiLineString

	// TypeMultiPolygon represents an ordered collection of polygons.
	TypeMultiPolygon

	// TypeGeometryCollection represents an ordered, possibly heterogeneous
	// collection of geometries.
	TypeGeometryCollection
)

// String returns the string representation of the geometry type.
func (t Type) String() string {
	switch t {
	case TypePoint:
		return "Point"
	case TypeLineString:
		return "LineString"
	case TypeLinearRing:
		return "LinearRing"
	case TypePolygon:
		return "Polygon"
	case TypeMultiPoint:
		return "MultiPoint"
	case TypeMultiLineString:
		return "MultiLineString"
	case TypeMultiPolygon:
		return "MultiPolygon"
	case TypeGeometryCollection:
		return "GeometryCollection"
	default:
		return "Unknown"
	}
}

// Layout describes the per-vertex coordinate dimensionality.
type Layout int

const (
	// LayoutXY is two components per vertex: longitude, latitude.
	LayoutXY Layout = iota

	// LayoutXYZ is three components per vertex: longitude, latitude,
	// elevation.
	LayoutXYZ
)

// Stride returns the number of flat-coordinate components per vertex.
func (l Layout) Stride() int {
	if l == LayoutXYZ {
		return 3
	}
	return 2
}

// String returns the string representation of the layout.
func (l Layout) String() string {
	if l == LayoutXYZ {
		return "XYZ"
	}
	return "XY"
}

// Geometry is a tagged-variant geometry value.
//
// The populated payload fields depend on Type:
//   - Point, LineString, LinearRing: FlatCoords
//   - Polygon: FlatCoords and Ends (cumulative ring-end offsets,
//     exterior ring first)
//   - MultiPoint, MultiLineString, MultiPolygon, GeometryCollection:
//     Geometries
//
// Coordinates follow GeoJSON convention: longitude before latitude, in
// decimal degrees unless a projected reference system applies.
type Geometry struct {
	Type       Type
	Layout     Layout
	FlatCoords []float64
	Ends       []int
	Geometries []*Geometry
}

// Stride returns the number of flat-coordinate components per vertex.
func (g *Geometry) Stride() int {
	return g.Layout.Stride()
}

// NumCoords returns the number of vertices in the flat coordinate sequence.
func (g *Geometry) NumCoords() int {
	return len(g.FlatCoords) / g.Stride()
}

// Coord returns the i-th vertex as a slice aliasing the flat sequence.
func (g *Geometry) Coord(i int) []float64 {
	stride := g.Stride()
	return g.FlatCoords[i*stride : (i+1)*stride]
}

// Ring returns the flat coordinates of the i-th polygon ring.
//
// Ring 0 is the exterior ring; subsequent rings are interior rings (holes).
// Only meaningful for TypePolygon.
func (g *Geometry) Ring(i int) []float64 {
	start := 0
	if i > 0 {
		start = g.Ends[i-1]
	}
	return g.FlatCoords[start:g.Ends[i]]
}

// NumRings returns the number of polygon rings.
func (g *Geometry) NumRings() int {
	return len(g.Ends)
}

// Clone returns a deep copy of the geometry.
//
// Measurement functions that reproject before measuring work on a clone so
// the caller's coordinates are never mutated.
func (g *Geometry) Clone() *Geometry {
	if g == nil {
		return nil
	}
	out := &Geometry{
		Type:   g.Type,
		Layout: g.Layout,
	}
	if g.FlatCoords != nil {
		out.FlatCoords = make([]float64, len(g.FlatCoords))
		copy(out.FlatCoords, g.FlatCoords)
	}
	if g.Ends != nil {
		out.Ends = make([]int, len(g.Ends))
		copy(out.Ends, g.Ends)
	}
	if g.Geometries != nil {
		out.Geometries = make([]*Geometry, len(g.Geometries))
		for i, member := range g.Geometries {
			out.Geometries[i] = member.Clone()
		}
	}
	return out
}

// NewPoint creates a point geometry from a single flat coordinate tuple.
func NewPoint(layout Layout, flatCoords []float64) *Geometry {
	return &Geometry{Type: TypePoint, Layout: layout, FlatCoords: flatCoords}
}

// NewLineString creates a line string geometry from flat coordinates.
func NewLineString(layout Layout, flatCoords []float64) *Geometry {
	return &Geometry{Type: TypeLineString, Layout: layout, FlatCoords: flatCoords}
}

// NewLinearRing creates a linear ring geometry from flat coordinates.
func NewLinearRing(layout Layout, flatCoords []float64) *Geometry {
	return &Geometry{Type: TypeLinearRing, Layout: layout, FlatCoords: flatCoords}
}

// NewPolygon creates a polygon geometry from flat coordinates and cumulative
// ring-end offsets (exterior ring first).
func NewPolygon(layout Layout, flatCoords []float64, ends []int) *Geometry {
	return &Geometry{Type: TypePolygon, Layout: layout, FlatCoords: flatCoords, Ends: ends}
}

// NewCollection creates a collection geometry of the given type.
//
// The type should be one of TypeMultiPoint, TypeMultiLineString,
// TypeMultiPolygon or TypeGeometryCollection.
func NewCollection(t Type, members []*Geometry) *Geometry {
	layout := LayoutXY
	if len(members) > 0 {
		layout = members[0].Layout
	}
	return &Geometry{Type: t, Layout: layout, Geometries: members}
}
