package geom

import (
	"testing"
)

// TestTypeString tests geometry type enumeration
func TestTypeString(t *testing.T) {
	tests := []struct {
		geomType Type
		expected string
	}{
		{TypePoint, "Point"},
		{TypeLineString, "LineString"},
		{TypeLinearRing, "LinearRing"},
		{TypePolygon, "Polygon"},
		{TypeMultiPoint, "MultiPoint"},
		{TypeMultiLineString, "MultiLineString"},
		{TypeMultiPolygon, "MultiPolygon"},
		{TypeGeometryCollection, "GeometryCollection"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if tt.geomType.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, tt.geomType.String())
			}
		})
	}
}

func TestLayoutStride(t *testing.T) {
	if LayoutXY.Stride() != 2 {
		t.Errorf("Expected XY stride 2, got %d", LayoutXY.Stride())
	}
	if LayoutXYZ.Stride() != 3 {
		t.Errorf("Expected XYZ stride 3, got %d", LayoutXYZ.Stride())
	}
}

func TestPolygonRings(t *testing.T) {
	// Exterior square plus one interior ring
	flat := []float64{
		0, 0, 4, 0, 4, 4, 0, 4, 0, 0,
		1, 1, 1, 2, 2, 2, 2, 1, 1, 1,
	}
	ends := []int{10, 20}
	polygon := NewPolygon(LayoutXY, flat, ends)

	if polygon.NumRings() != 2 {
		t.Fatalf("Expected 2 rings, got %d", polygon.NumRings())
	}

	exterior := polygon.Ring(0)
	if len(exterior) != 10 {
		t.Errorf("Expected exterior ring length 10, got %d", len(exterior))
	}
	if exterior[0] != 0 || exterior[1] != 0 {
		t.Errorf("Unexpected exterior ring start: %v", exterior[:2])
	}

	interior := polygon.Ring(1)
	if len(interior) != 10 {
		t.Errorf("Expected interior ring length 10, got %d", len(interior))
	}
	if interior[0] != 1 || interior[1] != 1 {
		t.Errorf("Unexpected interior ring start: %v", interior[:2])
	}

	// Ring-end offsets must be strictly increasing and end at the
	// flat-coordinate count
	if ends[len(ends)-1] != len(flat) {
		t.Errorf("Last end %d != flat coordinate count %d", ends[len(ends)-1], len(flat))
	}
}

func TestNumCoords(t *testing.T) {
	tests := []struct {
		name     string
		geometry *Geometry
		expected int
	}{
		{
			name:     "xy point",
			geometry: NewPoint(LayoutXY, []float64{-71.05, 42.35}),
			expected: 1,
		},
		{
			name:     "xyz point",
			geometry: NewPoint(LayoutXYZ, []float64{-71.05, 42.35, 12.5}),
			expected: 1,
		},
		{
			name:     "linestring",
			geometry: NewLineString(LayoutXY, []float64{-71.05, 42.35, -71.04, 42.36}),
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.geometry.NumCoords() != tt.expected {
				t.Errorf("Expected %d coords, got %d", tt.expected, tt.geometry.NumCoords())
			}
		})
	}
}

func TestClone(t *testing.T) {
	original := NewCollection(TypeMultiLineString, []*Geometry{
		NewLineString(LayoutXY, []float64{0, 0, 1, 1}),
		NewLineString(LayoutXY, []float64{2, 2, 3, 3}),
	})

	clone := original.Clone()
	clone.Geometries[0].FlatCoords[0] = 99

	if original.Geometries[0].FlatCoords[0] != 0 {
		t.Error("Clone shares flat coordinates with original")
	}

	if clone.Type != TypeMultiLineString {
		t.Errorf("Expected MultiLineString, got %v", clone.Type)
	}
}

func TestCollectionHeterogeneous(t *testing.T) {
	// GeometryCollection members may be of different variants
	collection := NewCollection(TypeGeometryCollection, []*Geometry{
		NewPoint(LayoutXY, []float64{0, 0}),
		NewLineString(LayoutXY, []float64{0, 0, 1, 1}),
	})

	if len(collection.Geometries) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(collection.Geometries))
	}
	if collection.Geometries[0].Type != TypePoint {
		t.Errorf("Expected Point member, got %v", collection.Geometries[0].Type)
	}
	if collection.Geometries[1].Type != TypeLineString {
		t.Errorf("Expected LineString member, got %v", collection.Geometries[1].Type)
	}
}
