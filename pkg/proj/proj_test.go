package proj

import (
	"math"
	"testing"
)

// TestGet tests srsName spelling normalization
func TestGet(t *testing.T) {
	tests := []struct {
		srsName  string
		expected string // canonical code, "" for unknown
	}{
		{"EPSG:4326", "EPSG:4326"},
		{"CRS:84", "EPSG:4326"},
		{"urn:ogc:def:crs:EPSG::4326", "EPSG:4326"},
		{"urn:x-ogc:def:crs:EPSG:4326", "EPSG:4326"},
		{"urn:ogc:def:crs:OGC:1.3:CRS84", "EPSG:4326"},
		{"http://www.opengis.net/gml/srs/epsg.xml#4326", "EPSG:4326"},
		{"EPSG:3857", "EPSG:3857"},
		{"EPSG:900913", "EPSG:3857"},
		{"urn:ogc:def:crs:EPSG::3857", "EPSG:3857"},
		{"EPSG:27700", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.srsName, func(t *testing.T) {
			p := Get(tt.srsName)
			if tt.expected == "" {
				if p != nil {
					t.Errorf("Expected nil for %q, got %s", tt.srsName, p.Code())
				}
				return
			}
			if p == nil {
				t.Fatalf("Expected %s for %q, got nil", tt.expected, tt.srsName)
			}
			if p.Code() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, p.Code())
			}
		})
	}
}

func TestGeographicIdentity(t *testing.T) {
	p := Get("EPSG:4326")
	if !p.Geographic() {
		t.Fatal("EPSG:4326 should be geographic")
	}

	coords := []float64{-71.05, 42.35, 12.5}
	p.Inverse(coords, 3)
	if coords[0] != -71.05 || coords[1] != 42.35 || coords[2] != 12.5 {
		t.Errorf("Identity inverse changed coordinates: %v", coords)
	}
}

func TestWebMercatorForward(t *testing.T) {
	p := Get("EPSG:3857")
	if p.Geographic() {
		t.Fatal("EPSG:3857 should not be geographic")
	}

	// Origin maps to origin
	coords := []float64{0, 0}
	p.Forward(coords, 2)
	if coords[0] != 0 || coords[1] != 0 {
		t.Errorf("Expected origin, got %v", coords)
	}

	// 180 degrees east maps to the projection's eastern edge
	coords = []float64{180, 0}
	p.Forward(coords, 2)
	expected := webMercatorRadius * math.Pi
	if math.Abs(coords[0]-expected) > 1e-6 {
		t.Errorf("Expected x=%f, got %f", expected, coords[0])
	}
}

func TestWebMercatorRoundTrip(t *testing.T) {
	p := Get("EPSG:3857")

	tests := []struct {
		name     string
		lon, lat float64
	}{
		{"boston", -71.06, 42.36},
		{"sydney", 151.21, -33.87},
		{"equator", 10.0, 0.0},
		{"high latitude", 25.0, 84.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords := []float64{tt.lon, tt.lat}
			p.Forward(coords, 2)
			p.Inverse(coords, 2)

			if math.Abs(coords[0]-tt.lon) > 1e-9 {
				t.Errorf("Longitude round trip: expected %f, got %f", tt.lon, coords[0])
			}
			if math.Abs(coords[1]-tt.lat) > 1e-9 {
				t.Errorf("Latitude round trip: expected %f, got %f", tt.lat, coords[1])
			}
		})
	}
}

func TestWebMercatorElevationPassthrough(t *testing.T) {
	p := Get("EPSG:3857")

	coords := []float64{-71.06, 42.36, 100.0}
	p.Forward(coords, 3)
	if coords[2] != 100.0 {
		t.Errorf("Elevation should pass through unchanged, got %f", coords[2])
	}
}
