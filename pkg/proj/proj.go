// Package proj supplies the coordinate reference system collaborator used by
// the GML decoder and the spherical measurement functions.
//
// Two reference systems are registered: geographic WGS-84 (EPSG:4326) and
// spherical web mercator (EPSG:3857). Lookup accepts the spatial reference
// system names that commonly appear in GML srsName attributes, including the
// URN and URL spellings. Unknown names resolve to nil; callers treat that as
// "leave coordinates untouched".
package proj

import (
	"math"
	"strings"
)

// Projection converts between projected coordinates and geographic decimal
// degrees.
//
// Forward and Inverse operate in place on a flat coordinate sequence with the
// given stride; components beyond the first two (elevation) pass through
// unchanged.
type Projection interface {
	// Code returns the canonical EPSG code, e.g. "EPSG:3857".
	Code() string

	// Geographic reports whether coordinates are already geographic
	// decimal degrees. Inverse is the identity for geographic systems.
	Geographic() bool

	// Forward converts geographic degrees to projected coordinates.
	Forward(flatCoords []float64, stride int)

	// Inverse converts projected coordinates to geographic degrees.
	Inverse(flatCoords []float64, stride int)
}

// Get returns the projection registered for the given spatial reference
// system name, or nil if the name is not recognized.
//
// Accepted spellings include "EPSG:4326", "CRS:84",
// "urn:ogc:def:crs:EPSG::4326", "urn:x-ogc:def:crs:EPSG:4326",
// "http://www.opengis.net/gml/srs/epsg.xml#4326", "EPSG:3857" and the legacy
// "EPSG:900913".
func Get(srsName string) Projection {
	switch normalize(srsName) {
	case "4326", "CRS84", "CRS:84", "OGC:CRS84":
		return geographic{}
	case "3857", "900913", "102100", "102113":
		return webMercator{}
	default:
		return nil
	}
}

// normalize reduces the many srsName spellings to a bare code.
func normalize(srsName string) string {
	name := strings.TrimSpace(srsName)

	// URL form: http://www.opengis.net/gml/srs/epsg.xml#4326
	if i := strings.LastIndex(name, "#"); i >= 0 {
		return name[i+1:]
	}

	// URN form: urn:ogc:def:crs:EPSG::4326, urn:x-ogc:def:crs:EPSG:4326
	if strings.HasPrefix(strings.ToLower(name), "urn:") {
		if i := strings.LastIndex(name, ":"); i >= 0 {
			name = name[i+1:]
		}
		return strings.ToUpper(name)
	}

	// Authority form: EPSG:4326
	if i := strings.LastIndex(name, ":"); i >= 0 {
		authority := strings.ToUpper(name[:i])
		if authority == "EPSG" {
			return name[i+1:]
		}
	}

	return strings.ToUpper(name)
}

// webMercatorRadius is the WGS-84 semi-major axis, the sphere radius used by
// the spherical web mercator projection.
const webMercatorRadius = 6378137.0

// geographic is the identity projection for coordinates already in decimal
// degrees.
type geographic struct{}

func (geographic) Code() string                             { return "EPSG:4326" }
func (geographic) Geographic() bool                         { return true }
func (geographic) Forward(flatCoords []float64, stride int) {}
func (geographic) Inverse(flatCoords []float64, stride int) {}

// webMercator is the spherical web mercator projection (EPSG:3857).
type webMercator struct{}

func (webMercator) Code() string     { return "EPSG:3857" }
func (webMercator) Geographic() bool { return false }

func (webMercator) Forward(flatCoords []float64, stride int) {
	for i := 0; i+1 < len(flatCoords); i += stride {
		lon := flatCoords[i]
		lat := flatCoords[i+1]
		flatCoords[i] = webMercatorRadius * toRadians(lon)
		flatCoords[i+1] = webMercatorRadius * math.Log(math.Tan(math.Pi/4+toRadians(lat)/2))
	}
}

func (webMercator) Inverse(flatCoords []float64, stride int) {
	for i := 0; i+1 < len(flatCoords); i += stride {
		x := flatCoords[i]
		y := flatCoords[i+1]
		flatCoords[i] = toDegrees(x / webMercatorRadius)
		flatCoords[i+1] = toDegrees(2*math.Atan(math.Exp(y/webMercatorRadius)) - math.Pi/2)
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
