package parser

import (
	"fmt"

	"github.com/beetlebugorg/gml/pkg/geom"
)

// ValidateCoordinate validates a single geographic coordinate pair
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateGeometry validates the structure and coordinates of a decoded
// geometry. Collection types are validated through their members; leaf
// types have their ends offsets and every vertex checked.
func ValidateGeometry(g *geom.Geometry) error {
	if g == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	if len(g.Geometries) > 0 {
		for i, member := range g.Geometries {
			if err := ValidateGeometry(member); err != nil {
				return &ErrInvalidGeometry{
					Type:   g.Type,
					Reason: fmt.Sprintf("member %d invalid: %v", i, err),
				}
			}
		}
		return nil
	}

	stride := g.Stride()
	if len(g.FlatCoords)%stride != 0 {
		return &ErrInvalidGeometry{
			Type:   g.Type,
			Reason: fmt.Sprintf("flat coordinates length %d is not a multiple of stride %d", len(g.FlatCoords), stride),
		}
	}

	// Ends must be strictly increasing stride multiples covering all
	// coordinates, so every ring is addressable.
	if len(g.Ends) > 0 {
		prev := 0
		for i, end := range g.Ends {
			if end <= prev || end%stride != 0 {
				return &ErrInvalidGeometry{
					Type:   g.Type,
					Reason: fmt.Sprintf("ends[%d]=%d is not a strictly increasing stride multiple", i, end),
				}
			}
			prev = end
		}
		if prev != len(g.FlatCoords) {
			return &ErrInvalidGeometry{
				Type:   g.Type,
				Reason: fmt.Sprintf("ends cover %d of %d flat coordinates", prev, len(g.FlatCoords)),
			}
		}
	}

	for i := 0; i+stride <= len(g.FlatCoords); i += stride {
		lon, lat := g.FlatCoords[i], g.FlatCoords[i+1]
		if err := ValidateCoordinate(lat, lon); err != nil {
			return &ErrInvalidGeometry{
				Type:   g.Type,
				Reason: fmt.Sprintf("coordinate %d invalid: %v", i/stride, err),
			}
		}
	}

	return nil
}
