package parser

import (
	"io"
)

// Decoder decodes GML documents into features and geometries.
//
// GML serializes features as elements in an application namespace whose
// children are either scalar properties or geometry properties. The decoder
// reads the XML structure once into an element tree, then interprets it:
// namespace plus local name selects the geometry handler, and ambient
// attributes (srsName, srsDimension) are carried on a context stack so
// nested declarations shadow outer ones.
//
// References:
//   - OGC 02-023r4 (GML 3.1.1) §9, §10: feature and geometry encodings
//   - OGC 01-029 (GML 2.1.2) §4: coordinates, Box, *BoundaryIs encodings
type Decoder struct {
	geometryHandlers map[string]map[string]geometryHandler
}

// NewDecoder creates a GML decoder with handlers for the geometry kinds
// both GML 2 and GML 3 share.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.geometryHandlers = map[string]map[string]geometryHandler{
		Namespace: {
			"Point":           (*Decoder).decodePoint,
			"LineString":      (*Decoder).decodeLineString,
			"LinearRing":      (*Decoder).decodeLinearRing,
			"Polygon":         (*Decoder).decodePolygon,
			"MultiPoint":      (*Decoder).decodeMultiPoint,
			"MultiLineString": (*Decoder).decodeMultiLineString,
			"MultiPolygon":    (*Decoder).decodeMultiPolygon,
			"MultiGeometry":   (*Decoder).decodeMultiGeometry,
		},
	}
	return d
}

// DecodeOptions configures document decoding
type DecodeOptions struct {
	// FeatureTypes: local names of the elements to decode as features.
	// Empty means discover feature types from the document.
	FeatureTypes []string

	// FeatureNS: prefix to namespace URI associations for FeatureTypes.
	// Ignored when FeatureTypes is empty.
	FeatureNS map[string]string

	// ValidateGeometry: if true, validate decoded coordinates and
	// geometry structure.
	// Default: false (GML in the wild frequently carries out-of-range
	// coordinates in projected systems)
	ValidateGeometry bool

	// SkipInvalid: if true, drop features whose geometry fails
	// validation instead of returning an error.
	// Default: true
	SkipInvalid bool
}

// DefaultDecodeOptions returns decode options with defaults
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		FeatureTypes:     nil,
		FeatureNS:        nil,
		ValidateGeometry: false,
		SkipInvalid:      true,
	}
}

// Document is the result of decoding one GML document.
type Document struct {
	Features  []*Feature
	BoundedBy *Extent
}

// Decode reads a GML document and returns its features.
func (d *Decoder) Decode(r io.Reader) (*Document, error) {
	return d.DecodeWithOptions(r, DefaultDecodeOptions())
}

// DecodeWithOptions decodes with custom options.
func (d *Decoder) DecodeWithOptions(r io.Reader, opts DecodeOptions) (*Document, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, err
	}

	doc := d.DecodeDocument(root, opts)

	if opts.ValidateGeometry {
		kept := doc.Features[:0]
		for _, f := range doc.Features {
			if f.Geometry == nil {
				kept = append(kept, f)
				continue
			}
			if err := ValidateGeometry(f.Geometry); err != nil {
				if opts.SkipInvalid {
					continue
				}
				return nil, err
			}
			kept = append(kept, f)
		}
		doc.Features = kept
	}

	return doc, nil
}
