package gml

import (
	"io"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/gml/internal/parser"
	"github.com/beetlebugorg/gml/pkg/geom"
)

// Decoder decodes GML feature documents.
//
// Create a decoder with NewDecoder and use Decode or DecodeWithOptions to
// read documents.
type Decoder interface {
	// Decode reads a GML document and returns the decoded feature
	// collection.
	//
	// The document may be a gml:FeatureCollection, a bare featureMember
	// or featureMembers element, or a single feature element. Both GML 2
	// and GML 3 encodings are accepted. Returns an error only when the
	// XML itself is malformed; content the decoder does not recognize is
	// skipped.
	Decode(r io.Reader) (*FeatureCollection, error)

	// DecodeWithOptions decodes a GML document with custom options.
	//
	// Use DecodeOptions to declare feature types up front or to enable
	// geometry validation.
	DecodeWithOptions(r io.Reader, opts DecodeOptions) (*FeatureCollection, error)
}

// NewDecoder creates a new GML decoder with default settings.
//
// Example:
//
//	decoder := gml.NewDecoder()
//	collection, err := decoder.Decode(file)
func NewDecoder() Decoder {
	return &decoderWrapper{
		internal: parser.NewDecoder(),
	}
}

// decoderWrapper wraps the internal decoder and converts types
type decoderWrapper struct {
	internal *parser.Decoder
}

func (d *decoderWrapper) Decode(r io.Reader) (*FeatureCollection, error) {
	return d.DecodeWithOptions(r, DefaultDecodeOptions())
}

func (d *decoderWrapper) DecodeWithOptions(r io.Reader, opts DecodeOptions) (*FeatureCollection, error) {
	internalOpts := parser.DecodeOptions{
		FeatureTypes:     opts.FeatureTypes,
		FeatureNS:        opts.FeatureNS,
		ValidateGeometry: opts.ValidateGeometry,
		SkipInvalid:      opts.SkipInvalid,
	}
	doc, err := d.internal.DecodeWithOptions(r, internalOpts)
	if err != nil {
		return nil, err
	}
	return convertDocument(doc), nil
}

// FeatureCollection holds the features decoded from one GML document.
//
// Access features via Features(), FeaturesInBounds(), or FeatureCount().
// The collection extent is available via Bounds().
//
// All fields are private to maintain encapsulation.
type FeatureCollection struct {
	features     []Feature
	spatialIndex *spatialIndex
	bounds       Bounds
}

// Feature represents one feature decoded from a GML document.
//
// Access feature data via methods:
//   - ID() returns the feature identifier
//   - GeometryName() returns the name of the designated geometry property
//   - Geometry() returns the designated geometry
//   - Properties() returns all decoded properties
//   - Property(name) returns a specific property value
type Feature struct {
	id           string
	geometryName string
	geometry     *geom.Geometry
	boundedBy    *Bounds
	properties   map[string]interface{}
}

// ID returns the feature identifier, from the fid attribute or a
// namespaced id attribute. Empty when the document carried neither.
func (f *Feature) ID() string {
	return f.id
}

// GeometryName returns the local name of the property holding the
// feature's designated geometry, empty when the feature has none.
func (f *Feature) GeometryName() string {
	return f.geometryName
}

// Geometry returns the feature's designated geometry, nil when the feature
// has no decodable geometry property.
func (f *Feature) Geometry() *geom.Geometry {
	return f.geometry
}

// BoundedBy returns the feature's declared extent, nil when the document
// carried none.
func (f *Feature) BoundedBy() *Bounds {
	return f.boundedBy
}

// Properties returns all decoded properties as a map keyed by local name.
//
// Values are strings for scalar properties, *geom.Geometry for geometry
// properties, and Bounds for boundedBy.
func (f *Feature) Properties() map[string]interface{} {
	return f.properties
}

// Property returns a specific property value by name.
//
// Returns the value and true if the property exists, or nil and false
// if not found.
//
// Example:
//
//	if name, ok := feature.Property("STATE_NAME"); ok {
//	    fmt.Printf("state: %v\n", name)
//	}
func (f *Feature) Property(name string) (interface{}, bool) {
	val, ok := f.properties[name]
	return val, ok
}

// spatialIndex provides O(log n) spatial queries using R-tree.
// Dramatically faster than linear O(n) scan for large collections.
type spatialIndex struct {
	rtree *rtreego.Rtree
}

// indexedFeature wraps a feature for R-tree storage.
type indexedFeature struct {
	feature Feature
	bounds  Bounds
}

// Bounds implements rtreego.Spatial interface.
func (f *indexedFeature) Bounds() rtreego.Rect {
	point := rtreego.Point{f.bounds.MinLon, f.bounds.MinLat}

	// Calculate lengths, ensuring minimum size for point features
	// R-tree requires non-zero dimensions
	lonLength := f.bounds.MaxLon - f.bounds.MinLon
	latLength := f.bounds.MaxLat - f.bounds.MinLat

	// For point features (zero-area), use small epsilon (~11 meters at equator)
	const epsilon = 0.0001
	if lonLength < epsilon {
		lonLength = epsilon
	}
	if latLength < epsilon {
		latLength = epsilon
	}

	lengths := []float64{lonLength, latLength}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// Features returns all features in the collection in document order.
func (c *FeatureCollection) Features() []Feature {
	return c.features
}

// FeatureCount returns the number of features in the collection.
func (c *FeatureCollection) FeatureCount() int {
	return len(c.features)
}

// Bounds returns the geographic extent of the collection.
//
// When the document declared a collection-level boundedBy, that extent is
// used. Otherwise this is the union of the feature bounds.
func (c *FeatureCollection) Bounds() Bounds {
	return c.bounds
}

// FeaturesInBounds returns all features whose bounds intersect the given
// bounding box.
//
// This is the primary method for viewport-based consumption. Only features
// that could be visible in the viewport are returned.
//
// Example:
//
//	viewport := gml.Bounds{
//	    MinLon: -71.5, MaxLon: -71.0,
//	    MinLat: 42.0, MaxLat: 42.5,
//	}
//	visible := collection.FeaturesInBounds(viewport)
func (c *FeatureCollection) FeaturesInBounds(bounds Bounds) []Feature {
	if c.spatialIndex == nil || c.spatialIndex.rtree == nil {
		return c.featuresInBoundsLinear(bounds)
	}

	// Query R-tree: O(log n) instead of O(n)
	point := rtreego.Point{bounds.MinLon, bounds.MinLat}
	lengths := []float64{
		bounds.MaxLon - bounds.MinLon,
		bounds.MaxLat - bounds.MinLat,
	}
	queryRect, _ := rtreego.NewRect(point, lengths)

	spatials := c.spatialIndex.rtree.SearchIntersect(queryRect)

	result := make([]Feature, 0, len(spatials))
	for _, spatial := range spatials {
		indexed := spatial.(*indexedFeature)
		result = append(result, indexed.feature)
	}

	return result
}

// featuresInBoundsLinear performs linear search when no spatial index exists.
func (c *FeatureCollection) featuresInBoundsLinear(bounds Bounds) []Feature {
	result := make([]Feature, 0, len(c.features)/10)
	for _, feature := range c.features {
		fb := featureBounds(feature)
		if bounds.Intersects(fb) {
			result = append(result, feature)
		}
	}
	return result
}

// convertDocument converts an internal document to the public API collection
func convertDocument(doc *parser.Document) *FeatureCollection {
	features := make([]Feature, len(doc.Features))
	for i, f := range doc.Features {
		properties := make(map[string]interface{}, len(f.Properties))
		for name, value := range f.Properties {
			if extent, ok := value.(*parser.Extent); ok {
				properties[name] = extentBounds(extent)
				continue
			}
			properties[name] = value
		}

		var boundedBy *Bounds
		if f.BoundedBy != nil {
			b := extentBounds(f.BoundedBy)
			boundedBy = &b
		}

		features[i] = Feature{
			id:           f.ID,
			geometryName: f.GeometryName,
			geometry:     f.Geometry,
			boundedBy:    boundedBy,
			properties:   properties,
		}
	}

	collection := &FeatureCollection{features: features}

	var declared *Bounds
	if doc.BoundedBy != nil {
		b := extentBounds(doc.BoundedBy)
		declared = &b
	}
	collection.buildSpatialIndex(declared)

	return collection
}

// buildSpatialIndex creates an R-tree spatial index for O(log n) bounding
// box queries, and derives the collection bounds while walking the
// features.
func (c *FeatureCollection) buildSpatialIndex(declared *Bounds) {
	if declared != nil {
		c.bounds = *declared
	}
	if len(c.features) == 0 {
		return
	}

	// 2D, min=25, max=50 children per node
	rtree := rtreego.NewTree(2, 25, 50)

	var union *Bounds
	for i := range c.features {
		fb := featureBounds(c.features[i])
		rtree.Insert(&indexedFeature{feature: c.features[i], bounds: fb})

		if declared == nil {
			if union == nil {
				b := fb
				union = &b
			} else {
				*union = union.Union(fb)
			}
		}
	}

	if union != nil {
		c.bounds = *union
	}
	c.spatialIndex = &spatialIndex{rtree: rtree}
}

func extentBounds(e *parser.Extent) Bounds {
	return Bounds{
		MinLon: e.MinX, MaxLon: e.MaxX,
		MinLat: e.MinY, MaxLat: e.MaxY,
	}
}
