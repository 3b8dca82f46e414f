// Package gml provides a decoder for OGC Geography Markup Language documents.
//
// This package is designed for applications that consume GML feature data
// from WFS servers and file exports. It decodes both GML 2 and GML 3
// documents into features with flat-coordinate geometries, and provides
// fast spatial queries over the decoded collection.
//
// # Basic Usage
//
//	decoder := gml.NewDecoder()
//	collection, err := decoder.Decode(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("decoded %d features covering %+v\n",
//	    collection.FeatureCount(), collection.Bounds())
//
// # Spatial Queries
//
// The collection automatically builds a spatial index for fast viewport
// queries:
//
//	viewport := gml.Bounds{
//	    MinLon: -71.5, MaxLon: -71.0,
//	    MinLat: 42.0, MaxLat: 42.5,
//	}
//	visible := collection.FeaturesInBounds(viewport)
//
// # Coordinates
//
// Decoded coordinates follow the GeoJSON convention: [longitude, latitude]
// in WGS-84 decimal degrees. Documents whose srsName declares web mercator
// (EPSG:3857) are transformed during decoding; unrecognized coordinate
// systems pass through untouched.
//
// # Measurements
//
// Geodesic lengths and areas of decoded geometries are computed by the
// companion package sphere:
//
//	area := sphere.Area(feature.Geometry(), sphere.Options{})
package gml
