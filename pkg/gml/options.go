package gml

// DecodeOptions configures document decoding.
type DecodeOptions struct {
	// FeatureTypes lists the local names of the elements to decode as
	// features. When empty, feature types are discovered from the
	// document's member elements.
	FeatureTypes []string

	// FeatureNS maps namespace prefixes to namespace URIs for
	// FeatureTypes. Ignored when FeatureTypes is empty.
	FeatureNS map[string]string

	// ValidateGeometry enables structural and coordinate-range checks
	// on decoded geometries.
	ValidateGeometry bool

	// SkipInvalid drops features whose geometry fails validation instead
	// of returning an error. Only consulted when ValidateGeometry is set.
	SkipInvalid bool
}

// DefaultDecodeOptions returns default options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{
		FeatureTypes:     nil,
		FeatureNS:        nil,
		ValidateGeometry: false,
		SkipInvalid:      true,
	}
}
