package parser

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/gml/pkg/geom"
)

// Feature represents one feature element decoded from a GML document
type Feature struct {
	// ID is the feature identifier from the fid attribute, or from a
	// namespaced id attribute when fid is absent. Empty when the element
	// carries neither.
	ID string
	// GeometryName is the local name of the property holding the
	// feature's designated geometry
	GeometryName string
	// Geometry is the designated geometry, nil when the feature has no
	// decodable geometry property
	Geometry *geom.Geometry
	// BoundedBy is the feature's declared extent, nil when absent
	BoundedBy *Extent
	// Properties contains all decoded properties keyed by local name:
	// strings for scalar properties, *geom.Geometry for geometry
	// properties, *Extent for boundedBy
	Properties map[string]interface{}
}

// Extent is a bounding box decoded from a boundedBy element, in the
// coordinate order the document carries.
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// DecodeDocument interprets a parsed element tree as a GML document.
// The root may be a FeatureCollection, a bare featureMember(s) element,
// or a single feature element matching a declared feature type. Elements
// nothing claims are skipped, never an error.
func (d *Decoder) DecodeDocument(root *Element, opts DecodeOptions) *Document {
	doc := &Document{}
	if root == nil {
		return doc
	}

	stack := contextStack{}.push(frame{
		featureTypes: opts.FeatureTypes,
		featureNS:    opts.FeatureNS,
	})
	stack = stack.push(frameFromElement(root))

	switch {
	case root.Space == Namespace && root.Local == "FeatureCollection":
		for _, child := range root.Children {
			if child.Space != Namespace {
				continue
			}
			switch child.Local {
			case "boundedBy":
				doc.BoundedBy = d.decodeExtent(child, stack)
			case "featureMember":
				d.decodeFeatureMember(child, stack, &doc.Features)
			case "featureMembers":
				d.decodeFeatureMembers(child, stack, &doc.Features)
			}
		}

	case root.Space == Namespace && root.Local == "featureMember":
		d.decodeFeatureMember(root, stack, &doc.Features)

	case root.Space == Namespace && root.Local == "featureMembers":
		d.decodeFeatureMembers(root, stack, &doc.Features)

	default:
		types, ns := stack.featureDecl()
		if matchesFeature(root, types, ns) {
			doc.Features = append(doc.Features, d.decodeFeatureElement(root, stack))
		}
	}

	return doc
}

// decodeFeatureMembers decodes the children of a featureMembers container.
// Without a declared feature type, discovery scans the children once and
// the resulting association covers all of them.
func (d *Decoder) decodeFeatureMembers(container *Element, stack contextStack, out *[]*Feature) {
	types, ns := stack.featureDecl()
	if len(types) == 0 {
		types, ns = discoverFeatureTypes(container.Children)
	}
	stack = stack.push(frame{featureTypes: types, featureNS: ns})

	for _, child := range container.Children {
		if matchesFeature(child, types, ns) {
			*out = append(*out, d.decodeFeatureElement(child, stack))
		}
	}
}

// decodeFeatureMember decodes the feature inside one featureMember wrapper.
// Discovery runs per wrapped element, since each wrapper carries a single
// feature and sibling wrappers may hold different types.
func (d *Decoder) decodeFeatureMember(wrapper *Element, stack contextStack, out *[]*Feature) {
	declTypes, declNS := stack.featureDecl()

	for _, child := range wrapper.Children {
		types, ns := declTypes, declNS
		if len(types) == 0 {
			types, ns = discoverFeatureTypes([]*Element{child})
		}
		if !matchesFeature(child, types, ns) {
			continue
		}
		childStack := stack.push(frame{featureTypes: types, featureNS: ns})
		*out = append(*out, d.decodeFeatureElement(child, childStack))
	}
}

// discoverFeatureTypes derives a feature-type declaration from candidate
// feature elements: every distinct local name becomes a feature type, and
// every distinct namespace URI gets a generated prefix (p0, p1, ...) in
// first-encounter order. gml:boundedBy is never a feature type.
func discoverFeatureTypes(candidates []*Element) ([]string, map[string]string) {
	var types []string
	ns := make(map[string]string)

	for _, el := range candidates {
		if el.Space == Namespace && el.Local == "boundedBy" {
			continue
		}
		if !containsString(types, el.Local) {
			types = append(types, el.Local)
		}
		if !containsValue(ns, el.Space) {
			ns["p"+strconv.Itoa(len(ns))] = el.Space
		}
	}
	return types, ns
}

func matchesFeature(el *Element, types []string, ns map[string]string) bool {
	return containsString(types, el.Local) && containsValue(ns, el.Space)
}

// decodeFeatureElement builds a Feature from one feature element. A child
// with no element children is a scalar property holding its trimmed text.
// The first complex child other than boundedBy designates the feature's
// geometry property; when its geometry fails to decode the feature is still
// produced, just without a geometry.
func (d *Decoder) decodeFeatureElement(el *Element, stack contextStack) *Feature {
	stack = stack.push(frameFromElement(el))

	f := &Feature{Properties: make(map[string]interface{})}
	if v, ok := el.Attr("fid"); ok {
		f.ID = v
	} else if v, ok := el.NamespacedAttr("id"); ok {
		f.ID = v
	}

	designated := false
	for _, child := range el.Children {
		if len(child.Children) == 0 {
			f.Properties[child.Local] = strings.TrimSpace(child.Text)
			continue
		}

		if child.Space == Namespace && child.Local == "boundedBy" {
			if extent := d.decodeExtent(child, stack); extent != nil {
				f.BoundedBy = extent
				f.Properties[child.Local] = extent
			}
			continue
		}

		g := d.decodeGeometryProperty(child, stack)
		if !designated {
			designated = true
			if g != nil {
				f.GeometryName = child.Local
				f.Geometry = g
			}
		}
		if g != nil {
			f.Properties[child.Local] = g
		}
	}

	return f
}

// decodeGeometryProperty decodes the first geometry element inside a
// complex property, nil when no child decodes.
func (d *Decoder) decodeGeometryProperty(prop *Element, stack contextStack) *geom.Geometry {
	stack = stack.push(frameFromElement(prop))
	for _, child := range prop.Children {
		if g := d.DecodeGeometry(child, stack); g != nil {
			return g
		}
	}
	return nil
}

// decodeExtent decodes the bounding box inside a boundedBy element. GML 2
// encodes it as a Box with a two-tuple coordinates child; GML 3 as an
// Envelope with lowerCorner and upperCorner.
func (d *Decoder) decodeExtent(boundedBy *Element, stack contextStack) *Extent {
	stack = stack.push(frameFromElement(boundedBy))

	for _, child := range boundedBy.Children {
		if child.Space != Namespace {
			continue
		}
		switch child.Local {
		case "Box":
			flat, layout, ok := d.decodeCoordinates(child, stack.push(frameFromElement(child)))
			stride := layout.Stride()
			if !ok || len(flat) < 2*stride {
				return nil
			}
			return &Extent{
				MinX: flat[0], MinY: flat[1],
				MaxX: flat[stride], MaxY: flat[stride+1],
			}
		case "Envelope":
			return decodeEnvelope(child)
		}
	}
	return nil
}

func decodeEnvelope(envelope *Element) *Extent {
	var lower, upper []float64
	for _, child := range envelope.Children {
		if child.Space != Namespace {
			continue
		}
		switch child.Local {
		case "lowerCorner":
			lower = parseOrdinates(child.Text)
		case "upperCorner":
			upper = parseOrdinates(child.Text)
		}
	}
	if len(lower) < 2 || len(upper) < 2 {
		return nil
	}
	return &Extent{MinX: lower[0], MinY: lower[1], MaxX: upper[0], MaxY: upper[1]}
}

func parseOrdinates(text string) []float64 {
	fields := strings.Fields(text)
	values := make([]float64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil
		}
		values = append(values, v)
	}
	return values
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsValue(m map[string]string, s string) bool {
	for _, v := range m {
		if v == s {
			return true
		}
	}
	return false
}
