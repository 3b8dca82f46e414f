package parser

import (
	"strconv"
	"strings"

	"github.com/beetlebugorg/gml/pkg/geom"
	"github.com/beetlebugorg/gml/pkg/proj"
)

// Namespace is the GML namespace URI. Both GML 2 and GML 3 documents use it.
const Namespace = "http://www.opengis.net/gml"

// geometryHandler decodes one geometry element. Handlers receive the stack
// with the element's own frame already pushed and return nil for content
// they cannot decode.
type geometryHandler func(d *Decoder, el *Element, stack contextStack) *geom.Geometry

// DecodeGeometry dispatches on the element's namespace and local name,
// returning nil for elements no handler claims.
//
// When the ambient srsName resolves to a projected coordinate system the
// decoded coordinates are transformed to lon/lat in place. Only the
// returned geometry's own flat coordinates are touched: collection members
// were already transformed when their handler ran, so transforming the
// container would double-apply.
func (d *Decoder) DecodeGeometry(el *Element, stack contextStack) *geom.Geometry {
	byLocal, ok := d.geometryHandlers[el.Space]
	if !ok {
		return nil
	}
	handler, ok := byLocal[el.Local]
	if !ok {
		return nil
	}

	stack = stack.push(frameFromElement(el))
	g := handler(d, el, stack)
	if g == nil {
		return nil
	}

	if p := proj.Get(stack.srsName()); p != nil && !p.Geographic() && len(g.FlatCoords) > 0 {
		p.Inverse(g.FlatCoords, g.Stride())
	}

	return g
}

func (d *Decoder) decodePoint(el *Element, stack contextStack) *geom.Geometry {
	flat, layout, ok := d.decodeCoordinates(el, stack)
	if !ok || len(flat) < layout.Stride() {
		return nil
	}
	return geom.NewPoint(layout, flat[:layout.Stride()])
}

func (d *Decoder) decodeLineString(el *Element, stack contextStack) *geom.Geometry {
	flat, layout, ok := d.decodeCoordinates(el, stack)
	if !ok {
		return nil
	}
	return geom.NewLineString(layout, flat)
}

func (d *Decoder) decodeLinearRing(el *Element, stack contextStack) *geom.Geometry {
	flat, layout, ok := d.decodeCoordinates(el, stack)
	if !ok {
		return nil
	}
	return geom.NewLinearRing(layout, flat)
}

// decodePolygon gathers the exterior ring followed by interior rings in
// document order. GML 2 spells the boundary properties outerBoundaryIs and
// innerBoundaryIs; GML 3 uses exterior and interior. A polygon with no
// decodable exterior ring is undefined.
func (d *Decoder) decodePolygon(el *Element, stack contextStack) *geom.Geometry {
	var flat []float64
	var ends []int
	var layout geom.Layout

	exterior := false
	for _, child := range el.Children {
		if child.Space != Namespace {
			continue
		}
		if child.Local != "exterior" && child.Local != "outerBoundaryIs" {
			continue
		}
		ring, ringLayout, ok := d.ringCoords(child, stack)
		if !ok {
			continue
		}
		flat = append(flat, ring...)
		ends = append(ends, len(flat))
		layout = ringLayout
		exterior = true
		break
	}
	if !exterior {
		return nil
	}

	for _, child := range el.Children {
		if child.Space != Namespace {
			continue
		}
		if child.Local != "interior" && child.Local != "innerBoundaryIs" {
			continue
		}
		ring, _, ok := d.ringCoords(child, stack)
		if !ok {
			continue
		}
		flat = append(flat, ring...)
		ends = append(ends, len(flat))
	}

	return geom.NewPolygon(layout, flat, ends)
}

// ringCoords decodes the LinearRing inside a boundary property element.
// The ring is parsed directly rather than dispatched through DecodeGeometry
// so the enclosing polygon's coordinates are reprojected exactly once.
func (d *Decoder) ringCoords(boundary *Element, stack contextStack) ([]float64, geom.Layout, bool) {
	for _, child := range boundary.Children {
		if child.Space == Namespace && child.Local == "LinearRing" {
			return d.decodeCoordinates(child, stack.push(frameFromElement(child)))
		}
	}
	return nil, geom.LayoutXY, false
}

func (d *Decoder) decodeMultiPoint(el *Element, stack contextStack) *geom.Geometry {
	members := d.decodeMembers(el, stack, "pointMember", "pointMembers")
	if members == nil {
		return nil
	}
	return geom.NewCollection(geom.TypeMultiPoint, members)
}

func (d *Decoder) decodeMultiLineString(el *Element, stack contextStack) *geom.Geometry {
	members := d.decodeMembers(el, stack, "lineStringMember", "lineStringMembers")
	if members == nil {
		return nil
	}
	return geom.NewCollection(geom.TypeMultiLineString, members)
}

func (d *Decoder) decodeMultiPolygon(el *Element, stack contextStack) *geom.Geometry {
	members := d.decodeMembers(el, stack, "polygonMember", "polygonMembers")
	if members == nil {
		return nil
	}
	return geom.NewCollection(geom.TypeMultiPolygon, members)
}

func (d *Decoder) decodeMultiGeometry(el *Element, stack contextStack) *geom.Geometry {
	members := d.decodeMembers(el, stack, "geometryMember", "geometryMembers")
	if members == nil {
		return nil
	}
	return geom.NewCollection(geom.TypeGeometryCollection, members)
}

// decodeMembers accumulates member geometries across repeated singular
// member elements and plural members containers. Members that fail to
// decode are skipped.
func (d *Decoder) decodeMembers(el *Element, stack contextStack, singular, plural string) []*geom.Geometry {
	var members []*geom.Geometry
	for _, child := range el.Children {
		if child.Space != Namespace {
			continue
		}
		if child.Local != singular && child.Local != plural {
			continue
		}
		for _, inner := range child.Children {
			if g := d.DecodeGeometry(inner, stack); g != nil {
				members = append(members, g)
			}
		}
	}
	return members
}

// decodeCoordinates finds the coordinate-bearing child of a geometry
// element and parses it into flat coordinates. GML 3 carries coordinates
// in pos or posList; GML 2 uses the coordinates element.
func (d *Decoder) decodeCoordinates(el *Element, stack contextStack) ([]float64, geom.Layout, bool) {
	for _, child := range el.Children {
		if child.Space != Namespace {
			continue
		}
		switch child.Local {
		case "pos", "posList":
			return parsePosList(child, stack)
		case "coordinates":
			return parseCoordinatesText(child)
		}
	}
	return nil, geom.LayoutXY, false
}

// parsePosList parses whitespace-separated ordinates, grouped by the
// effective srsDimension. A value count that is not a multiple of the
// dimension means the text is truncated or the dimension is wrong, and
// the coordinates are rejected.
func parsePosList(el *Element, stack contextStack) ([]float64, geom.Layout, bool) {
	dim := stack.dimension()
	if v, ok := el.anyAttr("srsDimension"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			dim = n
		}
	}

	layout := geom.LayoutXY
	if dim == 3 {
		layout = geom.LayoutXYZ
	} else if dim != 2 {
		return nil, geom.LayoutXY, false
	}

	fields := strings.Fields(el.Text)
	if len(fields) == 0 || len(fields)%dim != 0 {
		return nil, layout, false
	}

	flat := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, layout, false
		}
		flat = append(flat, value)
	}
	return flat, layout, true
}

// parseCoordinatesText parses the GML 2 coordinates form: tuples separated
// by whitespace, ordinates within a tuple separated by commas. The tuple
// width of the first tuple fixes the layout.
func parseCoordinatesText(el *Element) ([]float64, geom.Layout, bool) {
	tuples := strings.Fields(el.Text)
	if len(tuples) == 0 {
		return nil, geom.LayoutXY, false
	}

	dim := len(strings.Split(tuples[0], ","))
	layout := geom.LayoutXY
	if dim == 3 {
		layout = geom.LayoutXYZ
	} else if dim != 2 {
		return nil, geom.LayoutXY, false
	}

	flat := make([]float64, 0, len(tuples)*dim)
	for _, tuple := range tuples {
		parts := strings.Split(tuple, ",")
		if len(parts) != dim {
			return nil, layout, false
		}
		for _, part := range parts {
			value, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return nil, layout, false
			}
			flat = append(flat, value)
		}
	}
	return flat, layout, true
}
