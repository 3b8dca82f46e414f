package parser

import (
	"strings"
	"testing"
)

// TestDefaultDecodeOptions tests option defaults
func TestDefaultDecodeOptions(t *testing.T) {
	opts := DefaultDecodeOptions()

	if opts.FeatureTypes != nil {
		t.Errorf("FeatureTypes = %v, want nil", opts.FeatureTypes)
	}
	if opts.ValidateGeometry {
		t.Error("ValidateGeometry should default to false")
	}
	if !opts.SkipInvalid {
		t.Error("SkipInvalid should default to true")
	}
}

// TestDecode tests the reader entry point end to end
func TestDecode(t *testing.T) {
	doc := `<gml:FeatureCollection ` + gmlns + ` ` + topp + `>
		<gml:featureMember>
			<topp:states fid="states.1">
				<topp:the_geom>
					<gml:Point><gml:pos>-89.2 40.1</gml:pos></gml:Point>
				</topp:the_geom>
			</topp:states>
		</gml:featureMember>
	</gml:FeatureCollection>`

	result, err := NewDecoder().Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(result.Features) != 1 {
		t.Fatalf("features = %d, want 1", len(result.Features))
	}
	if result.Features[0].Geometry == nil {
		t.Error("feature has no geometry")
	}
}

// TestDecodeMalformedXML tests that only malformed XML is a hard error
func TestDecodeMalformedXML(t *testing.T) {
	if _, err := NewDecoder().Decode(strings.NewReader("<gml:Feature")); err == nil {
		t.Error("Decode() expected error for malformed XML")
	}
}

// TestDecodeUnrecognizedDocument tests that a document with no features is
// an empty result, not an error
func TestDecodeUnrecognizedDocument(t *testing.T) {
	result, err := NewDecoder().Decode(strings.NewReader(`<unrelated><stuff/></unrelated>`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(result.Features) != 0 {
		t.Errorf("features = %d, want 0", len(result.Features))
	}
}

// TestDecodeWithValidation tests geometry validation during decode
func TestDecodeWithValidation(t *testing.T) {
	doc := `<gml:featureMembers ` + gmlns + ` ` + topp + `>
		<topp:states fid="states.1">
			<topp:the_geom>
				<gml:Point><gml:pos>-89.2 40.1</gml:pos></gml:Point>
			</topp:the_geom>
		</topp:states>
		<topp:states fid="states.2">
			<topp:the_geom>
				<gml:Point><gml:pos>-89.2 95.0</gml:pos></gml:Point>
			</topp:the_geom>
		</topp:states>
	</gml:featureMembers>`

	t.Run("skip invalid", func(t *testing.T) {
		opts := DefaultDecodeOptions()
		opts.ValidateGeometry = true

		result, err := NewDecoder().DecodeWithOptions(strings.NewReader(doc), opts)
		if err != nil {
			t.Fatalf("DecodeWithOptions() error = %v", err)
		}
		if len(result.Features) != 1 {
			t.Fatalf("features = %d, want 1", len(result.Features))
		}
		if result.Features[0].ID != "states.1" {
			t.Errorf("surviving feature = %q, want states.1", result.Features[0].ID)
		}
	})

	t.Run("fail on invalid", func(t *testing.T) {
		opts := DefaultDecodeOptions()
		opts.ValidateGeometry = true
		opts.SkipInvalid = false

		if _, err := NewDecoder().DecodeWithOptions(strings.NewReader(doc), opts); err == nil {
			t.Error("DecodeWithOptions() expected validation error")
		}
	})

	t.Run("validation off keeps everything", func(t *testing.T) {
		result, err := NewDecoder().Decode(strings.NewReader(doc))
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if len(result.Features) != 2 {
			t.Errorf("features = %d, want 2", len(result.Features))
		}
	})
}
