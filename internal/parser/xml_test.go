package parser

import (
	"strings"
	"testing"
)

// TestParse tests element tree construction from XML
func TestParse(t *testing.T) {
	doc := `<gml:Point xmlns:gml="http://www.opengis.net/gml" srsName="EPSG:4326">
		<gml:pos>1.5 2.5</gml:pos>
	</gml:Point>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if root.Space != Namespace || root.Local != "Point" {
		t.Errorf("root = {%s}%s, want {%s}Point", root.Space, root.Local, Namespace)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(root.Children))
	}

	pos := root.Children[0]
	if pos.Local != "pos" {
		t.Errorf("child local = %s, want pos", pos.Local)
	}
	if strings.TrimSpace(pos.Text) != "1.5 2.5" {
		t.Errorf("pos text = %q, want \"1.5 2.5\"", pos.Text)
	}
}

// TestParseNested verifies document order and text accumulation survive
// nesting
func TestParseNested(t *testing.T) {
	doc := `<a>before<b>inner</b>after<c/></a>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
	if root.Children[0].Local != "b" || root.Children[1].Local != "c" {
		t.Errorf("children = [%s %s], want [b c]", root.Children[0].Local, root.Children[1].Local)
	}
	if root.Text != "beforeafter" {
		t.Errorf("root text = %q, want %q", root.Text, "beforeafter")
	}
	if root.Children[0].Text != "inner" {
		t.Errorf("b text = %q, want %q", root.Children[0].Text, "inner")
	}
}

// TestParseMalformed tests that malformed XML surfaces an error
func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty input", ""},
		{"mismatched tags", "<a><b></a></b>"},
		{"truncated", "<a><b>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.doc)); err == nil {
				t.Errorf("Parse() expected error for %q", tt.doc)
			}
		})
	}
}

// TestAttr tests attribute lookup by prefixing
func TestAttr(t *testing.T) {
	doc := `<f:Feature xmlns:f="http://example.com/f"
		xmlns:gml="http://www.opengis.net/gml"
		fid="f1" gml:id="g1"/>`

	root, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if v, ok := root.Attr("fid"); !ok || v != "f1" {
		t.Errorf("Attr(fid) = %q, %v, want f1, true", v, ok)
	}
	if _, ok := root.Attr("id"); ok {
		t.Error("Attr(id) matched a namespaced attribute")
	}
	if v, ok := root.NamespacedAttr("id"); !ok || v != "g1" {
		t.Errorf("NamespacedAttr(id) = %q, %v, want g1, true", v, ok)
	}
	if _, ok := root.NamespacedAttr("fid"); ok {
		t.Error("NamespacedAttr(fid) matched an unprefixed attribute")
	}
}
