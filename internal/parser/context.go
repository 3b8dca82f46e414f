package parser

import (
	"strconv"
	"strings"
)

// frame holds the ambient decode state contributed by one element: the
// coordinate reference system and dimension announced by srsName and
// srsDimension attributes, and any feature-type declarations in effect.
// Zero values mean "inherit from the enclosing element".
type frame struct {
	srsName      string
	srsDimension int
	featureTypes []string
	featureNS    map[string]string
}

// contextStack is the chain of frames from the document root down to the
// element being decoded. Lookups walk from the innermost frame outward, so
// the nearest declaration wins.
type contextStack []frame

// push returns a new stack with f on top. The three-index slice expression
// forces a copy on append, so sibling subtrees never see each other's
// frames.
func (s contextStack) push(f frame) contextStack {
	return append(s[:len(s):len(s)], f)
}

// srsName returns the nearest declared coordinate reference system, or the
// empty string when no enclosing element declared one.
func (s contextStack) srsName() string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].srsName != "" {
			return s[i].srsName
		}
	}
	return ""
}

// dimension returns the nearest declared coordinate dimension, defaulting
// to 2.
func (s contextStack) dimension() int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].srsDimension != 0 {
			return s[i].srsDimension
		}
	}
	return 2
}

// featureDecl returns the nearest feature-type declaration, or nil slices
// when none is in effect and auto-discovery should run.
func (s contextStack) featureDecl() ([]string, map[string]string) {
	for i := len(s) - 1; i >= 0; i-- {
		if len(s[i].featureTypes) > 0 {
			return s[i].featureTypes, s[i].featureNS
		}
	}
	return nil, nil
}

// frameFromElement captures the ambient state an element contributes.
func frameFromElement(el *Element) frame {
	f := frame{}
	if v, ok := el.anyAttr("srsName"); ok {
		f.srsName = v
	}
	if v, ok := el.anyAttr("srsDimension"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			f.srsDimension = n
		}
	}
	return f
}
