package query

import (
	"bytes"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"

	"github.com/andaru/xmltok/scan"
	"github.com/andaru/xmltok/write"
)

// Capture drains r, serializing every event into an in-memory buffer,
// and parses the result into an xmlquery document node. It returns the
// first scan or parse error encountered.
func Capture(r *scan.Reader) (*xmlquery.Node, error) {
	if pdebug.Enabled {
		g := pdebug.Marker("query.Capture")
		defer g.End()
	}
	var buf bytes.Buffer
	w := write.NewWriter(&buf)
	for {
		ev, err := r.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err := w.WriteEvent(ev); err != nil {
			return nil, err
		}
	}
	doc, err := xmlquery.Parse(&buf)
	return doc, errors.WithStack(err)
}

// Document parses an XML document from src into an xmlquery node tree.
func Document(src io.Reader) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(src)
	return doc, errors.WithStack(err)
}

// Selector is a compiled XPath expression.
type Selector struct {
	expr *xpath.Expr
}

// Compile compiles the XPath expression s.
func Compile(s string) (*Selector, error) {
	expr, err := xpath.Compile(s)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling %q", s)
	}
	return &Selector{expr: expr}, nil
}

// MustCompile compiles the XPath expression s, panicking on error. It
// is intended for package-level selector variables.
func MustCompile(s string) *Selector {
	return &Selector{expr: xpath.MustCompile(s)}
}

// First returns the first node under n selected by the expression, or
// nil when nothing matches.
func (s *Selector) First(n *xmlquery.Node) *xmlquery.Node {
	return xmlquery.QuerySelector(n, s.expr)
}

// All returns every node under n selected by the expression.
func (s *Selector) All(n *xmlquery.Node) []*xmlquery.Node {
	return xmlquery.QuerySelectorAll(n, s.expr)
}

// Text returns the whitespace-trimmed inner text of the first node
// selected under n, or the empty string when nothing matches.
func (s *Selector) Text(n *xmlquery.Node) string {
	node := s.First(n)
	if node == nil {
		return ""
	}
	return strings.TrimSpace(node.InnerText())
}
