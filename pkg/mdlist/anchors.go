package mdlist

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Anchors is the set of in-page link targets generated by a document's headings.
type Anchors struct {
	ids   map[string]struct{}
	seen  map[string]int
	order []string
}

func newAnchors() *Anchors {
	return &Anchors{
		ids:  make(map[string]struct{}),
		seen: make(map[string]int),
	}
}

// add registers the anchor for a heading, suffixing repeats with -1, -2, ...
func (a *Anchors) add(headingText string) string {
	base := Slug(headingText)

	id := base
	if count := a.seen[base]; count > 0 {
		id = base + "-" + strconv.Itoa(count)
	}
	a.seen[base]++

	a.ids[id] = struct{}{}
	a.order = append(a.order, id)
	return id
}

// Has reports whether id is the anchor of some heading.
func (a *Anchors) Has(id string) bool {
	_, ok := a.ids[id]
	return ok
}

// IDs returns every anchor in document order.
func (a *Anchors) IDs() []string {
	return append([]string(nil), a.order...)
}

// Len returns the number of anchors.
func (a *Anchors) Len() int {
	return len(a.order)
}

// HeadingAnchors parses source and returns the anchors its headings produce.
// Both ATX and setext headings of any level are included.
func HeadingAnchors(source []byte) *Anchors {
	anchors := newAnchors()

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	_ = ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if _, ok := node.(*ast.Heading); !ok {
			return ast.WalkContinue, nil
		}

		var buf strings.Builder
		writePlainText(&buf, node, source)
		anchors.add(buf.String())

		return ast.WalkSkipChildren, nil
	})

	return anchors
}

// writePlainText appends the visible text of node's inline children.
func writePlainText(buf *strings.Builder, node ast.Node, source []byte) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch inline := child.(type) {
		case *ast.Text:
			buf.Write(inline.Segment.Value(source))
			if inline.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(inline.Value)
		case *ast.AutoLink:
			buf.Write(inline.Label(source))
		case *ast.RawHTML:
			// Markup contributes nothing to the anchor.
		default:
			writePlainText(buf, child, source)
		}
	}
}

// Slug converts heading text to the anchor GitHub generates for it: lowercase,
// punctuation dropped, each space replaced by a hyphen. Runs of hyphens are kept
// as they are, so "Tools & Libraries" becomes "tools--libraries".
func Slug(headingText string) string {
	var buf strings.Builder
	buf.Grow(len(headingText))

	for _, ch := range strings.ToLower(strings.TrimSpace(headingText)) {
		switch {
		case unicode.IsLetter(ch), unicode.IsNumber(ch), unicode.IsMark(ch):
			buf.WriteRune(ch)
		case ch == '-', ch == '_':
			buf.WriteRune(ch)
		case ch == ' ':
			buf.WriteByte('-')
		}
	}

	return buf.String()
}
