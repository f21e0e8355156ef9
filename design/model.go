// Package design defines validated in-memory representation of a design
// tree. Values here are resolved once from the raw API payload (see Import),
// absent attributes are nil pointers or documented zero values and never
// need to be re-checked against the wire format.
package design

//go:generate go tool go-enum --nocase --names

// Kind tells what markup node should be produced for a design node. Frames,
// groups, components and anything else with children are containers.
// ENUM(container, text)
type Kind int

// LayoutMode is the flow axis of a container.
// ENUM(none, horizontal, vertical)
type LayoutMode int

// Sizing is a per axis sizing mode of a flow container.
// ENUM(unset, fixed, auto)
type Sizing int

// Align is alignment of items along one of the axes.
// ENUM(unset, min, center, max, space_between, baseline, unknown)
type Align int

// PaintKind is type of fill or stroke layer.
// ENUM(other, solid, gradient_linear, gradient_radial)
type PaintKind int

// EffectKind is type of visual effect.
// ENUM(other, drop_shadow, inner_shadow)
type EffectKind int

// TextAlign is horizontal alignment of text.
// ENUM(unset, left, right, center, justified)
type TextAlign int

// Box is an axis aligned rectangle in absolute document space, y grows down.
type Box struct {
	X, Y, Width, Height float64
}

type Point struct {
	X, Y float64
}

// Color components are in [0, 1], A defaults to 1 when not specified.
type Color struct {
	R, G, B, A float64
}

type GradientStop struct {
	Position float64
	Color    Color
}

// Paint is a single fill or stroke layer.
type Paint struct {
	Kind    PaintKind
	Visible bool
	Opacity float64
	Color   *Color
	Stops   []GradientStop
	Handles []Point
}

type Effect struct {
	Kind    EffectKind
	Visible bool
	Offset  Point
	Radius  float64
	Spread  float64
	Color   *Color
}

type Padding struct {
	Top, Right, Bottom, Left float64
}

// Layout describes node as a flow container.
type Layout struct {
	Mode          LayoutMode
	PrimarySizing Sizing
	CounterSizing Sizing
	PrimaryAlign  Align
	CounterAlign  Align
	ItemSpacing   float64
	Padding       Padding
}

// HasFlow reports whether node lays out its children as a flexible box.
func (l Layout) HasFlow() bool {
	return l.Mode != LayoutModeNone
}

// ChildLayout is meaningful only for nodes inside of a flow container.
type ChildLayout struct {
	Grow    float64
	Stretch bool
}

type TextStyle struct {
	FontFamily    string
	FontWeight    float64
	FontSize      float64
	LetterSpacing *float64
	LineHeight    *float64 // in pixels
	Align         TextAlign
}

type Text struct {
	Characters string
	Style      *TextStyle
}

// Node is a single design node.
type Node struct {
	ID   string
	Name string
	Type string // original node type, informational
	Kind Kind

	Box *Box

	Layout Layout
	Child  ChildLayout

	Fills        []Paint
	Strokes      []Paint
	StrokeWeight *float64
	Corners      *[4]float64 // top-left, top-right, bottom-right, bottom-left
	CornerRadius *float64
	Effects      []Effect
	Opacity      float64
	ClipsContent bool

	Text *Text

	Children []*Node
}

// Walk visits node and all its descendants depth first, pre-order. Returning
// false from fn skips children of the visited node.
func (n *Node) Walk(fn func(n *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Count returns number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) bool {
		count++
		return true
	})
	return count
}
