package design

import (
	"github.com/samber/lo"

	"figc/figma"
)

// Import converts raw API node tree into validated model. All presence checks
// and defaults are resolved here.
func Import(raw *figma.Node) *Node {
	if raw == nil {
		return nil
	}

	n := &Node{
		ID:           raw.ID,
		Name:         raw.Name,
		Type:         raw.Type,
		Kind:         parseOr(ParseKind, raw.Type, KindContainer),
		Layout:       importLayout(raw),
		Child:        importChildLayout(raw),
		Fills:        lo.Map(raw.Fills, func(p figma.Paint, _ int) Paint { return importPaint(p) }),
		Strokes:      lo.Map(raw.Strokes, func(p figma.Paint, _ int) Paint { return importPaint(p) }),
		StrokeWeight: raw.StrokeWeight,
		CornerRadius: raw.CornerRadius,
		Effects:      lo.Map(raw.Effects, func(e figma.Effect, _ int) Effect { return importEffect(e) }),
		Opacity:      lo.FromPtrOr(raw.Opacity, 1),
		ClipsContent: lo.FromPtr(raw.ClipsContent),
	}

	if b := raw.AbsoluteBoundingBox; b != nil {
		n.Box = &Box{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	if len(raw.RectangleCornerRadii) == 4 {
		var corners [4]float64
		copy(corners[:], raw.RectangleCornerRadii)
		n.Corners = &corners
	}

	if n.Kind == KindText {
		n.Text = &Text{Characters: raw.Characters}
		if s := raw.Style; s != nil {
			n.Text.Style = &TextStyle{
				FontFamily:    s.FontFamily,
				FontWeight:    lo.FromPtr(s.FontWeight),
				FontSize:      lo.FromPtr(s.FontSize),
				LetterSpacing: s.LetterSpacing,
				LineHeight:    s.LineHeightPx,
				Align:         parseOr(ParseTextAlign, s.TextAlignHorizontal, TextAlignUnset),
			}
		}
		// text leaves never have children
		return n
	}

	for _, c := range raw.Children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, Import(c))
	}
	return n
}

func importLayout(raw *figma.Node) Layout {
	return Layout{
		Mode:          parseOr(ParseLayoutMode, raw.LayoutMode, LayoutModeNone),
		PrimarySizing: parseOr(ParseSizing, raw.PrimaryAxisSizingMode, SizingUnset),
		CounterSizing: parseOr(ParseSizing, raw.CounterAxisSizingMode, SizingUnset),
		PrimaryAlign:  parseAlign(raw.PrimaryAxisAlignItems),
		CounterAlign:  parseAlign(raw.CounterAxisAlignItems),
		ItemSpacing:   lo.FromPtr(raw.ItemSpacing),
		Padding: Padding{
			Top:    lo.FromPtr(raw.PaddingTop),
			Right:  lo.FromPtr(raw.PaddingRight),
			Bottom: lo.FromPtr(raw.PaddingBottom),
			Left:   lo.FromPtr(raw.PaddingLeft),
		},
	}
}

func importChildLayout(raw *figma.Node) ChildLayout {
	return ChildLayout{
		Grow:    lo.FromPtr(raw.LayoutGrow),
		Stretch: raw.LayoutAlign == "STRETCH",
	}
}

func importColor(c *figma.Color) *Color {
	if c == nil {
		return nil
	}
	return &Color{R: c.R, G: c.G, B: c.B, A: lo.FromPtrOr(c.A, 1)}
}

func importPaint(p figma.Paint) Paint {
	paint := Paint{
		Kind:    parseOr(ParsePaintKind, p.Type, PaintKindOther),
		Visible: lo.FromPtrOr(p.Visible, true),
		Opacity: lo.FromPtrOr(p.Opacity, 1),
		Color:   importColor(p.Color),
	}
	for _, s := range p.GradientStops {
		paint.Stops = append(paint.Stops, GradientStop{Position: s.Position, Color: *importColor(&s.Color)})
	}
	for _, h := range p.GradientHandlePositions {
		paint.Handles = append(paint.Handles, Point{X: h.X, Y: h.Y})
	}
	return paint
}

func importEffect(e figma.Effect) Effect {
	effect := Effect{
		Kind:    parseOr(ParseEffectKind, e.Type, EffectKindOther),
		Visible: lo.FromPtrOr(e.Visible, true),
		Radius:  lo.FromPtr(e.Radius),
		Spread:  lo.FromPtr(e.Spread),
		Color:   importColor(e.Color),
	}
	if e.Offset != nil {
		effect.Offset = Point{X: e.Offset.X, Y: e.Offset.Y}
	}
	return effect
}

// parseOr returns parsed wire value or fallback when value is not a known
// one. Wire values are upper case, parsing ignores case.
func parseOr[T any](parse func(string) (T, error), s string, fallback T) T {
	if v, err := parse(s); err == nil {
		return v
	}
	return fallback
}

func parseAlign(s string) Align {
	if len(s) == 0 {
		return AlignUnset
	}
	return parseOr(ParseAlign, s, AlignUnknown)
}
