package html

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"figc/css"
	"figc/design"
)

// defaultShadowColor is used for shadows without color.
const defaultShadowColor = "rgba(0,0,0,0.25)"

// num formats number the shortest way which round-trips, so 16 is "16" and
// 1.5 is "1.5".
func num(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return num(v) + "px"
}

func channel(v float64) int {
	return int(math.Round(v * 255))
}

// rgba renders color multiplying its alpha by additional opacity.
func rgba(c design.Color, opacity float64) string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", channel(c.R), channel(c.G), channel(c.B), strconv.FormatFloat(c.A*opacity, 'f', 3, 64))
}

func visible(p design.Paint, _ int) bool {
	return p.Visible
}

func visibleSolid(p design.Paint) bool {
	return p.Visible && p.Kind == design.PaintKindSolid
}

// background returns value for background declaration. Only first visible
// fill is considered, layers are not composited.
func background(n *design.Node) (string, bool) {
	fills := lo.Filter(n.Fills, visible)
	if len(fills) == 0 {
		return "", false
	}

	fill := fills[0]
	switch fill.Kind {
	case design.PaintKindSolid:
		if fill.Color != nil {
			return rgba(*fill.Color, fill.Opacity), true
		}
	case design.PaintKindGradientLinear, design.PaintKindGradientRadial:
		if n.Box != nil {
			return gradient(fill)
		}
	}
	return "", false
}

// gradient renders linear or radial gradient. Radial gradients are always
// centered circles, handle geometry is ignored for them.
func gradient(p design.Paint) (string, bool) {
	if len(p.Handles) < 2 || len(p.Stops) == 0 {
		return "", false
	}

	stops := strings.Join(lo.Map(p.Stops, func(s design.GradientStop, _ int) string {
		return rgba(s.Color, 1) + " " + strconv.FormatFloat(s.Position*100, 'f', 1, 64) + "%"
	}), ", ")

	switch p.Kind {
	case design.PaintKindGradientLinear:
		start, end := p.Handles[0], p.Handles[1]
		angle := math.Atan2(end.Y-start.Y, end.X-start.X)*(180/math.Pi) + 90
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", strconv.FormatFloat(angle, 'f', 1, 64), stops), true
	case design.PaintKindGradientRadial:
		return fmt.Sprintf("radial-gradient(circle, %s)", stops), true
	}
	return "", false
}

// textColor is color of the first visible solid fill.
func textColor(n *design.Node) (string, bool) {
	fill, ok := lo.Find(n.Fills, visibleSolid)
	if !ok || fill.Color == nil {
		return "", false
	}
	return rgba(*fill.Color, fill.Opacity), true
}

// border uses first visible solid stroke, stroke weight is shared by all
// strokes of the node.
func border(n *design.Node) (string, bool) {
	stroke, ok := lo.Find(n.Strokes, visibleSolid)
	if !ok || n.StrokeWeight == nil || *n.StrokeWeight == 0 {
		return "", false
	}
	color := "#000"
	if stroke.Color != nil {
		color = rgba(*stroke.Color, stroke.Opacity)
	}
	return fmt.Sprintf("%s solid %s", px(*n.StrokeWeight), color), true
}

func borderRadius(n *design.Node) (string, bool) {
	if n.Corners != nil {
		tl, tr, br, bl := n.Corners[0], n.Corners[1], n.Corners[2], n.Corners[3]
		if tl == tr && tr == br && br == bl {
			return px(tl), true
		}
		return strings.Join([]string{px(tl), px(tr), px(br), px(bl)}, " "), true
	}
	if n.CornerRadius != nil && *n.CornerRadius != 0 {
		return px(*n.CornerRadius), true
	}
	return "", false
}

func boxShadow(effects []design.Effect) (string, bool) {
	shadows := lo.FilterMap(effects, func(e design.Effect, _ int) (string, bool) {
		if !e.Visible || (e.Kind != design.EffectKindDropShadow && e.Kind != design.EffectKindInnerShadow) {
			return "", false
		}
		color := defaultShadowColor
		if e.Color != nil {
			color = rgba(*e.Color, 1)
		}
		inset := ""
		if e.Kind == design.EffectKindInnerShadow {
			inset = "inset "
		}
		return fmt.Sprintf("%s%s %s %s %s %s", inset, px(e.Offset.X), px(e.Offset.Y), px(e.Radius), px(e.Spread), color), true
	})
	if len(shadows) == 0 {
		return "", false
	}
	return strings.Join(shadows, ", "), true
}

// serifFamilies lists well known serif faces which do not say so in their
// names.
var serifFamilies = map[string]bool{
	"georgia":           true,
	"times":             true,
	"times new roman":   true,
	"garamond":          true,
	"eb garamond":       true,
	"cormorant":         true,
	"merriweather":      true,
	"playfair display":  true,
	"lora":              true,
	"libre baskerville": true,
	"baskerville":       true,
	"crimson text":      true,
	"crimson pro":       true,
	"bodoni moda":       true,
	"spectral":          true,
	"cardo":             true,
	"palatino":          true,
	"cambria":           true,
}

// genericFamily selects fallback generic family for the font.
func genericFamily(family string) string {
	name := strings.ToLower(strings.TrimSpace(family))
	if strings.Contains(name, "sans") {
		return "sans-serif"
	}
	if strings.Contains(name, "serif") || serifFamilies[name] {
		return "serif"
	}
	for prefix := range serifFamilies {
		if strings.HasPrefix(name, prefix+" ") {
			return "serif"
		}
	}
	return "sans-serif"
}

func textAlign(a design.TextAlign) (string, bool) {
	switch a {
	case design.TextAlignLeft:
		return "left", true
	case design.TextAlignRight:
		return "right", true
	case design.TextAlignCenter:
		return "center", true
	case design.TextAlignJustified:
		// "justified" is not a CSS keyword
		return "justify", true
	}
	return "", false
}

// typography produces font related declarations of a text leaf.
func typography(s *design.TextStyle) css.Declarations {
	var decls css.Declarations
	if s == nil {
		return decls
	}
	if s.FontFamily != "" {
		decls.Set("font-family", css.Quote(s.FontFamily)+", "+genericFamily(s.FontFamily))
	}
	if s.FontWeight != 0 {
		decls.Set("font-weight", num(s.FontWeight))
	}
	if s.FontSize != 0 {
		decls.Set("font-size", px(s.FontSize))
	}
	if s.LetterSpacing != nil && *s.LetterSpacing != 0 {
		decls.Set("letter-spacing", px(*s.LetterSpacing))
	}
	if s.LineHeight != nil && *s.LineHeight != 0 {
		decls.Set("line-height", px(*s.LineHeight))
	}
	if align, ok := textAlign(s.Align); ok {
		decls.Set("text-align", align)
	}
	return decls
}

// appearance produces paint and effect declarations of a container.
func appearance(n *design.Node) css.Declarations {
	var decls css.Declarations
	if bg, ok := background(n); ok {
		decls.Set("background", bg)
	}
	if b, ok := border(n); ok {
		decls.Set("border", b)
		// border must not change outer size of the box
		decls.Set("box-sizing", "border-box")
	}
	if r, ok := borderRadius(n); ok {
		decls.Set("border-radius", r)
	}
	if sh, ok := boxShadow(n.Effects); ok {
		decls.Set("box-shadow", sh)
	}
	return decls
}
