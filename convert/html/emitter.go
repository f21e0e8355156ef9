package html

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"figc/css"
	"figc/design"
)

const classPrefix = "figma-"

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeText makes literal text safe to be placed into markup.
func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// emitter holds state of a single traversal. It is never reused.
type emitter struct {
	counter int
	rules   []css.Rule
	fonts   map[string]struct{}
	fold    cases.Caser
	out     strings.Builder
}

func newEmitter() *emitter {
	return &emitter{
		fonts: make(map[string]struct{}),
		fold:  cases.Fold(),
	}
}

// className derives unique class name from node name.
func (e *emitter) className(name string) string {
	safe := strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return r
		}
		return '-'
	}, name)
	class := fmt.Sprintf("%s%s-%d", classPrefix, e.fold.String(safe), e.counter)
	e.counter++
	return class
}

func (e *emitter) addRule(class string, decls css.Declarations) {
	e.rules = append(e.rules, css.Rule{Selector: "." + class, Declarations: decls})
}

// position returns absolute positioning declarations when node has to be
// taken out of flow.
func position(n *design.Node, parentHasLayout, isRoot bool, parent *design.Point) (css.Declarations, bool) {
	var decls css.Declarations
	if parentHasLayout || isRoot || parent == nil || n.Box == nil {
		return decls, false
	}
	decls.Set("position", "absolute")
	decls.Set("left", px(n.Box.X-parent.X))
	decls.Set("top", px(n.Box.Y-parent.Y))
	return decls, true
}

// centerRoot makes root relatively positioned and horizontally centered
// whatever was decided before.
func centerRoot(decls *css.Declarations) {
	decls.Delete("position")
	decls.Set("margin", "0 auto")
	decls.Set("position", "relative")
}

func (e *emitter) node(n *design.Node, parentHasLayout, isRoot bool, parent *design.Point) {
	if n.Kind == design.KindText {
		e.text(n, parentHasLayout, isRoot, parent)
		return
	}
	e.container(n, parentHasLayout, isRoot, parent)
}

func (e *emitter) container(n *design.Node, parentHasLayout, isRoot bool, parent *design.Point) {
	class := e.className(n.Name)

	decls, absolute := position(n, parentHasLayout, isRoot, parent)
	if !absolute && !n.Layout.HasFlow() && !isRoot && !parentHasLayout {
		// so absolutely positioned descendants resolve against this box
		decls.Set("position", "relative")
	}
	decls.Merge(layoutDeclarations(n, parentHasLayout))
	if isRoot {
		centerRoot(&decls)
	}
	decls.Merge(appearance(n))
	e.addRule(class, decls)

	var childOrigin *design.Point
	if n.Box != nil {
		childOrigin = &design.Point{X: n.Box.X, Y: n.Box.Y}
	}

	fmt.Fprintf(&e.out, `<div class="%s">`, class)
	for _, c := range n.Children {
		e.node(c, n.Layout.HasFlow(), false, childOrigin)
	}
	e.out.WriteString("</div>")
}

func (e *emitter) text(n *design.Node, parentHasLayout, isRoot bool, parent *design.Point) {
	class := e.className(n.Name)

	decls, absolute := position(n, parentHasLayout, isRoot, parent)
	if absolute {
		decls.Set("width", px(n.Box.Width))
	}

	var characters string
	if t := n.Text; t != nil {
		characters = t.Characters
		decls.Merge(typography(t.Style))
		if t.Style != nil && t.Style.FontFamily != "" {
			e.fonts[t.Style.FontFamily] = struct{}{}
		}
	}
	if color, ok := textColor(n); ok {
		decls.Set("color", color)
	}
	decls.Merge(opacityDeclarations(n))
	decls.Merge(flowItemDeclarations(n, parentHasLayout))
	if isRoot {
		centerRoot(&decls)
	}
	e.addRule(class, decls)

	fmt.Fprintf(&e.out, `<div class="%s">%s</div>`, class, escapeText(characters))
}
