package html

import (
	"figc/css"
	"figc/design"
)

func flexAlign(a design.Align) string {
	switch a {
	case design.AlignCenter:
		return "center"
	case design.AlignMax:
		return "flex-end"
	case design.AlignSpaceBetween:
		return "space-between"
	default:
		return "flex-start"
	}
}

// layoutDeclarations computes flex container, flex item and sizing
// declarations for a container. isChild is set when node is iterated from the
// child list of a flow container. Positioning is decided by the caller.
func layoutDeclarations(n *design.Node, isChild bool) css.Declarations {
	var decls css.Declarations

	l := n.Layout
	if l.HasFlow() {
		decls.Set("display", "flex")
		if l.Mode == design.LayoutModeHorizontal {
			decls.Set("flex-direction", "row")
		} else {
			decls.Set("flex-direction", "column")
		}
		if l.PrimaryAlign != design.AlignUnset {
			decls.Set("justify-content", flexAlign(l.PrimaryAlign))
		}
		if l.CounterAlign != design.AlignUnset {
			decls.Set("align-items", flexAlign(l.CounterAlign))
		}
		if l.ItemSpacing != 0 {
			decls.Set("gap", px(l.ItemSpacing))
		}
		for _, p := range []struct {
			property string
			value    float64
		}{
			{"padding-left", l.Padding.Left},
			{"padding-right", l.Padding.Right},
			{"padding-top", l.Padding.Top},
			{"padding-bottom", l.Padding.Bottom},
		} {
			if p.value != 0 {
				decls.Set(p.property, px(p.value))
			}
		}
	}

	decls.Merge(flowItemDeclarations(n, isChild))

	if b := n.Box; b != nil {
		width, height := px(b.Width), px(b.Height)

		switch {
		case l.PrimarySizing == design.SizingFixed:
			switch l.Mode {
			case design.LayoutModeHorizontal:
				decls.Set("width", width)
			case design.LayoutModeVertical:
				decls.Set("height", height)
			default:
				decls.Set("width", width)
				decls.Set("height", height)
			}
		case !l.HasFlow():
			decls.Set("width", width)
			decls.Set("height", height)
		}

		if l.CounterSizing == design.SizingFixed {
			switch l.Mode {
			case design.LayoutModeHorizontal:
				decls.Set("height", height)
			case design.LayoutModeVertical:
				decls.Set("width", width)
			}
		}

		// every box outside of a flow must have defined size
		if !isChild && !l.HasFlow() {
			decls.Set("width", width)
			decls.Set("height", height)
		}
	}

	if n.ClipsContent {
		decls.Set("overflow", "hidden")
	}
	decls.Merge(opacityDeclarations(n))

	return decls
}

// flowItemDeclarations are emitted for direct children of flow containers
// only, regardless of node own layout.
func flowItemDeclarations(n *design.Node, isChild bool) css.Declarations {
	var decls css.Declarations
	if !isChild {
		return decls
	}
	if n.Child.Grow != 0 {
		decls.Set("flex-grow", num(n.Child.Grow))
	}
	if n.Child.Stretch {
		decls.Set("align-self", "stretch")
	}
	return decls
}

func opacityDeclarations(n *design.Node) css.Declarations {
	var decls css.Declarations
	if n.Opacity < 1 {
		decls.Set("opacity", num(n.Opacity))
	}
	return decls
}
