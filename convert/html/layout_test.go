package html

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"figc/css"
	"figc/design"
)

func TestFlexAlign(t *testing.T) {
	for a, want := range map[design.Align]string{
		design.AlignMin:          "flex-start",
		design.AlignCenter:       "center",
		design.AlignMax:          "flex-end",
		design.AlignSpaceBetween: "space-between",
		design.AlignBaseline:     "flex-start",
		design.AlignUnknown:      "flex-start",
	} {
		assert.Equal(t, want, flexAlign(a), "align %d", a)
	}
}

func TestFlexContainer(t *testing.T) {
	n := frame("Row", &design.Box{Width: 300, Height: 40})
	n.Layout = design.Layout{
		Mode:         design.LayoutModeHorizontal,
		PrimaryAlign: design.AlignSpaceBetween,
		CounterAlign: design.AlignCenter,
		ItemSpacing:  12,
		Padding:      design.Padding{Top: 4, Right: 8, Bottom: 0, Left: 8},
	}

	assert.Equal(t, css.Declarations{
		{Property: "display", Value: "flex"},
		{Property: "flex-direction", Value: "row"},
		{Property: "justify-content", Value: "space-between"},
		{Property: "align-items", Value: "center"},
		{Property: "gap", Value: "12px"},
		{Property: "padding-left", Value: "8px"},
		{Property: "padding-right", Value: "8px"},
		{Property: "padding-top", Value: "4px"},
	}, layoutDeclarations(n, true))
}

func TestSizing(t *testing.T) {
	box := &design.Box{Width: 200, Height: 100}
	tests := []struct {
		name    string
		layout  design.Layout
		isChild bool
		want    css.Declarations
	}{
		{
			name:    "horizontal fixed primary",
			layout:  design.Layout{Mode: design.LayoutModeHorizontal, PrimarySizing: design.SizingFixed},
			isChild: true,
			want:    css.Declarations{{Property: "width", Value: "200px"}},
		},
		{
			name:    "vertical fixed primary",
			layout:  design.Layout{Mode: design.LayoutModeVertical, PrimarySizing: design.SizingFixed},
			isChild: true,
			want:    css.Declarations{{Property: "height", Value: "100px"}},
		},
		{
			name:    "horizontal fixed counter",
			layout:  design.Layout{Mode: design.LayoutModeHorizontal, CounterSizing: design.SizingFixed},
			isChild: true,
			want:    css.Declarations{{Property: "height", Value: "100px"}},
		},
		{
			name:    "vertical both fixed",
			layout:  design.Layout{Mode: design.LayoutModeVertical, PrimarySizing: design.SizingFixed, CounterSizing: design.SizingFixed},
			isChild: true,
			want:    css.Declarations{{Property: "height", Value: "100px"}, {Property: "width", Value: "200px"}},
		},
		{
			name:    "auto flow",
			layout:  design.Layout{Mode: design.LayoutModeVertical, PrimarySizing: design.SizingAuto, CounterSizing: design.SizingAuto},
			isChild: false,
			want:    nil,
		},
		{
			name:    "no flow in flow",
			layout:  design.Layout{},
			isChild: true,
			want:    css.Declarations{{Property: "width", Value: "200px"}, {Property: "height", Value: "100px"}},
		},
		{
			name:    "no flow outside of flow",
			layout:  design.Layout{},
			isChild: false,
			want:    css.Declarations{{Property: "width", Value: "200px"}, {Property: "height", Value: "100px"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := frame("Box", box)
			n.Layout = tt.layout

			got := layoutDeclarations(n, tt.isChild)
			// flex container declarations are covered elsewhere
			var sizes css.Declarations
			for _, d := range got {
				if d.Property == "width" || d.Property == "height" {
					sizes = append(sizes, d)
				}
			}
			assert.Equal(t, tt.want, sizes)
		})
	}
}

func TestSizingWithoutBox(t *testing.T) {
	n := frame("Boxless", nil)
	n.Layout = design.Layout{Mode: design.LayoutModeHorizontal, PrimarySizing: design.SizingFixed}

	got := layoutDeclarations(n, false)
	assert.False(t, got.Has("width"))
	assert.False(t, got.Has("height"))
}

func TestFlowItem(t *testing.T) {
	n := frame("Item", nil)
	n.Child = design.ChildLayout{Grow: 1, Stretch: true}

	assert.Equal(t, css.Declarations{
		{Property: "flex-grow", Value: "1"},
		{Property: "align-self", Value: "stretch"},
	}, flowItemDeclarations(n, true))
	assert.Empty(t, flowItemDeclarations(n, false), "only flow children are flex items")
}

func TestClipAndOpacity(t *testing.T) {
	n := frame("Clip", nil)
	n.ClipsContent = true
	n.Opacity = 0.5

	assert.Equal(t, css.Declarations{
		{Property: "overflow", Value: "hidden"},
		{Property: "opacity", Value: "0.5"},
	}, layoutDeclarations(n, false))

	n.Opacity = 1
	assert.False(t, layoutDeclarations(n, false).Has("opacity"))
}
