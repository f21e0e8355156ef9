package html

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"figc/css"
	"figc/design"
)

func sampleTree() *design.Node {
	title := text("Title", "Welcome & enjoy", &design.TextStyle{FontFamily: "Playfair Display", FontWeight: 700, FontSize: 32})
	body := text("Body", "Lorem ipsum", &design.TextStyle{FontFamily: "Inter", FontWeight: 400, FontSize: 16})
	caption := text("Caption", "small", &design.TextStyle{FontFamily: "Inter", FontSize: 12})

	card := frame("Card", &design.Box{X: 0, Y: 0, Width: 400, Height: 300}, title, body, caption)
	card.Layout = design.Layout{
		Mode:          design.LayoutModeVertical,
		PrimarySizing: design.SizingFixed,
		CounterSizing: design.SizingFixed,
		CounterAlign:  design.AlignMin,
		ItemSpacing:   12,
		Padding:       design.Padding{Top: 24, Right: 24, Bottom: 24, Left: 24},
	}
	card.Fills = []design.Paint{solid(1, 1, 1, 1)}
	return card
}

func collect(n *nethtml.Node, a atom.Atom, out []*nethtml.Node) []*nethtml.Node {
	if n.Type == nethtml.ElementNode && n.DataAtom == a {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = collect(c, a, out)
	}
	return out
}

func TestGenerateNilRoot(t *testing.T) {
	_, err := Generate(nil, DefaultOptions())
	assert.Error(t, err)
}

func TestGenerateDocument(t *testing.T) {
	res, err := Generate(sampleTree(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, res.Rules)
	assert.Equal(t, []string{"Inter", "Playfair Display"}, res.Fonts)

	assert.True(t, strings.HasPrefix(res.HTML, "<!DOCTYPE html>\n<html lang=\"en\">\n"))
	assert.Contains(t, res.HTML, `<meta charset="UTF-8">`)
	assert.Contains(t, res.HTML, `<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	assert.Contains(t, res.HTML, "<title>Figma Design</title>")
	assert.Contains(t, res.HTML, `@import url("https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap");`)
	assert.Contains(t, res.HTML, `@import url("https://fonts.googleapis.com/css2?family=Playfair+Display:wght@300;400;500;600;700&display=swap");`)
	assert.Contains(t, res.HTML, "* {\n  margin: 0;\n  padding: 0;\n  box-sizing: border-box;\n}\n")
	assert.Contains(t, res.HTML, "body {\n  font-family: -apple-system, BlinkMacSystemFont, \"Segoe UI\", Roboto, sans-serif;\n  background: #2b2d31;\n")
	assert.Contains(t, res.HTML, `font-family: "Playfair Display", serif;`)

	// imports come first, then base rules, then node rules
	imp := strings.Index(res.HTML, "@import")
	reset := strings.Index(res.HTML, "* {")
	first := strings.Index(res.HTML, ".figma-card-0 {")
	require.True(t, imp >= 0 && reset >= 0 && first >= 0)
	assert.Less(t, imp, reset)
	assert.Less(t, reset, first)

	doc, err := nethtml.Parse(strings.NewReader(res.HTML))
	require.NoError(t, err)

	divs := collect(doc, atom.Div, nil)
	require.Len(t, divs, 4)
	classes := make(map[string]bool)
	for _, d := range divs {
		for _, a := range d.Attr {
			if a.Key == "class" {
				classes[a.Val] = true
			}
		}
	}
	assert.Len(t, classes, 4)

	// text content survives escaping round trip
	assert.Equal(t, "Welcome & enjoy", divs[1].FirstChild.Data)
	assert.Contains(t, res.HTML, "Welcome &amp; enjoy")

	styles := collect(doc, atom.Style, nil)
	require.Len(t, styles, 1)
}

func TestGenerateIsIdempotent(t *testing.T) {
	root := sampleTree()
	first, err := Generate(root, DefaultOptions())
	require.NoError(t, err)
	second, err := Generate(root, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first.HTML, second.HTML)
}

func TestGenerateOptions(t *testing.T) {
	extra := &css.Stylesheet{}
	extra.AddImport("https://example.com/brand.css")
	extra.AddRule(".figma-card-0", css.Declarations{{Property: "outline", Value: "1px dashed red"}})

	res, err := Generate(sampleTree(), Options{
		Title:       `Landing <v2>`,
		Fonts:       true,
		FontsURL:    "https://fonts.example.com/css2",
		FontWeights: []int{400, 700},
		Extra:       extra,
	})
	require.NoError(t, err)

	assert.Contains(t, res.HTML, "<title>Landing &lt;v2&gt;</title>")
	assert.Contains(t, res.HTML, `@import url("https://fonts.example.com/css2?family=Inter:wght@400;700&display=swap");`)

	// user imports must stay before any rule
	brand := strings.Index(res.HTML, "brand.css")
	reset := strings.Index(res.HTML, "* {")
	assert.Less(t, brand, reset)

	// user rules come last
	assert.Greater(t, strings.LastIndex(res.HTML, "outline: 1px dashed red;"), strings.LastIndex(res.HTML, ".figma-caption-3 {"))
}

func TestGenerateWithoutFonts(t *testing.T) {
	res, err := Generate(sampleTree(), Options{})
	require.NoError(t, err)
	assert.NotContains(t, res.HTML, "@import")
	assert.Contains(t, res.HTML, "<title>Figma Design</title>")
	assert.Equal(t, []string{"Inter", "Playfair Display"}, res.Fonts)
}

func TestFontsNaturalOrder(t *testing.T) {
	root := frame("Root", nil,
		text("a", "a", &design.TextStyle{FontFamily: "Font 10"}),
		text("b", "b", &design.TextStyle{FontFamily: "Font 2"}),
		text("c", "c", &design.TextStyle{FontFamily: "Font 2"}),
		text("d", "d", &design.TextStyle{FontFamily: "Alpha"}),
	)

	res, err := Generate(root, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "Font 2", "Font 10"}, res.Fonts)
	assert.Equal(t, 1, strings.Count(res.HTML, "family=Font+2:"))
}

func TestFontFamilyStaysInsideStyle(t *testing.T) {
	family := `Evil</style><script>alert(1)</script> & Co`
	root := frame("Root", nil, text("t", "x", &design.TextStyle{FontFamily: family, FontSize: 10}))

	res, err := Generate(root, DefaultOptions())
	require.NoError(t, err)

	assert.NotContains(t, res.HTML, "</style><script>")
	assert.Contains(t, res.HTML, `font-family: "Evil\3c /style>\3c script>alert(1)\3c /script> & Co", sans-serif;`)
	assert.Contains(t, res.HTML, "family=Evil%3C%2Fstyle%3E%3Cscript%3Ealert%281%29%3C%2Fscript%3E+%26+Co:wght@")

	doc, err := nethtml.Parse(strings.NewReader(res.HTML))
	require.NoError(t, err)
	assert.Len(t, collect(doc, atom.Style, nil), 1)
	assert.Empty(t, collect(doc, atom.Script, nil))
}
