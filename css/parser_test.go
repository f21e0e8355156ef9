package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"figc/css"
)

const brandCSS = `
@import url("https://fonts.example.com/brand.css");
@import 'local.css';

/* card tweaks */
.figma-card-0 {
  outline: 1px dashed red;
  font-family: "Brand Sans", sans-serif;
  --accent: #ff0066;
}

h1, h2 > span { letter-spacing: 0.02em }

@media screen and (max-width: 600px) {
  .figma-card-0 { width: 100% }
  body { background: white }
}

@font-face {
  font-family: "Brand Sans";
  src: url(brand.woff2) format("woff2");
}

@keyframes spin { from { transform: rotate(0) } to { transform: rotate(360deg) } }

@charset "utf-8";
`

func TestParser_Parse(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(brandCSS), "brand.css")

	imports := sheet.Imports()
	if len(imports) != 2 {
		t.Fatalf("expected 2 imports, got %d: %v", len(imports), imports)
	}
	if imports[0] != "https://fonts.example.com/brand.css" || imports[1] != "local.css" {
		t.Errorf("unexpected imports: %v", imports)
	}

	rules := sheet.RulesBySelector(".figma-card-0")
	if len(rules) != 1 {
		t.Fatalf("expected one top level card rule, got %d", len(rules))
	}
	decls := rules[0].Declarations
	want := []css.Declaration{
		{Property: "outline", Value: "1px dashed red"},
		{Property: "font-family", Value: `"Brand Sans", sans-serif`},
		{Property: "--accent", Value: "#ff0066"},
	}
	if len(decls) != len(want) {
		t.Fatalf("expected %d declarations, got %d: %v", len(want), len(decls), decls)
	}
	for i := range want {
		if decls[i] != want[i] {
			t.Errorf("declaration %d: expected %v, got %v", i, want[i], decls[i])
		}
	}

	if got := sheet.RulesBySelector("h1, h2 > span"); len(got) != 1 {
		t.Errorf("expected compound selector rule, rules: %v", sheet.Rules())
	}

	var media *css.MediaBlock
	var fontFace *css.FontFace
	for _, item := range sheet.Items {
		if item.MediaBlock != nil {
			media = item.MediaBlock
		}
		if item.FontFace != nil {
			fontFace = item.FontFace
		}
	}
	if media == nil {
		t.Fatal("expected @media block")
	}
	if media.Query != "screen and (max-width:600px)" {
		t.Errorf("unexpected media query %q", media.Query)
	}
	if len(media.Rules) != 2 {
		t.Errorf("expected 2 rules in @media, got %d", len(media.Rules))
	}
	if fontFace == nil {
		t.Fatal("expected @font-face")
	}
	if v, ok := fontFace.Declarations.Get("font-family"); !ok || v != `"Brand Sans"` {
		t.Errorf("unexpected font-face family %q", v)
	}

	var keyframes, charset bool
	for _, w := range sheet.Warnings {
		keyframes = keyframes || strings.Contains(w, "@keyframes")
		charset = charset || strings.Contains(w, "@charset")
	}
	if !keyframes || !charset {
		t.Errorf("expected warnings for unsupported at-rules, got %v", sheet.Warnings)
	}
}

func TestParser_Empty(t *testing.T) {
	sheet := css.NewParser(nil).Parse(nil)
	if len(sheet.Items) != 0 || len(sheet.Warnings) != 0 {
		t.Errorf("expected empty stylesheet, got %+v", sheet)
	}
}

func TestParser_RoundTrip(t *testing.T) {
	p := css.NewParser(nil)
	first := p.Parse([]byte(brandCSS)).String()
	second := p.Parse([]byte(first)).String()
	if first != second {
		t.Errorf("serialized stylesheet is not stable:\n%s\n---\n%s", first, second)
	}
}

func TestParser_Separators(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(`
.card .title,.card>p{font-family:Inter,"Helvetica Neue" ,sans-serif;margin:0 auto}
ul li+li , a ~ b{color:red}
`))

	rules := sheet.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules, got %d: %v", len(rules), rules)
	}
	if rules[0].Selector != ".card .title, .card > p" {
		t.Errorf("unexpected selector %q", rules[0].Selector)
	}
	if v, _ := rules[0].Declarations.Get("font-family"); v != `Inter, "Helvetica Neue", sans-serif` {
		t.Errorf("unexpected font-family %q", v)
	}
	if v, _ := rules[0].Declarations.Get("margin"); v != "0 auto" {
		t.Errorf("unexpected margin %q", v)
	}
	if rules[1].Selector != "ul li + li, a ~ b" {
		t.Errorf("unexpected selector %q", rules[1].Selector)
	}
}
