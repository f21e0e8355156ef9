// Package html renders design tree as a standalone HTML document with
// embedded stylesheet. Every call to Generate is independent and may run
// concurrently with others.
package html

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/maruel/natural"
	"github.com/samber/lo"

	"figc/css"
	"figc/design"
)

const (
	DefaultTitle    = "Figma Design"
	DefaultFontsURL = "https://fonts.googleapis.com/css2"
)

var DefaultFontWeights = []int{300, 400, 500, 600, 700}

// Options controls document assembly. Zero value produces document without
// font imports and with default title.
type Options struct {
	Title       string
	Fonts       bool   // import used font families from FontsURL
	FontsURL    string // css2 endpoint of the web font provider
	FontWeights []int
	// Extra is appended after generated rules.
	Extra *css.Stylesheet
}

// DefaultOptions returns options reproducing stock output.
func DefaultOptions() Options {
	return Options{
		Title:       DefaultTitle,
		Fonts:       true,
		FontsURL:    DefaultFontsURL,
		FontWeights: slices.Clone(DefaultFontWeights),
	}
}

// Result is a produced document with some statistics.
type Result struct {
	HTML  string
	Rules int      // number of emitted per-node rules
	Fonts []string // font families used by text, sorted
}

// Generate converts tree rooted at root into HTML document.
func Generate(root *design.Node, opts Options) (*Result, error) {
	if root == nil {
		return nil, errors.New("nothing to generate, root node is nil")
	}

	e := newEmitter()
	e.node(root, false, true, nil)

	fonts := make([]string, 0, len(e.fonts))
	for f := range e.fonts {
		fonts = append(fonts, f)
	}
	slices.SortFunc(fonts, func(a, b string) int {
		switch {
		case natural.Less(a, b):
			return -1
		case natural.Less(b, a):
			return 1
		}
		return 0
	})

	sheet := &css.Stylesheet{}
	if opts.Fonts {
		for _, f := range fonts {
			sheet.AddImport(fontImportURL(opts.FontsURL, f, opts.FontWeights))
		}
	}
	addBaseRules(sheet)
	for _, r := range e.rules {
		sheet.AddRule(r.Selector, r.Declarations)
	}
	sheet.Append(opts.Extra)

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}

	return &Result{
		HTML:  document(title, sheet.String(), e.out.String()),
		Rules: len(e.rules),
		Fonts: fonts,
	}, nil
}

func fontImportURL(base, family string, weights []int) string {
	if base == "" {
		base = DefaultFontsURL
	}
	if len(weights) == 0 {
		weights = DefaultFontWeights
	}
	return fmt.Sprintf("%s?family=%s:wght@%s&display=swap",
		base,
		url.QueryEscape(family),
		strings.Join(lo.Map(weights, func(w int, _ int) string { return strconv.Itoa(w) }), ";"),
	)
}

func addBaseRules(sheet *css.Stylesheet) {
	sheet.AddRule("*", css.Declarations{
		{Property: "margin", Value: "0"},
		{Property: "padding", Value: "0"},
		{Property: "box-sizing", Value: "border-box"},
	})
	sheet.AddRule("body", css.Declarations{
		{Property: "font-family", Value: `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`},
		{Property: "background", Value: "#2b2d31"},
		{Property: "min-height", Value: "100vh"},
		{Property: "display", Value: "flex"},
		{Property: "align-items", Value: "center"},
		{Property: "justify-content", Value: "center"},
	})
}

func document(title, stylesheet, markup string) string {
	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n")
	sb.WriteString("<html lang=\"en\">\n")
	sb.WriteString("<head>\n")
	sb.WriteString("  <meta charset=\"UTF-8\">\n")
	sb.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	sb.WriteString("  <title>" + escapeText(title) + "</title>\n")
	sb.WriteString("  <style>\n")
	sb.WriteString(stylesheet)
	sb.WriteString("  </style>\n")
	sb.WriteString("</head>\n")
	sb.WriteString("<body>\n")
	sb.WriteString(markup)
	sb.WriteString("\n</body>\n")
	sb.WriteString("</html>\n")
	return sb.String()
}
