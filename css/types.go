package css

import (
	"fmt"
	"io"
	"strings"
)

// cssEscapeDoubleQuoted escapes a string for use inside CSS double quotes.
// Backslashes and double quotes are escaped per CSS syntax: \" and \\.
// Line breaks and "<" are written as hex escapes, so the literal can not end
// an enclosing <style> element.
func cssEscapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, "\"\\<\n\r\f") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '<':
			b.WriteString(`\3c `)
		case '\n':
			b.WriteString(`\a `)
		case '\r':
			b.WriteString(`\d `)
		case '\f':
			b.WriteString(`\c `)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Quote returns s as CSS string literal in double quotes.
func Quote(s string) string {
	return `"` + cssEscapeDoubleQuoted(s) + `"`
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    string
}

// Declarations keeps property declarations in the order they were first set.
type Declarations []Declaration

// Set assigns value to property. Already present property keeps its place,
// new one is appended.
func (d *Declarations) Set(property, value string) {
	for i := range *d {
		if (*d)[i].Property == property {
			(*d)[i].Value = value
			return
		}
	}
	*d = append(*d, Declaration{Property: property, Value: value})
}

// Delete removes property if present.
func (d *Declarations) Delete(property string) {
	for i := range *d {
		if (*d)[i].Property == property {
			*d = append((*d)[:i], (*d)[i+1:]...)
			return
		}
	}
}

// Get returns value of the property.
func (d Declarations) Get(property string) (string, bool) {
	for _, decl := range d {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

func (d Declarations) Has(property string) bool {
	_, ok := d.Get(property)
	return ok
}

// Merge sets all declarations from other in their order.
func (d *Declarations) Merge(other Declarations) {
	for _, decl := range other {
		d.Set(decl.Property, decl.Value)
	}
}

// Rule represents a single CSS rule (selector + declarations).
type Rule struct {
	Selector     string
	Declarations Declarations
}

// FontFace represents an @font-face declaration.
type FontFace struct {
	Declarations Declarations
}

// MediaBlock represents a @media block with its query and nested rules.
type MediaBlock struct {
	Query string
	Rules []Rule
}

// StylesheetItem is a single top-level item in a stylesheet.
// Exactly one of Rule, MediaBlock, FontFace or Import is non-nil.
type StylesheetItem struct {
	Rule       *Rule
	MediaBlock *MediaBlock
	FontFace   *FontFace
	Import     *string
}

// Stylesheet represents CSS stylesheet as an ordered list of items.
type Stylesheet struct {
	Items    []StylesheetItem
	Warnings []string // Warnings for unsupported features
}

// AddImport appends @import with given URL.
func (s *Stylesheet) AddImport(url string) {
	s.Items = append(s.Items, StylesheetItem{Import: &url})
}

// AddRule appends a plain rule.
func (s *Stylesheet) AddRule(selector string, decls Declarations) {
	s.Items = append(s.Items, StylesheetItem{Rule: &Rule{Selector: selector, Declarations: decls}})
}

// Append adds all items of other stylesheet after already present ones.
// @import must precede everything else in CSS, so imports from other are
// placed after last import of s.
func (s *Stylesheet) Append(other *Stylesheet) {
	if other == nil {
		return
	}
	var imports, rest []StylesheetItem
	for _, item := range other.Items {
		if item.Import != nil {
			imports = append(imports, item)
		} else {
			rest = append(rest, item)
		}
	}
	if len(imports) > 0 {
		pos := 0
		for i, item := range s.Items {
			if item.Import != nil {
				pos = i + 1
			}
		}
		items := make([]StylesheetItem, 0, len(s.Items)+len(imports))
		items = append(items, s.Items[:pos]...)
		items = append(items, imports...)
		items = append(items, s.Items[pos:]...)
		s.Items = items
	}
	s.Items = append(s.Items, rest...)
	s.Warnings = append(s.Warnings, other.Warnings...)
}

// Imports returns all @import URLs from the stylesheet in source order.
func (s *Stylesheet) Imports() []string {
	var urls []string
	for _, item := range s.Items {
		if item.Import != nil {
			urls = append(urls, *item.Import)
		}
	}
	return urls
}

// Rules returns all top-level rules in source order.
func (s *Stylesheet) Rules() []Rule {
	var rules []Rule
	for _, item := range s.Items {
		if item.Rule != nil {
			rules = append(rules, *item.Rule)
		}
	}
	return rules
}

// RulesBySelector returns all top-level rules matching the given selector string.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, item := range s.Items {
		if item.Rule != nil && item.Rule.Selector == selector {
			matches = append(matches, *item.Rule)
		}
	}
	return matches
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Items are separated by an empty line, consecutive imports are kept together.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, item := range s.Items {
		var n int
		var err error

		if i > 0 && (item.Import == nil || s.Items[i-1].Import == nil) {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}

		switch {
		case item.Import != nil:
			n, err = fmt.Fprintf(w, "@import url(%s);\n", Quote(*item.Import))
		case item.FontFace != nil:
			n, err = writeBlock(w, "", "@font-face", item.FontFace.Declarations)
		case item.MediaBlock != nil:
			n, err = writeMediaBlock(w, item.MediaBlock)
		case item.Rule != nil:
			n, err = writeBlock(w, "", item.Rule.Selector, item.Rule.Declarations)
		}

		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeBlock writes selector (or at-keyword) with declarations in their order.
func writeBlock(w io.Writer, indent, head string, decls Declarations) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s%s {\n", indent, head)
	total += n
	if err != nil {
		return total, err
	}
	for _, decl := range decls {
		n, err = fmt.Fprintf(w, "%s  %s: %s;\n", indent, decl.Property, decl.Value)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = fmt.Fprintf(w, "%s}\n", indent)
	total += n
	return total, err
}

// writeMediaBlock writes an @media block to w.
func writeMediaBlock(w io.Writer, mb *MediaBlock) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "@media %s {\n", mb.Query)
	total += n
	if err != nil {
		return total, err
	}

	for i, rule := range mb.Rules {
		if i > 0 {
			n, err = fmt.Fprint(w, "\n")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = writeBlock(w, "  ", rule.Selector, rule.Declarations)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
