package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into ordered items. It is used for user
// supplied stylesheets, values are kept verbatim.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]StylesheetItem, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(parser.Err()))
				sheet.Warnings = append(sheet.Warnings, "parse error: "+parser.Err().Error())
			}
			return sheet

		case css.BeginAtRuleGrammar:
			atRule := strings.ToLower(string(data))
			switch atRule {
			case "@media":
				query := joinTokens(parser.Values())
				rules := p.parseMediaBlockRules(parser)
				p.log.Debug("Parsed @media block", zap.String("query", query), zap.Int("rules", len(rules)))
				sheet.Items = append(sheet.Items, StylesheetItem{
					MediaBlock: &MediaBlock{Query: query, Rules: rules},
				})
			case "@font-face":
				decls := p.parseDeclarations(parser, css.EndAtRuleGrammar)
				sheet.Items = append(sheet.Items, StylesheetItem{FontFace: &FontFace{Declarations: decls}})
			default:
				p.skipAtRuleBlock(parser)
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.AtRuleGrammar:
			// Simple @-rule without block (e.g., @import)
			atRule := strings.ToLower(string(data))
			if atRule == "@import" {
				if url := extractImportURL(parser.Values()); url != "" {
					sheet.Items = append(sheet.Items, StylesheetItem{Import: &url})
					p.log.Debug("Parsed @import", zap.String("url", url))
				}
			} else {
				sheet.Warnings = append(sheet.Warnings, "unsupported at-rule: "+atRule)
				p.log.Debug("Skipping @-rule", zap.String("rule", atRule))
			}

		case css.BeginRulesetGrammar:
			selector := parseSelector(data, parser.Values())
			decls := p.parseDeclarations(parser, css.EndRulesetGrammar)
			if selector == "" {
				sheet.Warnings = append(sheet.Warnings, "rule without selector skipped")
				continue
			}
			sheet.Items = append(sheet.Items, StylesheetItem{Rule: &Rule{Selector: selector, Declarations: decls}})
		}
	}
}

// parseMediaBlockRules collects rules until the end of @media block.
func (p *Parser) parseMediaBlockRules(parser *css.Parser) []Rule {
	var rules []Rule
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar, css.EndAtRuleGrammar:
			return rules
		case css.BeginRulesetGrammar:
			selector := parseSelector(data, parser.Values())
			decls := p.parseDeclarations(parser, css.EndRulesetGrammar)
			if selector != "" {
				rules = append(rules, Rule{Selector: selector, Declarations: decls})
			}
		case css.BeginAtRuleGrammar:
			// nested at-rules are not supported
			p.skipAtRuleBlock(parser)
		}
	}
}

// parseDeclarations parses property declarations until end grammar.
func (p *Parser) parseDeclarations(parser *css.Parser, end css.GrammarType) Declarations {
	var decls Declarations
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, end:
			return decls

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			if value := joinTokens(parser.Values()); value != "" {
				decls.Set(strings.TrimSpace(string(data)), value)
			}
		}
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// parseSelector builds selector text from the ruleset head. Selector lists
// and combinators are spaced uniformly.
func parseSelector(data []byte, values []css.Token) string {
	tokens := values
	if head := bytes.TrimSpace(bytes.Trim(data, "{")); len(head) > 0 {
		tokens = append([]css.Token{{TokenType: css.IdentToken, Data: head}}, values...)
	}
	return join(tokens, func(t css.Token) (string, bool) {
		switch {
		case t.TokenType == css.CommaToken:
			return ", ", true
		case t.TokenType == css.DelimToken && len(t.Data) == 1 && bytes.ContainsAny(t.Data, ">+~"):
			return " " + string(t.Data) + " ", true
		}
		return "", false
	})
}

// joinTokens builds raw value string collapsing whitespace, list items are
// separated by ", ".
func joinTokens(tokens []css.Token) string {
	return join(tokens, func(t css.Token) (string, bool) {
		if t.TokenType == css.CommaToken {
			return ", ", true
		}
		return "", false
	})
}

// join concatenates tokens collapsing whitespace runs into a single space.
// Separator tokens are replaced with their normalized text and whitespace
// around them is dropped.
func join(tokens []css.Token, separator func(css.Token) (string, bool)) string {
	var (
		sb       strings.Builder
		space    bool
		afterSep bool
	)
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			space = sb.Len() > 0 && !afterSep
			continue
		}
		if sep, ok := separator(t); ok {
			sb.WriteString(sep)
			space, afterSep = false, true
			continue
		}
		if space {
			sb.WriteByte(' ')
		}
		sb.Write(t.Data)
		space, afterSep = false, false
	}
	return strings.TrimSpace(sb.String())
}

// extractImportURL extracts the URL from @import tokens.
// Handles: @import "url"; @import url("url"); @import url(url);
func extractImportURL(tokens []css.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case css.StringToken:
			return unquote(string(t.Data))
		case css.URLToken:
			s := string(t.Data)
			s = strings.TrimPrefix(s, "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
