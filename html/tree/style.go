// Package tree turns the declarations found in HTML 'style' attributes into
// computed values for the box model properties.
//
// It is a tiny front-end for the layout: there is no cascade, no selector
// matching, and only the properties involved in the box model are supported.
package tree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	pr "github.com/benoitkugler/boxgeom/css/properties"
	"github.com/benoitkugler/boxgeom/logger"
	"github.com/benoitkugler/boxgeom/utils"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"golang.org/x/image/colornames"
)

var (
	borderStyles = []string{"none", "hidden", "dotted", "dashed", "solid",
		"double", "groove", "ridge", "inset", "outset"}
)

// declaration is a property name with its (non whitespace) value tokens.
type declaration struct {
	name   string
	tokens []css.Token
}

func (d declaration) raw() string {
	var chunks []string
	for _, t := range d.tokens {
		chunks = append(chunks, string(t.Data))
	}
	return strings.Join(chunks, " ")
}

// ParseDeclarations parses a declaration list, as found in a 'style' attribute.
//
// Invalid or unsupported declarations are ignored, with a warning. An error is
// only returned when the text is not syntactically valid CSS.
func ParseDeclarations(text string) (pr.Properties, error) {
	parser := css.NewParser(parse.NewInputString(text), true)
	out := pr.Properties{}
	for {
		gt, _, data := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != io.EOF {
				return out, fmt.Errorf("invalid declarations %q: %w", text, err)
			}
			return out, nil
		case css.DeclarationGrammar:
			decl := declaration{name: strings.ToLower(string(data))}
			for _, t := range parser.Values() {
				if t.TokenType != css.WhitespaceToken {
					decl.tokens = append(decl.tokens, t)
				}
			}
			decl.tokens = stripImportant(decl.tokens)
			expanded, err := expand(decl)
			if err != nil {
				logger.WarningLogger.Warnf("Ignored `%s: %s`, %s.", decl.name, decl.raw(), err)
				continue
			}
			out.UpdateWith(expanded)
		}
	}
}

func stripImportant(tokens []css.Token) []css.Token {
	if n := len(tokens); n >= 2 && tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" &&
		tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") {
		return tokens[:n-2]
	}
	return tokens
}

// expand validates a declaration, expanding shorthands into longhands.
func expand(decl declaration) (pr.Properties, error) {
	if len(decl.tokens) == 0 {
		return nil, fmt.Errorf("missing value")
	}
	switch decl.name {
	case "margin":
		return expandFourSides(decl.tokens, pr.Side.Margin, marginLength)
	case "padding":
		return expandFourSides(decl.tokens, pr.Side.Padding, paddingLength)
	case "border-width":
		return expandFourSides(decl.tokens, pr.Side.BorderWidth, borderWidthValue)
	case "border-style":
		return expandFourSides(decl.tokens, pr.Side.BorderStyle, borderStyle)
	case "border":
		return expandBorder(decl.tokens, pr.Sides[:])
	case "border-top":
		return expandBorder(decl.tokens, []pr.Side{pr.STop})
	case "border-right":
		return expandBorder(decl.tokens, []pr.Side{pr.SRight})
	case "border-bottom":
		return expandBorder(decl.tokens, []pr.Side{pr.SBottom})
	case "border-left":
		return expandBorder(decl.tokens, []pr.Side{pr.SLeft})
	}

	prop := pr.PropFromName(decl.name)
	validator, ok := validators[prop]
	if !ok {
		return nil, fmt.Errorf("unsupported property")
	}
	if len(decl.tokens) != 1 {
		return nil, fmt.Errorf("invalid or unsupported values for a known CSS property")
	}
	v, err := validator(decl.tokens[0])
	if err != nil {
		return nil, err
	}
	return pr.Properties{prop: v}, nil
}

type validator = func(token css.Token) (pr.CssProperty, error)

var validators = map[pr.KnownProp]validator{
	pr.PDirection:  keyword("ltr", "rtl"),
	pr.PDisplay:    keyword("inline", "block", "list-item", "inline-block", "flow-root", "none"),
	pr.PTextIndent: lengthOrKeyword(true),
	pr.PWidth:      nonNegative(lengthOrKeyword(true, "auto")),
	pr.PHeight:     nonNegative(lengthOrKeyword(true, "auto")),
	pr.PMinWidth:   nonNegative(lengthOrKeyword(true)),
	pr.PMinHeight:  nonNegative(lengthOrKeyword(true)),
	pr.PMaxWidth:   nonNegative(lengthOrKeyword(true, "none")),
	pr.PMaxHeight:  nonNegative(lengthOrKeyword(true, "none")),
}

func init() {
	for _, side := range pr.Sides {
		validators[side.Margin()] = marginLength
		validators[side.Padding()] = paddingLength
		validators[side.BorderWidth()] = borderWidthValue
		validators[side.BorderStyle()] = borderStyle
	}
}

var (
	marginLength     = lengthOrKeyword(true, "auto")
	paddingLength    = nonNegative(lengthOrKeyword(true))
	borderWidthValue = nonNegative(lengthOrKeyword(false, "thin", "medium", "thick"))
	borderStyle      = keyword(borderStyles...)
)

func keyword(allowed ...string) validator {
	return func(token css.Token) (pr.CssProperty, error) {
		if token.TokenType == css.IdentToken {
			s := strings.ToLower(string(token.Data))
			if utils.IsIn(allowed, s) {
				return pr.String(s), nil
			}
		}
		return nil, fmt.Errorf("expected one of %s", strings.Join(allowed, ", "))
	}
}

// lengthOrKeyword accepts a length, a percentage if [percentage] is true,
// or one of the given keywords.
func lengthOrKeyword(percentage bool, keywords ...string) validator {
	return func(token css.Token) (pr.CssProperty, error) {
		switch token.TokenType {
		case css.IdentToken:
			s := strings.ToLower(string(token.Data))
			if utils.IsIn(keywords, s) {
				return pr.SToV(s), nil
			}
		case css.NumberToken:
			// only 0 is allowed without unit
			if v, err := strconv.ParseFloat(string(token.Data), 64); err == nil && v == 0 {
				return pr.Dimension{Unit: pr.Scalar}.ToValue(), nil
			}
			return nil, fmt.Errorf("missing unit")
		case css.PercentageToken:
			if !percentage {
				return nil, fmt.Errorf("percentages are not allowed")
			}
			v, err := strconv.ParseFloat(strings.TrimSuffix(string(token.Data), "%"), 64)
			if err != nil {
				return nil, err
			}
			return pr.PercToV(pr.Float(v)), nil
		case css.DimensionToken:
			d, err := parseDimension(string(token.Data))
			if err != nil {
				return nil, err
			}
			if d.Unit == 0 || d.Unit == pr.Perc || d.Unit == pr.Scalar {
				return nil, fmt.Errorf("unsupported unit")
			}
			return d.ToValue(), nil
		}
		return nil, fmt.Errorf("invalid or unsupported values for a known CSS property")
	}
}

func nonNegative(v validator) validator {
	return func(token css.Token) (pr.CssProperty, error) {
		out, err := v(token)
		if err != nil {
			return nil, err
		}
		if value, ok := out.(pr.Value); ok && value.S == "" && value.Value < 0 {
			return nil, fmt.Errorf("negative values are not allowed")
		}
		return out, nil
	}
}

// parseDimension splits a dimension token like "12.5mm".
func parseDimension(s string) (pr.Dimension, error) {
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(unicode.IsDigit(r) || r == '.' || r == '-' || r == '+')
	})
	if end <= 0 {
		return pr.Dimension{}, fmt.Errorf("invalid dimension %q", s)
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return pr.Dimension{}, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	return pr.Dimension{Value: pr.Float(v), Unit: pr.UnitFromString(strings.ToLower(s[end:]))}, nil
}

// expandFourSides handles the 1 to 4 values shorthands.
func expandFourSides(tokens []css.Token, prop func(pr.Side) pr.KnownProp, v validator) (pr.Properties, error) {
	if len(tokens) > 4 {
		return nil, fmt.Errorf("expected 1 to 4 token components got %d", len(tokens))
	}
	var values []pr.CssProperty
	for _, token := range tokens {
		value, err := v(token)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	// top, right, bottom, left
	switch len(values) {
	case 1:
		values = append(values, values[0], values[0], values[0])
	case 2:
		values = append(values, values[0], values[1])
	case 3:
		values = append(values, values[1])
	}
	out := make(pr.Properties, 4)
	for i, side := range pr.Sides {
		out[prop(side)] = values[i]
	}
	return out, nil
}

// expandBorder handles 'border' and 'border-<side>'.
// Colors are accepted but ignored.
func expandBorder(tokens []css.Token, sides []pr.Side) (pr.Properties, error) {
	var (
		width pr.CssProperty = pr.SToV("medium")
		style pr.CssProperty = pr.String("none")
		hasWidth, hasStyle bool
	)
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if token.TokenType == css.FunctionToken { // skip the arguments of rgb(), hsl(), ...
			for i < len(tokens) && tokens[i].TokenType != css.RightParenthesisToken {
				i++
			}
			if i == len(tokens) {
				return nil, fmt.Errorf("unclosed function %s", token.Data)
			}
			continue
		}
		if w, err := borderWidthValue(token); err == nil && !hasWidth {
			width, hasWidth = w, true
			continue
		}
		if s, err := borderStyle(token); err == nil && !hasStyle {
			style, hasStyle = s, true
			continue
		}
		if !isColor(token) {
			return nil, fmt.Errorf("invalid or unsupported values for a known CSS property")
		}
	}
	out := make(pr.Properties, 2*len(sides))
	for _, side := range sides {
		out[side.BorderWidth()] = width
		out[side.BorderStyle()] = style
	}
	return out, nil
}

// isColor accepts hexadecimal notations and color keywords.
func isColor(token css.Token) bool {
	switch token.TokenType {
	case css.HashToken:
		hex := string(token.Data[1:])
		if n := len(hex); n != 3 && n != 4 && n != 6 && n != 8 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 64)
		return err == nil
	case css.IdentToken:
		name := strings.ToLower(string(token.Data))
		if name == "currentcolor" || name == "transparent" {
			return true
		}
		_, ok := colornames.Map[name]
		return ok
	default:
		return false
	}
}
