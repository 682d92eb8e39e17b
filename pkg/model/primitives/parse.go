package primitives

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// literalLexer tokenizes the structured literals used by
// multiplicities, tuples (points, extents, colors) and currencies.
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Range", Pattern: `\.\.`},
	{Name: "Number", Pattern: `\d+(\.\d+)?([eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Symbol", Pattern: `[$€£¥]`},
	{Name: "Punct", Pattern: `[-+()\[\];*]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// periodLexer tokenizes ISO 8601 durations like P1Y2M3DT4H5M6.5S.
var periodLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+(\.\d+)?`},
	{Name: "Designator", Pattern: `[PYMWDTHS]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

type number struct {
	Sign  string `parser:"@('-' | '+')?"`
	Value string `parser:"@Number"`
}

func (n *number) Float() (float64, error) {
	return strconv.ParseFloat(n.Sign+n.Value, 64)
}

func (n *number) Int() (int64, error) {
	return strconv.ParseInt(n.Sign+n.Value, 10, 64)
}

type multiplicityLiteral struct {
	Min string `parser:"@Number Range"`
	Max string `parser:"@(Number | 'N' | '*')"`
}

type tupleLiteral struct {
	Open   string    `parser:"@('(' | '[')"`
	Values []*number `parser:"@@ (';' @@)*"`
	Close  string    `parser:"@(')' | ']')"`
}

type currencyLiteral struct {
	Sign   string `parser:"@('-' | '+')?"`
	Symbol string `parser:"@Symbol?"`
	Amount string `parser:"@Number"`
	Code   string `parser:"@Ident?"`
}

type periodLiteral struct {
	Date []*periodPart `parser:"'P' @@*"`
	Time []*periodPart `parser:"('T' @@*)?"`
}

type periodPart struct {
	Value string `parser:"@Number"`
	Unit  string `parser:"@('Y' | 'M' | 'W' | 'D' | 'H' | 'S')"`
}

var (
	multiplicityParser = build[multiplicityLiteral](literalLexer)
	tupleParser        = build[tupleLiteral](literalLexer)
	currencyParser     = build[currencyLiteral](literalLexer)
	periodParser       = build[periodLiteral](periodLexer)
)

func build[T any](lex lexer.Definition) *participle.Parser[T] {
	return participle.MustBuild[T](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
}

// parseTuple parses a tuple of numbers with the given brackets
// and number of elements.
func parseTuple(s string, brackets string, sizes ...int) ([]*number, error) {
	t, err := tupleParser.ParseString("", s)
	if err != nil {
		return nil, err
	}
	if t.Open+t.Close != brackets {
		return nil, fmt.Errorf("expected %s brackets", brackets)
	}
	for _, n := range sizes {
		if len(t.Values) == n {
			return t.Values, nil
		}
	}
	return nil, fmt.Errorf("unexpected number of elements %d", len(t.Values))
}

func parseFloats(s string, brackets string, sizes ...int) ([]float64, error) {
	values, err := parseTuple(s, brackets, sizes...)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(values))
	for i, v := range values {
		result[i], err = v.Float()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func parsePeriod(s string) (*periodLiteral, error) {
	return periodParser.ParseString("", strings.ToUpper(s))
}
