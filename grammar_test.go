package regular

import (
	"fmt"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The types below describe the pattern syntax declaratively.
// Parse must accept exactly the patterns this grammar accepts.

type grammarAlternation struct {
	Branches []*grammarConcatenation `parser:"@@ ( '|' @@ )*"`
}

type grammarConcatenation struct {
	Items []*grammarRepetition `parser:"@@+"`
}

type grammarRepetition struct {
	Atom *grammarAtom `parser:"@@"`
	Ops  []string     `parser:"@( '*' | '+' | '?' )*"`
}

type grammarAtom struct {
	Group *grammarAlternation `parser:"  '(' @@ ')'"`
	Class *string             `parser:"| @Class"`
	Char  *string             `parser:"| @( Char | '.' | '^' | '$' )"`
}

var grammarLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Class", Pattern: `\[[^\]]*\]`},
	{Name: "Meta", Pattern: `[.^$*?+|()]`},
	{Name: "Char", Pattern: `[^.^$*?+|()\[{]`},
})

var grammarParser = participle.MustBuild[grammarAlternation](
	participle.Lexer(grammarLexer),
)

func TestParseGrammar(t *testing.T) {
	patterns := []string{
		`a`,
		`abc`,
		`a|b|c`,
		`a*+?`,
		`.^$`,
		`[abc]+`,
		`[]`,
		`[(]`,
		`[[]`,
		`a[]]`,
		`a]}`,
		`a(b|c)*d`,
		`((a)|b)*`,
		`(a[)]b)`,
		`([)])`,
		`(a)(b)`,
		`x?y`,
		`a b`,

		`*a`,
		`a|`,
		`|a`,
		`a||b`,
		`)`,
		`a)`,
		`(a))`,
		`(a`,
		`((a)`,
		`(a[b)`,
		`()`,
		`(a|)`,
		`(*)`,
		`[ab`,
		`a[`,
		`{`,
		`a{2}`,
		`[a(]b)`,
	}

	for i := range patterns {
		pat := patterns[i]
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			_, err := Parse(pat)
			_, grammarErr := grammarParser.ParseString("", pat)
			if (err == nil) != (grammarErr == nil) {
				t.Fatalf("acceptance mismatch for %q:\nhave: %v\nwant: %v", pat, err, grammarErr)
			}
		})
	}
}
