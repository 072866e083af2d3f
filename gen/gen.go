// Package gen renders parsed patterns as Go source code.
//
// The generated file declares a single variable that rebuilds the
// pattern tree with the regular package constructors, so the pattern
// doesn't need to be parsed at run time.
package gen

import (
	"fmt"
	"go/token"
	"io"

	"github.com/dave/jennifer/jen"
	"github.com/quasilyte/regular"
)

const regularPath = "github.com/quasilyte/regular"

// Config describes the generated file.
type Config struct {
	// Package is the Go package name of the generated file.
	Package string

	// Name is the generated variable name.
	Name string

	// Pattern is the source pattern text, it's recorded in a comment.
	Pattern string
}

// Validate checks if the config describes a valid Go file.
func (c Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid identifier", c.Package)
	}
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("name %q is not a valid identifier", c.Name)
	}
	return nil
}

// Generate builds a Go file that declares config.Name as root.
func Generate(config Config, root *regular.Node) (*jen.File, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	expr, err := nodeExpr(root)
	if err != nil {
		return nil, err
	}

	f := jen.NewFile(config.Package)
	f.ImportName(regularPath, "regular")
	f.HeaderComment("Code generated by regular. DO NOT EDIT.")
	f.Commentf("%s matches the %q pattern.", config.Name, config.Pattern)
	f.Var().Id(config.Name).Op("=").Add(expr)
	return f, nil
}

// Render writes the generated file to w.
func Render(w io.Writer, config Config, root *regular.Node) error {
	f, err := Generate(config, root)
	if err != nil {
		return err
	}
	return f.Render(w)
}

// Save writes the generated file to filename.
func Save(filename string, config Config, root *regular.Node) error {
	f, err := Generate(config, root)
	if err != nil {
		return err
	}
	if err := f.Save(filename); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// nodeExpr returns a constructor call that creates n.
// Constructors are named after the node kinds.
func nodeExpr(n *regular.Node) (jen.Code, error) {
	if len(n.Args) != n.Kind.NumArgs() {
		return nil, fmt.Errorf("%s node has %d args, want %d", n.Kind, len(n.Args), n.Kind.NumArgs())
	}

	ctor := jen.Qual(regularPath, n.Kind.String())

	switch n.Kind {
	case regular.KindLiteral:
		return ctor.Call(jen.LitRune(rune(n.Ch))), nil
	case regular.KindCharClass:
		return ctor.Call(jen.Lit(n.Str)), nil
	case regular.KindWildcard, regular.KindStartAnchor, regular.KindEndAnchor:
		return ctor.Call(), nil

	case regular.KindConcat, regular.KindAlt, regular.KindOptional, regular.KindStar, regular.KindPlus:
		args := make([]jen.Code, len(n.Args))
		for i, arg := range n.Args {
			x, err := nodeExpr(arg)
			if err != nil {
				return nil, err
			}
			args[i] = x
		}
		return ctor.Call(args...), nil

	default:
		return nil, fmt.Errorf("unexpected %s node", n.Kind)
	}
}
