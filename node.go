// Package regular implements a small regular expression language that is
// matched against single lines of text by filling substring match tables.
//
// Every node of a parsed pattern can locate itself in a line: the result
// is a table that tells, for every [begin, end) substring, whether the
// node matches it. Combinator nodes derive their tables from the tables
// of their children.
package regular

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is a pattern node variant.
type Kind uint8

const (
	KindInvalid Kind = iota

	// KindLiteral matches the single byte $Ch.
	KindLiteral

	// KindWildcard matches one byte in the [' ', 'z'] range.
	KindWildcard

	// KindStartAnchor is a zero-width match at the line start.
	KindStartAnchor

	// KindEndAnchor is a zero-width match at the line end.
	KindEndAnchor

	// KindCharClass matches one byte that is contained in $Str.
	KindCharClass

	// KindConcat = $Args[0] $Args[1]
	KindConcat

	// KindAlt = $Args[0] | $Args[1]
	KindAlt

	// KindOptional = $Args[0]?
	KindOptional

	// KindStar = $Args[0]*
	KindStar

	// KindPlus = $Args[0]+
	KindPlus

	numKinds
)

var kindNames = [numKinds]string{
	KindInvalid:     "Invalid",
	KindLiteral:     "Literal",
	KindWildcard:    "Wildcard",
	KindStartAnchor: "StartAnchor",
	KindEndAnchor:   "EndAnchor",
	KindCharClass:   "CharClass",
	KindConcat:      "Concat",
	KindAlt:         "Alt",
	KindOptional:    "Optional",
	KindStar:        "Star",
	KindPlus:        "Plus",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// NumArgs reports how many child nodes a node of this kind owns.
func (k Kind) NumArgs() int {
	switch k {
	case KindConcat, KindAlt:
		return 2
	case KindOptional, KindStar, KindPlus:
		return 1
	default:
		return 0
	}
}

// Node is a single pattern tree element.
//
// Combinator nodes own their Args exclusively; the parser never shares
// a subtree between two parents.
type Node struct {
	Kind Kind
	Ch   byte
	Str  string
	Args []*Node
}

func Literal(ch byte) *Node { return &Node{Kind: KindLiteral, Ch: ch} }

func Wildcard() *Node { return &Node{Kind: KindWildcard} }

func StartAnchor() *Node { return &Node{Kind: KindStartAnchor} }

func EndAnchor() *Node { return &Node{Kind: KindEndAnchor} }

// CharClass returns a node that matches any byte of set.
// The set is taken verbatim: there are no ranges and no negation.
func CharClass(set string) *Node { return &Node{Kind: KindCharClass, Str: set} }

func Concat(x, y *Node) *Node { return &Node{Kind: KindConcat, Args: []*Node{x, y}} }

func Alt(x, y *Node) *Node { return &Node{Kind: KindAlt, Args: []*Node{x, y}} }

func Optional(x *Node) *Node { return &Node{Kind: KindOptional, Args: []*Node{x}} }

func Star(x *Node) *Node { return &Node{Kind: KindStar, Args: []*Node{x}} }

func Plus(x *Node) *Node { return &Node{Kind: KindPlus, Args: []*Node{x}} }

// Walk calls callback for n and then for all of its descendants,
// depth first. Returning false from callback skips the node children.
func Walk(n *Node, callback func(n *Node) bool) {
	if !callback(n) {
		return
	}
	for _, arg := range n.Args {
		Walk(arg, callback)
	}
}

// Sprint returns an s-expression representation of the pattern tree.
func Sprint(n *Node) string {
	var buf strings.Builder
	sprint(&buf, n)
	return buf.String()
}

func sprint(buf *strings.Builder, n *Node) {
	switch n.Kind {
	case KindLiteral:
		fmt.Fprintf(buf, "(Literal %s)", strconv.QuoteRune(rune(n.Ch)))
	case KindCharClass:
		fmt.Fprintf(buf, "(CharClass %q)", n.Str)
	default:
		if len(n.Args) == 0 {
			buf.WriteString(n.Kind.String())
			return
		}
		buf.WriteString("(" + n.Kind.String())
		for _, arg := range n.Args {
			buf.WriteByte(' ')
			sprint(buf, arg)
		}
		buf.WriteByte(')')
	}
}
