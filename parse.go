package regular

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is matched by every error returned from Parse.
var ErrInvalidPattern = errors.New("invalid pattern")

// ParseError describes a malformed pattern.
type ParseError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pattern %q: offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidPattern }

// Parse builds a pattern tree from its textual form.
//
// The grammar, from the lowest precedence to the highest:
//
//	alternation   = concatenation { "|" concatenation }
//	concatenation = repetition { repetition }
//	repetition    = atom { "*" | "+" | "?" }
//	atom          = char | "." | "^" | "$" | "(" alternation ")" | "[" { char } "]"
//
// The whole pattern must be consumed, there is no partial result.
func Parse(pattern string) (*Node, error) {
	p := parser{pattern: pattern, src: pattern}
	return p.Parse()
}

// MustParse is like Parse, but panics on invalid patterns.
func MustParse(pattern string) *Node {
	n, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

func isOrdinary(ch byte) bool {
	return strings.IndexByte(".^$*?+|()[{", ch) == -1
}

type parser struct {
	// pattern is the complete user-provided pattern, used for errors.
	pattern string

	// src is the part of the pattern this parser is responsible for;
	// base is its offset inside pattern.
	src  string
	base int

	pos int
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return &ParseError{
		Pattern: p.pattern,
		Offset:  p.base + p.pos,
		Reason:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.src) }

func (p *parser) Parse() (*Node, error) {
	n, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf("unexpected %q", p.src[p.pos])
	}
	return n, nil
}

func (p *parser) parseAlternation() (*Node, error) {
	x, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.src[p.pos] == '|' {
		p.pos++
		y, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		x = Alt(x, y)
	}
	return x, nil
}

func (p *parser) parseConcatenation() (*Node, error) {
	x, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() && p.src[p.pos] != '|' && p.src[p.pos] != ')' {
		y, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		x = Concat(x, y)
	}
	return x, nil
}

func (p *parser) parseRepetition() (*Node, error) {
	x, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for !p.atEnd() {
		switch p.src[p.pos] {
		case '*':
			x = Star(x)
		case '+':
			x = Plus(x)
		case '?':
			x = Optional(x)
		default:
			return x, nil
		}
		p.pos++
	}
	return x, nil
}

func (p *parser) parseAtom() (*Node, error) {
	if p.atEnd() {
		return nil, p.errorf("unexpected end of pattern")
	}

	ch := p.src[p.pos]
	if isOrdinary(ch) {
		p.pos++
		return Literal(ch), nil
	}

	switch ch {
	case '.':
		p.pos++
		return Wildcard(), nil
	case '^':
		p.pos++
		return StartAnchor(), nil
	case '$':
		p.pos++
		return EndAnchor(), nil
	case '(':
		return p.parseGroup()
	case '[':
		return p.parseCharClass()
	default:
		return nil, p.errorf("unexpected %q", ch)
	}
}

func (p *parser) parseGroup() (*Node, error) {
	end := groupEnd(p.src, p.pos)
	if end == -1 {
		return nil, p.errorf("unterminated group")
	}
	sub := parser{
		pattern: p.pattern,
		src:     p.src[p.pos+1 : end],
		base:    p.base + p.pos + 1,
	}
	n, err := sub.Parse()
	if err != nil {
		return nil, err
	}
	p.pos = end + 1
	return n, nil
}

func (p *parser) parseCharClass() (*Node, error) {
	end := strings.IndexByte(p.src[p.pos+1:], ']')
	if end == -1 {
		return nil, p.errorf("unterminated character class")
	}
	set := p.src[p.pos+1 : p.pos+1+end]
	p.pos += end + 2
	return CharClass(set), nil
}

// groupEnd returns the index of the ')' that closes the '(' at src[open].
// Parentheses inside character classes are not counted.
// Returns -1 if the group is not closed.
func groupEnd(src string, open int) int {
	depth := 0
	for i := open; i < len(src); i++ {
		switch src[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		case '[':
			j := strings.IndexByte(src[i+1:], ']')
			if j == -1 {
				return -1
			}
			i += j + 1
		}
	}
	return -1
}
