package regular

import (
	"fmt"
	"strings"
)

// Locate builds a match table for n over line.
//
// Child tables are computed first, so the whole subtree is re-evaluated
// on every call. The returned table is independent from any other call,
// which makes Locate safe to use from several goroutines.
func (n *Node) Locate(line string) *Table {
	t := newTable(len(line))

	switch n.Kind {
	case KindLiteral:
		locateLiteral(t, n.Ch, line)
	case KindWildcard:
		locateWildcard(t, line)
	case KindStartAnchor:
		locateStartAnchor(t)
	case KindEndAnchor:
		locateEndAnchor(t)
	case KindCharClass:
		locateCharClass(t, n.Str, line)

	case KindConcat:
		locateConcat(t, n.Args[0].Locate(line), n.Args[1].Locate(line))
	case KindAlt:
		locateAlt(t, n.Args[0].Locate(line), n.Args[1].Locate(line))
	case KindOptional:
		locateOptional(t, n.Args[0].Locate(line))
	case KindStar:
		locateStar(t, n.Args[0].Locate(line))
	case KindPlus:
		locatePlus(t, n.Args[0].Locate(line))

	default:
		panic(fmt.Sprintf("locate: unexpected %s node", n.Kind))
	}

	return t
}

func locateLiteral(t *Table, ch byte, line string) {
	for begin := 0; begin < len(line); begin++ {
		if line[begin] == ch {
			t.set(begin, begin+1)
		}
	}
}

func isWildcardByte(ch byte) bool {
	return ch >= ' ' && ch <= 'z'
}

func locateWildcard(t *Table, line string) {
	for begin := 0; begin < len(line); begin++ {
		if isWildcardByte(line[begin]) {
			t.set(begin, begin+1)
		}
	}
}

// Anchors never match an empty line: there is no character
// to anchor to.

func locateStartAnchor(t *Table) {
	if t.n != 0 {
		t.set(0, 0)
	}
}

func locateEndAnchor(t *Table) {
	if t.n != 0 {
		t.set(t.n, t.n)
	}
}

func locateCharClass(t *Table, set, line string) {
	for begin := 0; begin < len(line); begin++ {
		if strings.IndexByte(set, line[begin]) != -1 {
			t.set(begin, begin+1)
		}
	}
}

func locateConcat(t, x, y *Table) {
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			for k := begin; k <= end; k++ {
				if x.Matches(begin, k) && y.Matches(k, end) {
					t.set(begin, end)
					break
				}
			}
		}
	}
}

// locateAlt is not a union of x and y.
// Whichever child matches the row-major first cell wins and its table
// is copied as a whole; x wins ties.
func locateAlt(t, x, y *Table) {
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			if x.Matches(begin, end) {
				t.copyFrom(x)
				return
			}
			if y.Matches(begin, end) {
				t.copyFrom(y)
				return
			}
		}
	}
}

// locateOptional sets every scanned cell, matched by the child or not,
// and stops at the first child match: no later end or begin offset is
// visited. Intentionally non-standard.
func locateOptional(t, x *Table) {
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			t.set(begin, end)
			if x.Matches(begin, end) {
				return
			}
		}
	}
}

// locateStar accepts [begin, end) if the child matches either a prefix
// or a suffix of it. It is not a transitive closure: three or more
// consecutive child matches are not composed. Intentionally non-standard.
func locateStar(t, x *Table) {
	for begin := 0; begin <= t.n; begin++ {
		t.set(begin, begin)
		for end := begin; end <= t.n; end++ {
			for k := begin; k <= end; k++ {
				if x.Matches(begin, k) || x.Matches(k, end) {
					t.set(begin, end)
					break
				}
			}
		}
	}
}

// locatePlus stretches every child match forward by the largest shift
// at which the child still matches the shifted window.
// It does not concatenate the child with itself.
func locatePlus(t, x *Table) {
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			if !x.Matches(begin, end) {
				continue
			}
			offset := 0
			for i := 0; begin+i <= t.n && end+i <= t.n; i++ {
				if x.Matches(begin+i, end+i) {
					offset = i
				}
			}
			t.set(begin, end+offset)
		}
	}
}
