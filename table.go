package regular

// Span is a [Begin, End) substring of a line.
type Span struct {
	Begin int
	End   int
}

// Table is a substring match table for a single line.
//
// For a line of length n it holds (n+1)*(n+1) cells; only the cells with
// begin <= end are meaningful. A table is never modified after Locate
// returns it.
type Table struct {
	n     int
	cells []bool
}

func newTable(n int) *Table {
	return &Table{
		n:     n,
		cells: make([]bool, (n+1)*(n+1)),
	}
}

// Len returns the length of the line this table was built for.
func (t *Table) Len() int { return t.n }

// Matches reports whether [begin, end) is matched.
// Pairs outside of 0 <= begin <= end <= Len() are never matched.
func (t *Table) Matches(begin, end int) bool {
	if begin < 0 || begin > end || end > t.n {
		return false
	}
	return t.cells[begin*(t.n+1)+end]
}

func (t *Table) set(begin, end int) {
	t.cells[begin*(t.n+1)+end] = true
}

func (t *Table) copyFrom(src *Table) {
	copy(t.cells, src.cells)
}

// Any reports whether at least one substring is matched.
// Zero-width matches are counted too.
func (t *Table) Any() bool {
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			if t.Matches(begin, end) {
				return true
			}
		}
	}
	return false
}

// All returns every matched substring in row-major order.
func (t *Table) All() []Span {
	var spans []Span
	for begin := 0; begin <= t.n; begin++ {
		for end := begin; end <= t.n; end++ {
			if t.Matches(begin, end) {
				spans = append(spans, Span{Begin: begin, End: end})
			}
		}
	}
	return spans
}

// Spans selects the non-empty, non-overlapping substrings that should be
// reported for the line.
//
// The line is scanned from left to right; at every position the shortest
// non-empty match is taken and the scan resumes right after it.
// Zero-width matches are never reported as spans.
func (t *Table) Spans() []Span {
	var spans []Span
	begin := 0
	for begin < t.n {
		end := begin + 1
		for end <= t.n && !t.Matches(begin, end) {
			end++
		}
		if end > t.n {
			begin++
			continue
		}
		spans = append(spans, Span{Begin: begin, End: end})
		begin = end
	}
	return spans
}
