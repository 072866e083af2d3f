package regular

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableSpans(t *testing.T) {
	tests := []struct {
		pat   string
		input string
		spans []Span
	}{
		{`a(b|c)*d`, `abcbcd`, []Span{{0, 6}}},
		{`x?y`, `y`, []Span{{0, 1}}},
		{`[abc]+`, `cab xyz`, []Span{{0, 3}}},
		{`an`, `banana`, []Span{{1, 3}, {3, 5}}},
		{`a*`, `aab`, []Span{{0, 1}, {1, 2}}},
		{`a+`, `aXa`, []Span{{0, 3}}},
		{`^`, `ab`, nil},
		{`b?`, `xyz`, []Span{{0, 1}, {1, 2}, {2, 3}}},
		{`b?`, `abcd`, []Span{{0, 1}, {1, 2}}},
		{`x?y`, `aay`, []Span{{0, 3}}},
		{`z`, `abc`, nil},
		{`.`, ``, nil},
	}

	for i := range tests {
		test := tests[i]
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			table := testLocate(t, test.pat, test.input)
			have := table.Spans()
			if diff := cmp.Diff(have, test.spans); diff != "" {
				t.Fatalf("spans of `%s` in %q (+want -have):\n%s", test.pat, test.input, diff)
			}
		})
	}
}

func TestTableAny(t *testing.T) {
	tests := []struct {
		pat   string
		input string
		want  bool
	}{
		{`^`, `ab`, true},
		{`^`, ``, false},
		{`b?`, ``, true},
		{`z`, `abc`, false},
		{`c`, `abc`, true},
	}

	for _, test := range tests {
		have := testLocate(t, test.pat, test.input).Any()
		if have != test.want {
			t.Errorf("`%s` in %q:\nhave: %v\nwant: %v", test.pat, test.input, have, test.want)
		}
	}
}

func TestTableMatchesBounds(t *testing.T) {
	table := MustParse(`.*`).Locate("abc")

	tests := []struct {
		begin int
		end   int
		want  bool
	}{
		{0, 0, true},
		{0, 3, true},
		{3, 3, true},
		{-1, 0, false},
		{0, 4, false},
		{2, 1, false},
		{4, 4, false},
	}

	for _, test := range tests {
		have := table.Matches(test.begin, test.end)
		if have != test.want {
			t.Errorf("Matches(%d, %d):\nhave: %v\nwant: %v", test.begin, test.end, have, test.want)
		}
	}
}
