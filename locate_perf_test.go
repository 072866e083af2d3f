package regular

import (
	"strings"
	"testing"
)

func BenchmarkLocate(b *testing.B) {
	// 100 bytes is the default line limit of the command.
	line := strings.Repeat("abcbcd xy", 11) + "a"

	tests := []struct {
		name string
		pat  string
	}{
		{"literal", `a`},
		{"class", `[abc]+`},
		{"concat", `a(b|c)*d`},
		{"optional", `x?y`},
		{"wildcard", `^.*$`},
	}

	for _, test := range tests {
		n := MustParse(test.pat)
		b.Run(test.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				t := n.Locate(line)
				if t.Len() != len(line) {
					b.Fail()
				}
			}
		})
	}
}

func BenchmarkParse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Parse(`a(b|c)*d|[xy]+e?|^(ab)+.$`); err != nil {
			b.Fatal(err)
		}
	}
}
