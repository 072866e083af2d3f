package main

import (
	"github.com/quasilyte/regular"
)

type match struct {
	text  string
	spans []regular.Span

	filename string
	line     int
}
