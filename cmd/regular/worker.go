package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/quasilyte/regular"
)

type worker struct {
	pattern *regular.Node

	maxLine   int
	limit     uint64
	countMode bool

	onMatch func(m match) error

	numLines   int
	numMatches uint64
}

// grepReader locates the pattern in every line of r.
// Lines that have at least one match (zero-width ones included)
// are passed to onMatch, unless the count mode is enabled.
func (w *worker) grepReader(filename string, r io.Reader) error {
	// A token can hold one byte over the limit and a "\r\n" terminator;
	// such lines are rejected by the length check, longer ones by ErrTooLong.
	maxToken := w.maxLine + 3
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, min(4096, maxToken)), maxToken)

	for scanner.Scan() {
		w.numLines++
		line := scanner.Text()
		if len(line) > w.maxLine {
			return w.lineTooLong(filename)
		}

		table := w.pattern.Locate(line)
		if !table.Any() {
			continue
		}
		w.numMatches++

		if !w.countMode {
			m := match{
				text:     line,
				spans:    table.Spans(),
				filename: filename,
				line:     w.numLines,
			}
			if err := w.onMatch(m); err != nil {
				return err
			}
		}

		if w.limit != 0 && w.numMatches >= w.limit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			w.numLines++
			return w.lineTooLong(filename)
		}
		return fmt.Errorf("read %s: %v", filename, err)
	}
	return nil
}

func (w *worker) lineTooLong(filename string) error {
	return fmt.Errorf("%s:%d: input line too long, the limit is %d bytes", filename, w.numLines, w.maxLine)
}
