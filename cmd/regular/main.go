package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"
	"text/template"

	"github.com/quasilyte/regular"
	"github.com/quasilyte/regular/gen"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

const defaultFormat = `{{.MatchLine}}`

const defaultMaxLine = 100

func main() {
	exitCode, err := mainNoExit()
	if err != nil {
		log.Printf("error: %v", err)
		os.Exit(exitError)
	}
	os.Exit(exitCode)
}

func mainNoExit() (int, error) {
	log.SetFlags(0)
	return run(os.Args[1:], os.Stdin, os.Stdout)
}

func run(argv []string, stdin io.Reader, stdout io.Writer) (int, error) {
	var args arguments
	if err := parseFlags(&args, argv); err != nil {
		return exitError, err
	}

	p := &program{
		args:   args,
		stdin:  stdin,
		stdout: stdout,
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"validate flags", p.validateFlags},
		{"start profiling", p.startProfiling},
		{"parse pattern", p.parsePattern},
		{"generate code", p.generateCode},
		{"compile output format", p.compileOutputFormat},
		{"execute pattern", p.executePattern},
		{"print matches", p.printMatches},
		{"finish profiling", p.finishProfiling},
	}

	for _, step := range steps {
		if args.verbose {
			log.Printf("debug: starting %q step", step.name)
		}
		if err := step.fn(); err != nil {
			return exitError, fmt.Errorf("%s: %w", step.name, err)
		}
	}

	if args.genFile != "" {
		return exitMatched, nil
	}
	if p.numMatches == 0 {
		return exitNotMatched, nil
	}
	return exitMatched, nil
}

type arguments struct {
	verbose bool
	limit   uint64
	maxLine int

	format string

	countMode bool

	noColor       bool
	filenameColor string
	lineColor     string
	matchColor    string

	cpuProfile string
	memProfile string

	genFile    string
	genPackage string
	genName    string

	pattern string
	input   string
}

func parseFlags(args *arguments, argv []string) error {
	fs := flag.NewFlagSet("regular", flag.ContinueOnError)

	fs.Usage = func() {
		const usage = `Usage: regular [flags...] pattern [input-file]
Where:
  flags are command-line arguments that are listed in -help (see below)
  pattern is a string that describes what is being matched
  input-file is a file to read lines from, standard input is used if omitted
Pattern syntax:
  c        any ordinary character matches itself
  .        any character in the [' ', 'z'] range
  ^ $      start and end of a line
  [abc]    any of the listed characters
  (p)      grouping
  p* p+ p? repetitions
  p|q      alternation
Examples:
  # Print lines that contain "abd", "abcd", "acbd" and so on.
  regular 'a(b|c)*d' input.txt
  # Count lines that start with a digit.
  regular -c '^[0123456789]' input.txt
  # Write a Go file that declares the parsed pattern.
  regular -gen pattern.go -gen-package patterns -gen-name Email '[abc]+'

The output colors can be configured with "--color-<name>" flags.
Use --no-color to disable the output coloring.

Exit status:
  0 if something is matched
  1 if nothing is matched
  2 if error occurred

Supported command-line flags:
`
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	fs.BoolVar(&args.verbose, "v", false,
		`verbose mode: turn on additional debug logging`)
	fs.Uint64Var(&args.limit, "limit", 0,
		`stop after this many matching lines, 0 for unlimited`)
	fs.IntVar(&args.maxLine, "max-line", defaultMaxLine,
		`reject input lines that are longer than this many bytes`)
	fs.StringVar(&args.memProfile, "memprofile", "",
		`write memory profile to the specified file`)
	fs.StringVar(&args.cpuProfile, "cpuprofile", "",
		`write CPU profile to the specified file`)
	fs.StringVar(&args.format, "format", defaultFormat,
		`specify an alternate format for the output, using the syntax Go templates`)

	fs.BoolVar(&args.countMode, "c", false,
		`count mode that discards all match data, but prints the number of matching lines`)

	fs.StringVar(&args.genFile, "gen", "",
		`write a Go file that declares the parsed pattern and exit`)
	fs.StringVar(&args.genPackage, "gen-package", "patterns",
		`package name of the -gen output file`)
	fs.StringVar(&args.genName, "gen-name", "Pattern",
		`variable name of the -gen output file`)

	fs.BoolVar(&args.noColor, "no-color", false,
		`disable colored output`)
	fs.StringVar(&args.filenameColor, "color-filename", colorFromEnv("filename", "dark-magenta"),
		`{{.Filename}} text color, can also override via $REGULAR_COLOR_FILENAME`)
	fs.StringVar(&args.lineColor, "color-line", colorFromEnv("line", "dark-green"),
		`{{.Line}} text color, can also override via $REGULAR_COLOR_LINE`)
	fs.StringVar(&args.matchColor, "color-match", colorFromEnv("match", "dark-red"),
		`{{.MatchLine}} matches color, can also override via $REGULAR_COLOR_MATCH`)

	if err := fs.Parse(argv); err != nil {
		return err
	}

	rest := fs.Args()
	switch len(rest) {
	case 0:
		return errors.New("pattern argument is missing, see -help")
	case 1, 2:
		args.pattern = rest[0]
		if len(rest) == 2 {
			args.input = rest[1]
		}
	default:
		return fmt.Errorf("expected at most 2 positional arguments, got %d", len(rest))
	}

	if args.verbose {
		log.Printf("debug: pattern: %s", args.pattern)
		log.Printf("debug: input: %s", args.input)
	}

	return nil
}

type program struct {
	args arguments

	stdin  io.Reader
	stdout io.Writer

	numMatches uint64

	pattern *regular.Node

	outputTemplate *template.Template

	cpuProfile bytes.Buffer
}

func (p *program) validateFlags() error {
	if p.args.pattern == "" {
		return fmt.Errorf("pattern can't be empty")
	}
	if p.args.maxLine <= 0 {
		return fmt.Errorf("max-line: expected a positive value, got %d", p.args.maxLine)
	}

	if _, err := colorizeText("", p.args.filenameColor); err != nil {
		return fmt.Errorf("color-filename: %v", err)
	}
	if _, err := colorizeText("", p.args.lineColor); err != nil {
		return fmt.Errorf("color-line: %v", err)
	}
	if _, err := colorizeText("", p.args.matchColor); err != nil {
		return fmt.Errorf("color-match: %v", err)
	}

	if p.args.genFile != "" {
		config := gen.Config{
			Package: p.args.genPackage,
			Name:    p.args.genName,
		}
		if err := config.Validate(); err != nil {
			return fmt.Errorf("gen: %v", err)
		}
	}

	return nil
}

func (p *program) startProfiling() error {
	if p.args.cpuProfile == "" {
		return nil
	}

	if err := pprof.StartCPUProfile(&p.cpuProfile); err != nil {
		return fmt.Errorf("could not start CPU profile: %v", err)
	}

	return nil
}

func (p *program) parsePattern() error {
	root, err := regular.Parse(p.args.pattern)
	if err != nil {
		if p.args.verbose {
			log.Printf("debug: %v", err)
		}
		if errors.Is(err, regular.ErrInvalidPattern) {
			return regular.ErrInvalidPattern
		}
		return err
	}
	if p.args.verbose {
		log.Printf("debug: parsed: %s", regular.Sprint(root))
	}
	p.pattern = root
	return nil
}

func (p *program) generateCode() error {
	if p.args.genFile == "" {
		return nil
	}
	config := gen.Config{
		Package: p.args.genPackage,
		Name:    p.args.genName,
		Pattern: p.args.pattern,
	}
	if p.args.genFile == "-" {
		return gen.Render(p.stdout, config, p.pattern)
	}
	if err := gen.Save(p.args.genFile, config, p.pattern); err != nil {
		return err
	}
	if p.args.verbose {
		log.Printf("debug: wrote %s", p.args.genFile)
	}
	return nil
}

func (p *program) compileOutputFormat() error {
	format := p.args.format
	var err error
	p.outputTemplate, err = template.New("output-format").Parse(format)
	if err != nil {
		return err
	}
	return nil
}

func (p *program) executePattern() error {
	if p.args.genFile != "" {
		return nil
	}

	filename := "<stdin>"
	in := p.stdin
	if p.args.input != "" {
		f, err := os.Open(p.args.input)
		if err != nil {
			return fmt.Errorf("can't open input file: %s", p.args.input)
		}
		defer f.Close()
		filename = p.args.input
		in = f
	}

	w := &worker{
		pattern:   p.pattern,
		maxLine:   p.args.maxLine,
		limit:     p.args.limit,
		countMode: p.args.countMode,
		onMatch: func(m match) error {
			return printMatch(p.stdout, p.outputTemplate, &p.args, m)
		},
	}
	err := w.grepReader(filename, in)
	p.numMatches = w.numMatches
	if p.args.verbose {
		log.Printf("debug: %d lines read, %d matched", w.numLines, w.numMatches)
	}
	return err
}

func (p *program) printMatches() error {
	if !p.args.countMode || p.args.genFile != "" {
		return nil
	}
	_, err := fmt.Fprintln(p.stdout, p.numMatches)
	return err
}

func (p *program) finishProfiling() error {
	if p.args.cpuProfile != "" {
		pprof.StopCPUProfile()
		err := os.WriteFile(p.args.cpuProfile, p.cpuProfile.Bytes(), 0o600)
		if err != nil {
			return fmt.Errorf("write CPU profile: %v", err)
		}
	}

	if p.args.memProfile != "" {
		f, err := os.Create(p.args.memProfile)
		if err != nil {
			return fmt.Errorf("create mem profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // get up-to-date statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("write mem profile: %v", err)
		}
	}

	return nil
}

func printMatch(w io.Writer, tmpl *template.Template, args *arguments, m match) error {
	s, err := renderTemplate(m, renderConfig{
		tmpl:   tmpl,
		colors: !args.noColor,
		args:   args,
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

type renderConfig struct {
	tmpl   *template.Template
	colors bool
	args   *arguments
}

func renderTemplate(m match, config renderConfig) (string, error) {
	matches := make([]string, len(m.spans))
	for i, span := range m.spans {
		matches[i] = m.text[span.Begin:span.End]
	}

	data := make(map[string]interface{}, 4)
	data["Filename"] = m.filename
	data["Line"] = m.line
	data["Matches"] = matches
	data["MatchLine"] = m.text

	if config.colors {
		data["Filename"] = mustColorizeText(m.filename, config.args.filenameColor)
		data["Line"] = mustColorizeText(fmt.Sprint(m.line), config.args.lineColor)
		data["MatchLine"] = mustColorizeSpans(m.text, m.spans, config.args.matchColor)
	}

	var buf strings.Builder
	buf.Grow(len(data["MatchLine"].(string)) * 2) // Approx
	if err := config.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
