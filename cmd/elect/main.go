// Command elect reads candidate lines from stdin (or a source
// command/directory), filters them against one or more patterns given
// on the command line, and prints the matches, one per line,
// optionally as JSON rendering records.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/asticode/go-astilog"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	shellwords "github.com/mattn/go-shellwords"
	"github.com/rivo/uniseg"

	"github.com/rcabralc/elect/src"
	"github.com/rcabralc/elect/src/source"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr *os.File) int {
	fs := flag.NewFlagSet("elect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	limit := fs.Int("limit", 0, "truncate results after sorting (0 = unlimited)")
	sortLimit := fs.Int("sort-limit", 0, "skip sorting once the matched count reaches this size (unset = always sort; <= 0 = never sort)")
	ignoreBadPatterns := fs.Bool("ignore-bad-patterns", false, "treat a malformed regex sub-pattern as a no-op instead of failing")
	reverse := fs.Bool("reverse", false, "reverse the result order")
	noColor := fs.Bool("no-color", false, "disable ANSI highlighting of matched spans")
	outputJSON := fs.Bool("output-json", false, "print each result as a JSON rendering record instead of a highlighted line")
	debug := fs.Bool("debug", false, "enable diagnostic logging")
	sourceCommand := fs.String("source-command", "", "shell command whose stdout supplies candidate lines, instead of stdin")
	sourceDir := fs.String("source-dir", "", "walk this directory tree for candidate lines, instead of stdin")
	incremental := fs.Bool("incremental", true, "enable the incremental cache across successive calls (only meaningful when embedding the session API)")
	maxWidth := fs.Int("max-width", 0, "truncate unhighlighted lines to this many terminal columns, accounting for wide runes (0 = unlimited; ignored when highlighting is on)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *debug {
		astilog.Debugf("elect: session %s starting", uuid.NewString())
	}

	lines, err := candidateLines(stdin, *sourceCommand, *sourceDir)
	if err != nil {
		fmt.Fprintln(stderr, "elect:", err)
		return 1
	}

	opts := elect.Options{
		IgnoreBadPatterns: *ignoreBadPatterns,
		Reverse:           *reverse,
		Incremental:       *incremental,
		Debug:             *debug,
	}
	if *limit > 0 {
		opts.Limit = limit
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "sort-limit" {
			opts.SortLimit = sortLimit
		}
	})

	rawPattern := strings.Join(fs.Args(), " ")
	session := elect.NewSession(lines)
	matches, err := session.Filter(rawPattern, opts)
	if err != nil {
		fmt.Fprintln(stderr, "elect:", err)
		return 1
	}

	highlight := !*noColor && isatty.IsTerminal(stdout.Fd())
	w := bufio.NewWriter(stdout)
	defer w.Flush()
	for _, m := range matches {
		if *outputJSON {
			if err := writeJSON(w, m); err != nil {
				fmt.Fprintln(stderr, "elect:", err)
				return 1
			}
			continue
		}
		line := buildLine(m, highlight)
		if *maxWidth > 0 && !highlight {
			line = truncateToWidth(line, *maxWidth)
		}
		fmt.Fprintln(w, line)
	}

	return 0
}

func candidateLines(stdin *os.File, sourceCommand, sourceDir string) ([]string, error) {
	switch {
	case sourceCommand != "":
		return readCommand(sourceCommand)
	case sourceDir != "":
		return source.Walk(sourceDir, source.WalkOptions{})
	default:
		return readLines(stdin)
	}
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r\n"))
	}
	return lines, scanner.Err()
}

func readCommand(command string) ([]string, error) {
	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parsing source command: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("empty source command")
	}

	cmd := exec.Command(words[0], words[1:]...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running source command: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(out), "\n") {
		lines = append(lines, strings.TrimRight(line, "\r"))
	}
	return lines, nil
}

const (
	boldRed = "\x1b[1m\x1b[31m"
	reset   = "\x1b[22m\x1b[39m"
)

// truncateToWidth cuts line at the last grapheme cluster boundary
// that still fits within width terminal columns, so wide (e.g. CJK)
// runes are never split in half.
func truncateToWidth(line string, width int) string {
	if uniseg.StringWidth(line) <= width {
		return line
	}

	g := uniseg.NewGraphemes(line)
	used := 0
	cut := len(line)
	for g.Next() {
		start, end := g.Positions()
		w := uniseg.StringWidth(line[start:end])
		if used+w > width {
			cut = start
			break
		}
		used += w
	}
	return line[:cut]
}

func buildLine(m elect.CompositeMatch, highlight bool) string {
	var b strings.Builder
	for _, part := range m.Partitions() {
		b.WriteString(part.Unmatched)
		if part.Matched == "" {
			continue
		}
		if highlight {
			b.WriteString(boldRed)
			b.WriteString(part.Matched)
			b.WriteString(reset)
		} else {
			b.WriteString(part.Matched)
		}
	}
	return b.String()
}

type jsonPartition struct {
	Unmatched string `json:"unmatched"`
	Matched   string `json:"matched"`
}

type jsonRecord struct {
	ID         int             `json:"id"`
	Value      string          `json:"value"`
	Rank       [2]int          `json:"rank"`
	Partitions []jsonPartition `json:"partitions"`
}

func writeJSON(w *bufio.Writer, m elect.CompositeMatch) error {
	r := m.Render()
	record := jsonRecord{ID: r.ID, Value: r.Value, Rank: r.Rank}
	for _, p := range r.Partitions {
		record.Partitions = append(record.Partitions, jsonPartition{Unmatched: p.Unmatched, Matched: p.Matched})
	}
	enc := json.NewEncoder(w)
	return enc.Encode(record)
}

