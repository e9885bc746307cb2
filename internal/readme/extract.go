package readme

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

type fenceState int

const (
	// stateProse is outside any code fence.
	stateProse fenceState = iota
	// stateHostFence is inside a fence holding host-language code.
	stateHostFence
	// stateOtherFence is inside a fence tagged with another language.
	stateOtherFence
)

func (s fenceState) String() string {
	switch s {
	case stateProse:
		return "prose"
	case stateHostFence:
		return "host-fence"
	case stateOtherFence:
		return "other-fence"
	default:
		return fmt.Sprintf("fenceState(%d)", int(s))
	}
}

const fenceDelimiter = "```"

// Dialect describes how documentation is embedded in a host language's
// source files.
type Dialect struct {
	// Marker prefixes every documentation line, e.g. "//!".
	Marker string
	// HostLanguage tags normalized fences holding host-language examples.
	HostLanguage string
	// Qualifiers are the fence info strings that still denote host-language
	// code (for Rust: no_run, ignore, should_panic).
	Qualifiers []string
	// HiddenPrefix marks example lines hidden from rendered documentation.
	HiddenPrefix string
	// HeadingMarker is the Markdown heading character.
	HeadingMarker string

	hostOpen  *regexp.Regexp
	otherOpen *regexp.Regexp
}

// Rust is the dialect of Rust crate-level documentation (`//!` lines).
var Rust = NewDialect(Dialect{
	Marker:        "//!",
	HostLanguage:  "rust",
	Qualifiers:    []string{"no_run", "ignore", "should_panic"},
	HiddenPrefix:  "# ",
	HeadingMarker: "#",
})

// NewDialect compiles the fence patterns of d.
func NewDialect(d Dialect) Dialect {
	prefix := "^" + regexp.QuoteMeta(d.Marker+" "+fenceDelimiter)
	qualifiers := make([]string, 0, len(d.Qualifiers))
	for _, q := range d.Qualifiers {
		qualifiers = append(qualifiers, regexp.QuoteMeta(q))
	}
	host := prefix + "$"
	if len(qualifiers) > 0 {
		host = prefix + "(" + strings.Join(qualifiers, "|") + ")?$"
	}
	d.hostOpen = regexp.MustCompile(host)
	d.otherOpen = regexp.MustCompile(prefix + `\w+`)
	return d
}

// Extract runs the Rust dialect over lines.
func Extract(lines []string, indentHeadings bool) []string {
	return Rust.Extract(lines, indentHeadings)
}

// Extract returns the documentation lines of a source file as README lines.
//
// Host-language fences are re-tagged with the host language and their hidden
// lines are dropped. Fences tagged with another language pass through as is.
// With indentHeadings, prose headings gain one level so the README title can
// be the only top-level heading.
func (d Dialect) Extract(lines []string, indentHeadings bool) []string {
	if d.hostOpen == nil {
		d = NewDialect(d)
	}
	out := make([]string, 0, len(lines))
	state := stateProse
	for _, raw := range lines {
		raw = strings.TrimSuffix(raw, "\r")
		if !strings.HasPrefix(raw, d.Marker) {
			continue
		}
		next, emit, done := d.transition(state, raw)
		state = next
		if done {
			out = append(out, emit)
			continue
		}
		line := d.strip(raw)
		if state == stateHostFence && d.HiddenPrefix != "" && strings.HasPrefix(line, d.HiddenPrefix) {
			continue
		}
		if indentHeadings && state == stateProse && d.HeadingMarker != "" && strings.HasPrefix(line, d.HeadingMarker) {
			line = d.HeadingMarker + line
		}
		out = append(out, line)
	}
	return out
}

// transition applies the fence rules to a marked line. When done is true the
// line is fully handled and emit is the normalized delimiter to output.
func (d Dialect) transition(state fenceState, raw string) (next fenceState, emit string, done bool) {
	switch {
	case state == stateProse && d.hostOpen.MatchString(raw):
		return stateHostFence, fenceDelimiter + d.HostLanguage, true
	case state == stateProse && d.otherOpen.MatchString(raw):
		return stateOtherFence, "", false
	case state != stateProse && d.strip(raw) == fenceDelimiter:
		return stateProse, fenceDelimiter, true
	}
	return state, "", false
}

// strip removes the marker and the single space that follows it.
func (d Dialect) strip(raw string) string {
	rest := strings.TrimPrefix(raw, d.Marker)
	if strings.TrimSpace(rest) == "" {
		return ""
	}
	return strings.TrimPrefix(rest, " ")
}

// ReadLines reads r to the end and splits it into lines. Line length is
// unbounded; a trailing "\r" is dropped from each line.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
		}
	}
}

// Fold joins lines into one text blob without a trailing newline.
func Fold(lines []string) string {
	return strings.Join(lines, "\n")
}
