package readme

import (
	"fmt"
	"io"
	"strings"
)

// Template placeholders.
const (
	PlaceholderCrate   = "{{crate}}"
	PlaceholderLicense = "{{license}}"
	PlaceholderReadme  = "{{readme}}"
)

// Metadata describes the documented package. Empty optional fields mean the
// manifest does not declare them.
type Metadata struct {
	Name    string
	License string
	// Lib is the library entrypoint path, relative to the project root.
	Lib string
	// Bin is the path of the last declared binary target.
	Bin string
}

// HasLicense reports whether a license is declared.
func (m Metadata) HasLicense() bool {
	return m.License != ""
}

// Options controls README generation.
type Options struct {
	AddTitle       bool
	AddLicense     bool
	IndentHeadings bool
}

// Template is a README template. The zero value is an empty template.
type Template struct {
	text string
}

// ParseTemplate builds a Template from raw text, dropping trailing newlines.
func ParseTemplate(text string) *Template {
	return &Template{text: strings.TrimRight(text, "\n")}
}

// ReadTemplate reads a whole template from r.
func ReadTemplate(r io.Reader) (*Template, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadTemplate, err)
	}
	return ParseTemplate(string(data)), nil
}

// Has reports whether the template declares placeholder. A nil template
// declares none.
func (t *Template) Has(placeholder string) bool {
	if t == nil {
		return false
	}
	return strings.Contains(t.text, placeholder)
}

// String returns the template text.
func (t *Template) String() string {
	return t.text
}

// Generate extracts the documentation of source and renders it.
func Generate(source io.Reader, tmpl *Template, meta Metadata, opts Options) (string, error) {
	lines, err := ReadLines(source)
	if err != nil {
		return "", err
	}
	body := Fold(Extract(lines, opts.IndentHeadings))
	return Render(body, tmpl, meta, opts)
}

// Render decorates body directly when tmpl is nil, otherwise substitutes it
// into tmpl.
func Render(body string, tmpl *Template, meta Metadata, opts Options) (string, error) {
	if tmpl == nil {
		return Decorate(body, meta, opts)
	}
	state := &templateState{
		text: tmpl.text,
		body: body,
		meta: meta,
		opts: opts,
	}
	for _, rule := range templateRules {
		if err := rule(state); err != nil {
			return "", err
		}
	}
	return state.text, nil
}

// Decorate prepends the title and appends the license line as requested.
func Decorate(body string, meta Metadata, opts Options) (string, error) {
	if opts.AddLicense && !meta.HasLicense() {
		return "", errNoLicense()
	}
	if opts.AddTitle {
		body = prependTitle(body, meta.Name)
	}
	if opts.AddLicense {
		body = appendLicense(body, meta.License)
	}
	return body, nil
}

type templateState struct {
	text string
	body string
	meta Metadata
	opts Options
}

func (s *templateState) has(placeholder string) bool {
	return strings.Contains(s.text, placeholder)
}

type templateRule func(*templateState) error

// templateRules run in order. A placeholder declared by the template takes
// precedence over the matching decoration option.
var templateRules = []templateRule{
	applyTitle,
	requireLicenseForPlaceholder,
	requireLicenseForOption,
	applyLicense,
	applyBody,
}

func applyTitle(s *templateState) error {
	if s.opts.AddTitle && !s.has(PlaceholderCrate) {
		s.body = prependTitle(s.body, s.meta.Name)
		return nil
	}
	s.text = strings.ReplaceAll(s.text, PlaceholderCrate, s.meta.Name)
	return nil
}

func requireLicenseForPlaceholder(s *templateState) error {
	if s.has(PlaceholderLicense) && !s.meta.HasLicense() {
		return fmt.Errorf("%w: `%s` found in template but the package declares no license", ErrMissingLicense, PlaceholderLicense)
	}
	return nil
}

func requireLicenseForOption(s *templateState) error {
	if s.opts.AddLicense && !s.meta.HasLicense() {
		return errNoLicense()
	}
	return nil
}

func applyLicense(s *templateState) error {
	switch {
	case s.opts.AddLicense && !s.has(PlaceholderLicense):
		s.body = appendLicense(s.body, s.meta.License)
	case s.has(PlaceholderLicense):
		s.text = strings.ReplaceAll(s.text, PlaceholderLicense, s.meta.License)
	}
	return nil
}

func applyBody(s *templateState) error {
	if !s.has(PlaceholderReadme) {
		return ErrMissingBodyPlaceholder
	}
	s.text = strings.ReplaceAll(s.text, PlaceholderReadme, s.body)
	return nil
}

func errNoLicense() error {
	return fmt.Errorf("%w: the package declares no license", ErrMissingLicense)
}

func prependTitle(body, name string) string {
	return "# " + name + "\n\n" + body
}

func appendLicense(body, license string) string {
	return body + "\n\nLicense: " + license
}
