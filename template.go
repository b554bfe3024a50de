package termfield

import (
	"fmt"
	"io"
	"maps"
	"strings"
	"text/template"
)

// Record holds the values rendered by a [Template], keyed by field name.
type Record map[string]any

// Template substitutes justified field values into a Go text/template.
//
// Each configured field is read from the record, converted with [Of], and
// justified before execution. Record keys without a field are passed through
// as their rendered text. Missing keys render as empty content, so a field
// with no value still occupies its full width.
//
// A Template is safe for concurrent use.
type Template struct {
	text   string
	fields map[string]Field
	tmpl   *template.Template
}

// NewTemplate compiles text against the given fields. Placeholders use Go
// template syntax, e.g. "{{.name}}".
func NewTemplate(text string, fields map[string]Field) (*Template, error) {
	for name, f := range fields {
		if err := f.Validate(); err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
	}
	tmpl, err := template.New("").Option("missingkey=zero").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return &Template{text: text, fields: maps.Clone(fields), tmpl: tmpl}, nil
}

// Text returns the template source.
func (t *Template) Text() string { return t.text }

// Field returns the field configured under name.
func (t *Template) Field(name string) (Field, bool) {
	f, ok := t.fields[name]
	return f, ok
}

// WithMeasurer returns a copy of t whose fields all measure with m.
func (t *Template) WithMeasurer(m Measurer) *Template {
	fields := make(map[string]Field, len(t.fields))
	for name, f := range t.fields {
		f.Measurer = m
		fields[name] = f
	}
	return &Template{text: t.text, fields: fields, tmpl: t.tmpl}
}

// Render justifies the fields of data and writes the executed template to w.
func (t *Template) Render(w io.Writer, data Record) error {
	values, err := t.values(data)
	if err != nil {
		return err
	}
	return t.tmpl.Execute(w, values)
}

// Execute is like [Template.Render] but returns the output.
func (t *Template) Execute(data Record) (string, error) {
	var sb strings.Builder
	if err := t.Render(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (t *Template) values(data Record) (map[string]string, error) {
	values := make(map[string]string, len(t.fields)+len(data))
	for key, v := range data {
		if _, ok := t.fields[key]; ok {
			continue
		}
		c, err := Of(v)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		values[key] = Render(c)
	}
	for name, f := range t.fields {
		c, err := Of(data[name])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		s, err := f.Justify(c)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		values[name] = s
	}
	return values, nil
}
