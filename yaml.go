package termfield

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// templateDoc is the YAML form of a [Template]:
//
//	template: "{{.name}} {{.score}}"
//	measure: runes
//	fields:
//	  name:  {width: 10}
//	  score: {width: 6, justify: center, fill: "."}
type templateDoc struct {
	Template string              `yaml:"template"`
	Measure  string              `yaml:"measure"`
	Fields   map[string]fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	Width   int    `yaml:"width"`
	Justify string `yaml:"justify"`
	Fill    string `yaml:"fill"`
	Measure string `yaml:"measure"`
}

// ParseTemplate decodes a YAML template document.
func ParseTemplate(data []byte) (*Template, error) {
	return LoadTemplate(bytes.NewReader(data))
}

// LoadTemplate decodes a YAML template document from r. Unknown keys are
// rejected. A field without its own measure uses the document's.
func LoadTemplate(r io.Reader) (*Template, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc templateDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTemplate)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}

	measurer, err := ParseMeasurer(doc.Measure)
	if err != nil {
		return nil, err
	}
	fields := make(map[string]Field, len(doc.Fields))
	for name, fd := range doc.Fields {
		mode, err := ParseMode(fd.Justify)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		m := measurer
		if fd.Measure != "" {
			if m, err = ParseMeasurer(fd.Measure); err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
		}
		fields[name] = Field{Width: fd.Width, Mode: mode, Fill: fd.Fill, Measurer: m}
	}
	return NewTemplate(doc.Template, fields)
}
