// Package schema validates external JSON payloads before they are decoded
// into typed records.
package schema

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
)

// maxReported bounds how many violations end up in an error message.
const maxReported = 5

// Schema is a compiled JSON schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// MustCompile compiles a schema document and panics on error. Intended for
// package-level schemas embedded at build time.
func MustCompile(name string, doc []byte) *Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		panic(fmt.Sprintf("schema %s: %v", name, err))
	}
	return &Schema{name: name, schema: s}
}

// Validate checks body against the schema.
func (s *Schema) Validate(body []byte) error {
	res, err := s.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%s: invalid json: %w", s.name, err)
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for i, e := range res.Errors() {
		if i >= maxReported {
			break
		}
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%s: payload does not match schema: %s", s.name, strings.Join(msgs, "; "))
}

// Decode validates body and unmarshals it into v.
func (s *Schema) Decode(body []byte, v any) error {
	if err := s.Validate(body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: decode: %w", s.name, err)
	}
	return nil
}
