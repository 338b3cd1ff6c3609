package api

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Request payloads are validated against JSON schemas before decoding, so
// malformed input is rejected with a precise message instead of surfacing as
// a half-decoded struct.

const itemSchemaDef = `{
  "type": "object",
  "required": ["kind"],
  "properties": {
    "kind": {"enum": ["paragraph", "entry"]},
    "content": {"type": "string"},
    "boldTitle": {"type": "string"},
    "boldDate": {"type": "string"},
    "secondaryTitle": {"type": "string"},
    "secondaryText": {"type": "string"},
    "bullets": {"type": "array", "items": {"type": "string"}}
  },
  "additionalProperties": false
}`

var sectionSchema = mustSchema(`{
  "type": "object",
  "required": ["title", "item"],
  "properties": {
    "title": {"type": "string"},
    "item": ` + itemSchemaDef + `
  },
  "additionalProperties": false
}`)

var itemSchema = mustSchema(`{
  "type": "object",
  "required": ["item"],
  "properties": {
    "item": ` + itemSchemaDef + `
  },
  "additionalProperties": false
}`)

func mustSchema(def string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(def))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded schema: %v", err))
	}
	return schema
}

func validateBody(schema *gojsonschema.Schema, body []byte) error {
	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if res.Valid() {
		return nil
	}
	var msgs []string
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
