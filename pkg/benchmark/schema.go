package benchmark

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// indexSchema constrains the benchmark index: an array of entries, each
// naming an instance file and optionally carrying an exact optimum and a
// bounds pair. Neither is required, and an entry carrying both is not
// rejected.
const indexSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "path"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "path": {"type": "string", "minLength": 1},
      "optimum": {"type": "number", "minimum": 0},
      "bounds": {
        "type": "object",
        "required": ["lower", "upper"],
        "properties": {
          "lower": {"type": "number", "minimum": 0},
          "upper": {"type": "number", "minimum": 0}
        },
        "additionalProperties": false
      }
    },
    "additionalProperties": false
  }
}`

// validateIndex checks the raw index document against the schema before
// it is unmarshalled.
func validateIndex(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(indexSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidIndex, err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("%w: %s", ErrInvalidIndex, first)
	}
	return nil
}
