package parser

import (
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestSchema is the structural contract for expectation manifests,
// enforced before decoding so field typos surface as validation errors
// rather than silently ignored keys.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["checks"],
  "additionalProperties": false,
  "properties": {
    "catalogueVersion": {"type": "string"},
    "checks": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["type", "capability", "want"],
        "additionalProperties": false,
        "properties": {
          "type": {"type": "string", "minLength": 1},
          "capability": {"type": "string", "minLength": 1},
          "want": {"enum": ["satisfied", "unsatisfied"]}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("manifest.schema.json", manifestSchema)

// validateDocument checks a decoded (generic) manifest document against the
// schema.
func validateDocument(doc any) error {
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("manifest does not match schema: %w", err)
	}
	return nil
}
