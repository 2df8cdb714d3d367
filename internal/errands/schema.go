package errands

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bdreece/errands/internal/utils"
)

const schemaURL = "errands.schema.json"

// schemaSource is the JSON Schema every list document must satisfy.
var schemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "errands list",
  "type": "object",
  "propertyNames": {
    "enum": ["` + strings.Join(PriorityNames(), `", "`) + `"]
  },
  "additionalProperties": {
    "type": "array",
    "items": {"type": "string"}
  }
}`

var listSchema = jsonschema.MustCompileString(schemaURL, schemaSource)

// Validate checks a generic decoded document against the list schema and
// returns one ValidationError per violation.
func Validate(doc interface{}) []error {
	// Round-trip through JSON so the validator only sees JSON types.
	data, err := json.Marshal(doc)
	if err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("document is not a mapping of names to lists: %w", err)}}
	}
	var obj interface{}
	if err := json.Unmarshal(data, &obj); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("unmarshal document for validation: %w", err)}}
	}

	if err := listSchema.Validate(obj); err != nil {
		var errs []error
		collectSchemaErrors(&errs, err)
		return errs
	}
	return nil
}

func collectSchemaErrors(errs *[]error, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		*errs = append(*errs, err)
		return
	}
	if len(ve.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: utils.JSONPointerToPath(ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(errs, cause)
	}
}
