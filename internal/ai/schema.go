package ai

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// analysisSchema constrains the JSON shape the generative model must return
// for a profile analysis. A response that fails this check is treated as a
// transient provider failure, never surfaced to the end caller.
const analysisSchema = `{
  "type": "object",
  "required": ["career_recommendations"],
  "properties": {
    "career_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["career", "confidence"],
        "properties": {
          "career": {"type": "string", "minLength": 1},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1},
          "reason": {"type": "string"}
        }
      }
    },
    "summary": {"type": "string"}
  }
}`

// validateAnalysisJSON checks a raw analysis document against the expected
// schema and returns a descriptive error listing every violated field.
func validateAnalysisJSON(document string) error {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	documentLoader := gojsonschema.NewStringLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("analysis response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("analysis response failed schema validation:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
