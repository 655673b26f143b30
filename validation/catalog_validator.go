package validation

import (
	"encoding/json"
	"fmt"
	"sort"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/caspersuite/jss-object-sdk/catalog"
)

// SchemaValidator validates catalog documents in two passes: a JSON Schema
// pass over the raw document shape, then the descriptor invariants over the
// decoded entries. The schema is generated once, from the document type
// itself, so it cannot drift from the code.
type SchemaValidator struct {
	schema *jsonschema.Schema
}

// NewSchemaValidator creates a validator with a schema reflected from the
// catalog document type.
func NewSchemaValidator() (*SchemaValidator, error) {
	reflector := new(invopop.Reflector)
	reflector.ExpandedStruct = true

	generated := reflector.Reflect(&catalog.Document{})
	raw, err := json.Marshal(generated)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal generated schema: %w", err)
	}

	schema, err := jsonschema.CompileString("catalog.schema.json", string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile catalog schema: %w", err)
	}

	return &SchemaValidator{schema: schema}, nil
}

// Schema returns the generated JSON Schema document.
func (v *SchemaValidator) Schema() (string, error) {
	reflector := new(invopop.Reflector)
	reflector.ExpandedStruct = true
	raw, err := json.MarshalIndent(reflector.Reflect(&catalog.Document{}), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal generated schema: %w", err)
	}
	return string(raw), nil
}

// ValidateJSON checks a raw JSON catalog document.
func (v *SchemaValidator) ValidateJSON(data []byte) (*ValidationResult, error) {
	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return invalid(fmt.Sprintf("invalid JSON: %v", err)), nil
	}
	return v.validateDecoded(decoded)
}

// ValidateYAML checks a raw YAML catalog document.
func (v *SchemaValidator) ValidateYAML(data []byte) (*ValidationResult, error) {
	var decoded any
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return invalid(fmt.Sprintf("invalid YAML: %v", err)), nil
	}

	// Round-trip through JSON so the instance carries only JSON value types,
	// which the schema engine expects.
	raw, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize YAML document: %w", err)
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to normalize YAML document: %w", err)
	}

	return v.validateDecoded(decoded)
}

func (v *SchemaValidator) validateDecoded(decoded any) (*ValidationResult, error) {
	if err := v.schema.Validate(decoded); err != nil {
		return invalid(schemaErrors(err)...), nil
	}

	raw, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode document: %w", err)
	}

	var doc catalog.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return invalid(fmt.Sprintf("invalid document: %v", err)), nil
	}

	return v.ValidateDocument(&doc), nil
}

// ValidateDocument checks a parsed document's semantic invariants: entry
// conversion, descriptor validation, and the catalog aggregate rules.
func (v *SchemaValidator) ValidateDocument(doc *catalog.Document) *ValidationResult {
	if doc == nil {
		return invalid("document cannot be nil")
	}

	cat, err := doc.ToEntity()
	if err != nil {
		return invalid(err.Error())
	}

	result := &ValidationResult{Valid: true}
	if err := cat.ValidateMetadata(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}
	for _, kind := range sortedEntryKinds(doc) {
		d := cat.Get(kind)
		if d == nil {
			continue
		}
		if err := d.Validate(); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func sortedEntryKinds(doc *catalog.Document) []string {
	kinds := make([]string, 0, len(doc.Objects))
	for kind := range doc.Objects {
		kinds = append(kinds, kind)
	}
	// Stable error ordering for callers and tests.
	sort.Strings(kinds)
	return kinds
}

// schemaErrors flattens a schema validation failure into its leaf causes.
func schemaErrors(err error) []string {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{err.Error()}
	}

	var leaves []string
	var collect func(*jsonschema.ValidationError)
	collect = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) == 0 {
			location := ve.InstanceLocation
			if location == "" {
				location = "/"
			}
			leaves = append(leaves, fmt.Sprintf("%s: %s", location, ve.Message))
			return
		}
		for _, cause := range ve.Causes {
			collect(cause)
		}
	}
	collect(validationErr)
	return leaves
}

var _ CatalogValidator = (*SchemaValidator)(nil)
