package validation

import "github.com/caspersuite/jss-object-sdk/catalog"

// CatalogValidator validates catalog documents against the descriptor schema
// and the descriptor invariants.
type CatalogValidator interface {
	// ValidateJSON checks a raw JSON catalog document.
	ValidateJSON(data []byte) (*ValidationResult, error)

	// ValidateYAML checks a raw YAML catalog document.
	ValidateYAML(data []byte) (*ValidationResult, error)

	// ValidateDocument checks a parsed document's semantic invariants.
	ValidateDocument(doc *catalog.Document) *ValidationResult
}

// ValidationResult reports the outcome of a catalog validation.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

func invalid(errs ...string) *ValidationResult {
	return &ValidationResult{Valid: false, Errors: errs}
}
