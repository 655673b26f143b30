package parser

import (
	"encoding/json"

	"github.com/caspersuite/jss-object-sdk/catalog"
)

// JSONCatalogParser implements CatalogParser for JSON.
type JSONCatalogParser struct{}

// NewJSONCatalogParser creates a new JSONCatalogParser.
func NewJSONCatalogParser() CatalogParser {
	return &JSONCatalogParser{}
}

// Parse unmarshals JSON bytes into a Document struct.
func (p *JSONCatalogParser) Parse(data []byte) (*catalog.Document, error) {
	var doc catalog.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
