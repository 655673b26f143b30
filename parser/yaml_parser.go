package parser

import (
	"github.com/caspersuite/jss-object-sdk/catalog"
	"gopkg.in/yaml.v3"
)

// YamlCatalogParser implements CatalogParser for YAML.
type YamlCatalogParser struct{}

// NewYamlCatalogParser creates a new YamlCatalogParser.
func NewYamlCatalogParser() CatalogParser {
	return &YamlCatalogParser{}
}

// Parse unmarshals YAML bytes into a Document struct.
func (p *YamlCatalogParser) Parse(data []byte) (*catalog.Document, error) {
	var doc catalog.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
