// Package parser provides functionality for parsing catalog documents.
package parser

import "github.com/caspersuite/jss-object-sdk/catalog"

// CatalogParser parses raw catalog bytes into a Document.
type CatalogParser interface {
	// Parse unmarshals catalog bytes into a Document struct.
	Parse(data []byte) (*catalog.Document, error)
}
