package registry

import (
	"fmt"

	"github.com/caspersuite/jss-object-sdk/descriptor"
)

// RegisterScraped registers descriptors for the legacy object types that are
// only reachable through UI pages, not the API. They carry a raw page path
// and support no REST operations.
func RegisterScraped(r *Registry) error {
	for _, d := range scrapedDescriptors() {
		if err := r.Register(d); err != nil {
			return fmt.Errorf("scraped catalog: %w", err)
		}
	}
	return nil
}

func scrapedDescriptors() []*descriptor.Descriptor {
	return []*descriptor.Descriptor{
		{
			Kind:    "jcds_configuration",
			Scraped: true,
			RawPath: "legacy/packages.html?id=-1&o=c",
		},
	}
}
